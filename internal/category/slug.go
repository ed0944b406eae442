package category

import (
	"regexp"
	"strings"
)

var (
	accentFolder = strings.NewReplacer(
		"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
		"è", "e", "é", "e", "ê", "e", "ë", "e",
		"ì", "i", "í", "i", "î", "i", "ï", "i",
		"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
		"ù", "u", "ú", "u", "û", "u", "ü", "u",
		"ý", "y", "ÿ", "y",
		"ç", "c",
	)

	// whitespace matches the ASCII whitespace class only, so other unicode
	// spaces are stripped together with every non slug character.
	unsafeChars = regexp.MustCompile(`[^a-z0-9\t\n\x0B\f\r -]`)
	whitespace  = regexp.MustCompile(`[\t\n\x0B\f\r ]+`)
	hyphens     = regexp.MustCompile(`-+`)
)

// Slugify derives the URL-safe key of a category name: lowercase, accents
// folded to ASCII, anything outside [a-z0-9 -] dropped, whitespace runs turned
// into a single hyphen and hyphens trimmed from both ends.
func Slugify(name string) string {
	s := accentFolder.Replace(strings.ToLower(name))
	s = unsafeChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
