package domain

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the preparation level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty accepts the difficulty name in any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Optional bool    `json:"optional"`
}

// Instruction is a single preparation step.
type Instruction struct {
	StepNumber  int    `json:"stepNumber"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	TimeMinutes int    `json:"timeMinutes,omitempty"`
}

// Nutrition summarizes nutrition facts per serving.
type Nutrition struct {
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
}

// Recipe is the central catalog entity. CategoryID and AuthorID are weak
// references: they are validated when the recipe is written but nothing
// cascades when the referenced entities go away.
//
// Rating, RatingCount, FavoriteCount and ViewCount are owned by the server and
// only change through the dedicated counter operations.
type Recipe struct {
	ID           RecipeID      `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Ingredients  []Ingredient  `json:"ingredients"`
	Instructions []Instruction `json:"instructions"`
	CategoryID   CategoryID    `json:"categoryId"`
	AuthorID     UserID        `json:"authorId"`
	ImageURL     string        `json:"imageUrl"`

	Servings        int        `json:"servings"`
	PrepTimeMinutes int        `json:"prepTimeMinutes"`
	CookTimeMinutes int        `json:"cookTimeMinutes"`
	Difficulty      Difficulty `json:"difficulty"`
	Tags            []string   `json:"tags"`
	Nutrition       *Nutrition `json:"nutrition,omitempty"`

	// Rating is the running average of every submitted score.
	Rating        float64 `json:"rating"`
	RatingCount   int     `json:"ratingCount"`
	FavoriteCount int     `json:"favoriteCount"`
	ViewCount     int     `json:"viewCount"`
	Published     bool    `json:"published"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TotalTimeMinutes is the sum of preparation and cooking time.
func (r *Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// RunningAverage folds a new score into an average computed over count scores.
func RunningAverage(average float64, count int, score float64) float64 {
	return (average*float64(count) + score) / float64(count+1)
}
