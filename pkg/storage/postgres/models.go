package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"cookbook/pkg/domain"

	"github.com/google/uuid"
)

// PgCategory maps a row of the categories table.
type PgCategory struct {
	ID          uuid.UUID `db:"id"          goqu:"skipupdate"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	IconURL     string    `db:"icon_url"`
	Slug        string    `db:"slug"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"  goqu:"skipupdate"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (p *PgCategory) ToDomain() *domain.Category {
	return &domain.Category{
		ID:          domain.CategoryID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		IconURL:     p.IconURL,
		Slug:        p.Slug,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgCategory) FromDomain(c domain.Category) {
	*p = PgCategory{
		ID:          uuid.UUID(c.ID),
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		IconURL:     c.IconURL,
		Slug:        c.Slug,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// PgUser maps a row of the users table. Roles and favorites are JSONB arrays
// kept as plain []byte so goqu renders them as string literals.
type PgUser struct {
	ID                uuid.UUID `db:"id"                  goqu:"skipupdate"`
	Username          string    `db:"username"`
	Email             string    `db:"email"`
	PasswordHash      string    `db:"password_hash"`
	FirstName         string    `db:"first_name"`
	LastName          string    `db:"last_name"`
	Bio               string    `db:"bio"`
	ProfileImageURL   string    `db:"profile_image_url"`
	Roles             []byte    `db:"roles"`
	FavoriteRecipeIDs []byte    `db:"favorite_recipe_ids"`
	Enabled           bool      `db:"enabled"`
	CreatedAt         time.Time `db:"created_at"          goqu:"skipupdate"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (p *PgUser) ToDomain() (*domain.User, error) {
	u := &domain.User{
		ID:              domain.UserID(p.ID),
		Username:        p.Username,
		Email:           p.Email,
		PasswordHash:    p.PasswordHash,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Bio:             p.Bio,
		ProfileImageURL: p.ProfileImageURL,
		Enabled:         p.Enabled,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if err := unmarshalJSONB(p.Roles, &u.Roles); err != nil {
		return nil, fmt.Errorf("could not unmarshal user roles: %w", err)
	}
	if err := unmarshalJSONB(p.FavoriteRecipeIDs, &u.FavoriteRecipeIDs); err != nil {
		return nil, fmt.Errorf("could not unmarshal user favorites: %w", err)
	}

	return u, nil
}

func (p *PgUser) FromDomain(u domain.User) error {
	roles, err := marshalJSONB(u.Roles)
	if err != nil {
		return fmt.Errorf("could not marshal user roles: %w", err)
	}
	favorites, err := marshalJSONB(u.FavoriteRecipeIDs)
	if err != nil {
		return fmt.Errorf("could not marshal user favorites: %w", err)
	}

	*p = PgUser{
		ID:                uuid.UUID(u.ID),
		Username:          u.Username,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Bio:               u.Bio,
		ProfileImageURL:   u.ProfileImageURL,
		Roles:             roles,
		FavoriteRecipeIDs: favorites,
		Enabled:           u.Enabled,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}

	return nil
}

// PgRecipe maps a row of the recipes table. Nested collections are JSONB.
type PgRecipe struct {
	ID              uuid.UUID `db:"id"                goqu:"skipupdate"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Ingredients     []byte    `db:"ingredients"`
	Instructions    []byte    `db:"instructions"`
	CategoryID      uuid.UUID `db:"category_id"`
	AuthorID        uuid.UUID `db:"author_id"`
	ImageURL        string    `db:"image_url"`
	Servings        int       `db:"servings"`
	PrepTimeMinutes int       `db:"prep_time_minutes"`
	CookTimeMinutes int       `db:"cook_time_minutes"`
	Difficulty      string    `db:"difficulty"`
	Tags            []byte    `db:"tags"`
	Nutrition       []byte    `db:"nutrition"`
	Rating          float64   `db:"rating"`
	RatingCount     int       `db:"rating_count"`
	FavoriteCount   int       `db:"favorite_count"`
	ViewCount       int       `db:"view_count"`
	Published       bool      `db:"published"`
	CreatedAt       time.Time `db:"created_at"        goqu:"skipupdate"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (p *PgRecipe) ToDomain() (*domain.Recipe, error) {
	r := &domain.Recipe{
		ID:              domain.RecipeID(p.ID),
		Title:           p.Title,
		Description:     p.Description,
		CategoryID:      domain.CategoryID(p.CategoryID),
		AuthorID:        domain.UserID(p.AuthorID),
		ImageURL:        p.ImageURL,
		Servings:        p.Servings,
		PrepTimeMinutes: p.PrepTimeMinutes,
		CookTimeMinutes: p.CookTimeMinutes,
		Difficulty:      domain.Difficulty(p.Difficulty),
		Rating:          p.Rating,
		RatingCount:     p.RatingCount,
		FavoriteCount:   p.FavoriteCount,
		ViewCount:       p.ViewCount,
		Published:       p.Published,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if err := unmarshalJSONB(p.Ingredients, &r.Ingredients); err != nil {
		return nil, fmt.Errorf("could not unmarshal recipe ingredients: %w", err)
	}
	if err := unmarshalJSONB(p.Instructions, &r.Instructions); err != nil {
		return nil, fmt.Errorf("could not unmarshal recipe instructions: %w", err)
	}
	if err := unmarshalJSONB(p.Tags, &r.Tags); err != nil {
		return nil, fmt.Errorf("could not unmarshal recipe tags: %w", err)
	}
	if err := unmarshalJSONB(p.Nutrition, &r.Nutrition); err != nil {
		return nil, fmt.Errorf("could not unmarshal recipe nutrition: %w", err)
	}

	return r, nil
}

func (p *PgRecipe) FromDomain(r domain.Recipe) error {
	ingredients, err := marshalJSONB(r.Ingredients)
	if err != nil {
		return fmt.Errorf("could not marshal recipe ingredients: %w", err)
	}
	instructions, err := marshalJSONB(r.Instructions)
	if err != nil {
		return fmt.Errorf("could not marshal recipe instructions: %w", err)
	}
	tags, err := marshalJSONB(r.Tags)
	if err != nil {
		return fmt.Errorf("could not marshal recipe tags: %w", err)
	}
	nutrition, err := json.Marshal(r.Nutrition)
	if err != nil {
		return fmt.Errorf("could not marshal recipe nutrition: %w", err)
	}

	*p = PgRecipe{
		ID:              uuid.UUID(r.ID),
		Title:           r.Title,
		Description:     r.Description,
		Ingredients:     ingredients,
		Instructions:    instructions,
		CategoryID:      uuid.UUID(r.CategoryID),
		AuthorID:        uuid.UUID(r.AuthorID),
		ImageURL:        r.ImageURL,
		Servings:        r.Servings,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Difficulty:      string(r.Difficulty),
		Tags:            tags,
		Nutrition:       nutrition,
		Rating:          r.Rating,
		RatingCount:     r.RatingCount,
		FavoriteCount:   r.FavoriteCount,
		ViewCount:       r.ViewCount,
		Published:       r.Published,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	return nil
}

// marshalJSONB encodes nil slices as an empty array to satisfy NOT NULL columns.
func marshalJSONB[T any](v []T) ([]byte, error) {
	if v == nil {
		v = []T{}
	}

	return json.Marshal(v)
}

func unmarshalJSONB(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, dst)
}

func pgUsersToDomain(rows []PgUser) ([]domain.User, error) {
	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		u, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}

	return out, nil
}

func pgRecipesToDomain(rows []PgRecipe) ([]domain.Recipe, error) {
	out := make([]domain.Recipe, 0, len(rows))
	for i := range rows {
		r, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}

	return out, nil
}
