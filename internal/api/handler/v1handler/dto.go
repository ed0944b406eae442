package v1handler

import (
	"strings"
	"time"

	"cookbook/pkg/domain"
)

// CategoryRequest creates or replaces a category. Active is only honoured on
// update; omitting it keeps the stored flag.
type CategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color"       validate:"omitempty,hexcolor"`
	IconURL     string `json:"iconUrl"     validate:"omitempty,url"`
	Active      *bool  `json:"active"`
}

func (c *CategoryRequest) normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

func (c CategoryRequest) toDomain() domain.Category {
	return domain.Category{
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		IconURL:     c.IconURL,
		Active:      c.Active == nil || *c.Active,
	}
}

type RegisterRequest struct {
	Username        string `json:"username"        validate:"required,min=3,max=50"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6,max=72"`
	FirstName       string `json:"firstName"       validate:"max=50"`
	LastName        string `json:"lastName"        validate:"max=50"`
	Bio             string `json:"bio"             validate:"max=500"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url"`
}

func (r *RegisterRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

func (r RegisterRequest) toDomain() domain.User {
	return domain.User{
		Username:        r.Username,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Bio:             r.Bio,
		ProfileImageURL: r.ProfileImageURL,
	}
}

// UpdateUserRequest replaces a profile. An empty password keeps the current
// one; roles are only applied when an admin sends them.
type UpdateUserRequest struct {
	Username        string        `json:"username"        validate:"required,min=3,max=50"`
	Email           string        `json:"email"           validate:"required,email"`
	Password        string        `json:"password"        validate:"omitempty,min=6,max=72"`
	FirstName       string        `json:"firstName"       validate:"max=50"`
	LastName        string        `json:"lastName"        validate:"max=50"`
	Bio             string        `json:"bio"             validate:"max=500"`
	ProfileImageURL string        `json:"profileImageUrl" validate:"omitempty,url"`
	Roles           []domain.Role `json:"roles"           validate:"omitempty,dive,oneof=USER ADMIN"`
}

func (r *UpdateUserRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

type AuthenticateRequest struct {
	// Login is either the username or the email.
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthenticateResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

type IngredientRequest struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"     validate:"max=50"`
	Optional bool    `json:"optional"`
}

type InstructionRequest struct {
	StepNumber  int    `json:"stepNumber"  validate:"gte=0"`
	Description string `json:"description" validate:"required,max=2000"`
	ImageURL    string `json:"imageUrl"    validate:"omitempty,url"`
	TimeMinutes int    `json:"timeMinutes" validate:"gte=0"`
}

type NutritionRequest struct {
	Calories      int     `json:"calories"      validate:"gte=0"`
	Protein       float64 `json:"protein"       validate:"gte=0"`
	Carbohydrates float64 `json:"carbohydrates" validate:"gte=0"`
	Fat           float64 `json:"fat"           validate:"gte=0"`
	Fiber         float64 `json:"fiber"         validate:"gte=0"`
	Sugar         float64 `json:"sugar"         validate:"gte=0"`
}

// RecipeRequest creates or replaces a recipe. Counters and the author are
// never taken from the client.
type RecipeRequest struct {
	Title           string               `json:"title"           validate:"required,min=3,max=200"`
	Description     string               `json:"description"     validate:"max=2000"`
	Ingredients     []IngredientRequest  `json:"ingredients"     validate:"dive"`
	Instructions    []InstructionRequest `json:"instructions"    validate:"dive"`
	CategoryID      string               `json:"categoryId"      validate:"required,uuid"`
	ImageURL        string               `json:"imageUrl"        validate:"omitempty,url"`
	Servings        int                  `json:"servings"        validate:"min=1,max=50"`
	PrepTimeMinutes int                  `json:"prepTimeMinutes" validate:"gte=0"`
	CookTimeMinutes int                  `json:"cookTimeMinutes" validate:"gte=0"`
	Difficulty      string               `json:"difficulty"      validate:"required,oneof=EASY MEDIUM HARD easy medium hard"`
	Tags            []string             `json:"tags"            validate:"dive,max=50"`
	Nutrition       *NutritionRequest    `json:"nutrition"`
	Published       bool                 `json:"published"`
}

func (r *RecipeRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

// toDomain assumes the request passed validation.
func (r RecipeRequest) toDomain() domain.Recipe {
	categoryID, _ := domain.ParseCategoryID(r.CategoryID)
	difficulty, _ := domain.ParseDifficulty(r.Difficulty)

	out := domain.Recipe{
		Title:           r.Title,
		Description:     r.Description,
		CategoryID:      categoryID,
		ImageURL:        r.ImageURL,
		Servings:        r.Servings,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Difficulty:      difficulty,
		Tags:            r.Tags,
		Published:       r.Published,
	}

	for _, in := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, domain.Ingredient(in))
	}
	for i, in := range r.Instructions {
		step := domain.Instruction(in)
		if step.StepNumber == 0 {
			step.StepNumber = i + 1
		}
		out.Instructions = append(out.Instructions, step)
	}
	if r.Nutrition != nil {
		n := domain.Nutrition(*r.Nutrition)
		out.Nutrition = &n
	}

	return out
}

// RateRequest carries the score of POST /recipes/{id}/rate, read from the
// rating query parameter.
type RateRequest struct {
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
