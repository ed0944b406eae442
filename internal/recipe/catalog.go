package recipe

import (
	"context"
	"strings"
	"time"

	"cookbook/internal/config"
	"cookbook/pkg/domain"
	"cookbook/pkg/logger"
	"cookbook/pkg/serrors"
	"cookbook/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tune listing sizes and rating retries.
type Options struct {
	// TopRatedLimit is the number of recipes included in GlobalStats.
	TopRatedLimit uint
	// RateMaxAttempts bounds the compare-and-set attempts made by Rate before
	// it gives up with a conflict.
	RateMaxAttempts int
	// DefaultListLimit replaces a zero limit in ListTopRated and ListLatest.
	DefaultListLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TopRatedLimit:    cfg.Catalog.TopRatedLimit,
		RateMaxAttempts:  cfg.Catalog.RateMaxAttempts,
		DefaultListLimit: cfg.Catalog.DefaultListLimit,
	}
}

type catalog struct {
	options    Options
	storage    storage.RecipeStorage
	categories CategoryResolver
	users      UserResolver
	tracer     trace.Tracer
	now        func() time.Time
}

// New creates a recipe Catalog. Category and author references are checked
// through the given resolvers.
func New(storage storage.RecipeStorage, categories CategoryResolver, users UserResolver, options Options) Catalog {
	if options.RateMaxAttempts < 1 {
		options.RateMaxAttempts = 1
	}
	if options.TopRatedLimit == 0 {
		options.TopRatedLimit = 10
	}
	if options.DefaultListLimit == 0 {
		options.DefaultListLimit = 10
	}

	return &catalog{
		options:    options,
		storage:    storage,
		categories: categories,
		users:      users,
		tracer:     otel.Tracer("cookbook/internal/recipe"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func notFound() error {
	return serrors.With(serrors.ErrNotFound, "recipe not found")
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *catalog) checkCategory(ctx context.Context, id domain.CategoryID) error {
	cat, err := c.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return serrors.With(domain.ErrCategoryNotFound, "category %s does not exist", id)
	}

	return nil
}

func (c *catalog) Create(ctx context.Context, r domain.Recipe) (_ *domain.Recipe, err error) {
	ctx, span := c.tracer.Start(ctx, "recipe.Create")
	defer func() { endSpan(span, err) }()

	if err := c.checkCategory(ctx, r.CategoryID); err != nil {
		return nil, err
	}

	author, err := c.users.FindByID(ctx, r.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, serrors.With(domain.ErrAuthorNotFound, "author %s does not exist", r.AuthorID)
	}

	r.Rating = 0
	r.RatingCount = 0
	r.FavoriteCount = 0
	r.ViewCount = 0
	r.CreatedAt = c.now()
	r.UpdatedAt = r.CreatedAt

	created, err := c.storage.CreateRecipe(ctx, r)
	if err != nil {
		return nil, domain.StoreError(err, "could not create recipe")
	}

	span.SetAttributes(attribute.String("recipe.id", created.ID.String()))
	logger.Info(ctx, "recipe created",
		zap.Stringer("recipeID", created.ID),
		zap.Stringer("authorID", created.AuthorID),
		zap.Bool("published", created.Published))

	return created, nil
}

// Update replaces the editable content of a recipe. Counters and the creation
// time are taken from the stored record whatever the caller supplied.
func (c *catalog) Update(ctx context.Context, r domain.Recipe) (_ *domain.Recipe, err error) {
	ctx, span := c.tracer.Start(ctx, "recipe.Update", trace.WithAttributes(attribute.String("recipe.id", r.ID.String())))
	defer func() { endSpan(span, err) }()

	existing, err := c.storage.RecipeByID(ctx, r.ID)
	if err != nil {
		return nil, domain.StoreError(err, "could not get recipe")
	}
	if existing == nil {
		return nil, notFound()
	}

	if err := c.checkCategory(ctx, r.CategoryID); err != nil {
		return nil, err
	}

	r.Rating = existing.Rating
	r.RatingCount = existing.RatingCount
	r.FavoriteCount = existing.FavoriteCount
	r.ViewCount = existing.ViewCount
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = c.now()

	updated, err := c.storage.ReplaceRecipe(ctx, r)
	if err != nil {
		return nil, domain.StoreError(err, "could not update recipe")
	}
	if updated == nil {
		return nil, notFound()
	}

	return updated, nil
}

func (c *catalog) FindByID(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error) {
	r, err := c.storage.RecipeByID(ctx, id)
	if err != nil {
		return nil, domain.StoreError(err, "could not get recipe")
	}

	return r, nil
}

// FindByIDAndTouch returns nil without error when the recipe does not exist.
func (c *catalog) FindByIDAndTouch(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error) {
	r, err := c.storage.IncrementRecipeViews(ctx, id)
	if err != nil {
		return nil, domain.StoreError(err, "could not increment recipe views")
	}

	return r, nil
}

func (c *catalog) list(ctx context.Context, filter storage.RecipeFilter) ([]domain.Recipe, error) {
	res, err := c.storage.Recipes(ctx, filter)
	if err != nil {
		return nil, domain.StoreError(err, "could not list recipes")
	}

	return res, nil
}

func (c *catalog) ListPublished(ctx context.Context) ([]domain.Recipe, error) {
	return c.list(ctx, storage.RecipeFilter{PublishedOnly: true})
}

func (c *catalog) ListByCategory(ctx context.Context, categoryID domain.CategoryID) ([]domain.Recipe, error) {
	return c.list(ctx, storage.RecipeFilter{PublishedOnly: true, CategoryID: &categoryID})
}

func (c *catalog) ListByAuthor(ctx context.Context, authorID domain.UserID) ([]domain.Recipe, error) {
	return c.list(ctx, storage.RecipeFilter{AuthorID: &authorID})
}

func (c *catalog) ListPublishedByAuthor(ctx context.Context, authorID domain.UserID) ([]domain.Recipe, error) {
	return c.list(ctx, storage.RecipeFilter{PublishedOnly: true, AuthorID: &authorID})
}

func (c *catalog) ListByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Recipe, error) {
	return c.list(ctx, storage.RecipeFilter{PublishedOnly: true, Difficulty: difficulty})
}

func (c *catalog) ListTopRated(ctx context.Context, limit uint) ([]domain.Recipe, error) {
	if limit == 0 {
		limit = c.options.DefaultListLimit
	}

	return c.list(ctx, storage.RecipeFilter{PublishedOnly: true, OrderBy: storage.OrderTopRated, Limit: limit})
}

func (c *catalog) ListLatest(ctx context.Context, limit uint) ([]domain.Recipe, error) {
	if limit == 0 {
		limit = c.options.DefaultListLimit
	}

	return c.list(ctx, storage.RecipeFilter{PublishedOnly: true, OrderBy: storage.OrderNewest, Limit: limit})
}

// SearchByTitle matches term against title, description and tags of the
// published recipes, ignoring case. The filtering happens in memory.
func (c *catalog) SearchByTitle(ctx context.Context, term string) ([]domain.Recipe, error) {
	published, err := c.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return published, nil
	}

	res := make([]domain.Recipe, 0, len(published))
	for _, r := range published {
		if matches(r, term) {
			res = append(res, r)
		}
	}

	return res, nil
}

func matches(r domain.Recipe, term string) bool {
	if strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}

	return false
}

func (c *catalog) SetPublished(ctx context.Context, id domain.RecipeID, published bool) (*domain.Recipe, error) {
	r, err := c.storage.SetRecipePublished(ctx, id, published)
	if err != nil {
		return nil, domain.StoreError(err, "could not update recipe publication")
	}
	if r == nil {
		return nil, notFound()
	}

	logger.Info(ctx, "recipe publication changed", zap.Stringer("recipeID", id), zap.Bool("published", published))

	return r, nil
}

// Rate applies score with a compare-and-set on the rating count, re-reading
// the recipe whenever another rating landed in between.
func (c *catalog) Rate(ctx context.Context, id domain.RecipeID, score float64) (_ *domain.Recipe, err error) {
	ctx, span := c.tracer.Start(ctx, "recipe.Rate", trace.WithAttributes(
		attribute.String("recipe.id", id.String()),
		attribute.Float64("recipe.score", score),
	))
	defer func() { endSpan(span, err) }()

	for attempt := 1; attempt <= c.options.RateMaxAttempts; attempt++ {
		r, err := c.storage.RecipeByID(ctx, id)
		if err != nil {
			return nil, domain.StoreError(err, "could not get recipe")
		}
		if r == nil {
			return nil, notFound()
		}

		average := domain.RunningAverage(r.Rating, r.RatingCount, score)
		ok, err := c.storage.UpdateRecipeRating(ctx, id, r.RatingCount, average)
		if err != nil {
			return nil, domain.StoreError(err, "could not update recipe rating")
		}
		if ok {
			r.Rating = average
			r.RatingCount++
			span.SetAttributes(attribute.Int("recipe.rate.attempts", attempt))
			logger.Info(ctx, "recipe rated",
				zap.Stringer("recipeID", id),
				zap.Float64("score", score),
				zap.Float64("rating", r.Rating),
				zap.Int("ratingCount", r.RatingCount))

			return r, nil
		}

		logger.Debug(ctx, "rating changed concurrently, retrying", zap.Stringer("recipeID", id), zap.Int("attempt", attempt))
	}

	return nil, serrors.With(serrors.ErrConflict, "recipe rating changed concurrently %d times", c.options.RateMaxAttempts)
}

// CanEdit reports whether userID may modify the recipe. Missing recipes and
// unknown users are never editable.
func (c *catalog) CanEdit(ctx context.Context, userID domain.UserID, recipeID domain.RecipeID) (bool, error) {
	r, err := c.FindByID(ctx, recipeID)
	if err != nil {
		return false, err
	}
	if r == nil {
		return false, nil
	}
	if r.AuthorID == userID {
		return true, nil
	}

	u, err := c.users.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	return u != nil && u.IsAdmin(), nil
}

// GlobalStats reads the counters and the top rated recipes concurrently.
func (c *catalog) GlobalStats(ctx context.Context) (_ *Stats, err error) {
	ctx, span := c.tracer.Start(ctx, "recipe.GlobalStats")
	defer func() { endSpan(span, err) }()

	var stats Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := c.storage.CountRecipes(gctx, storage.RecipeFilter{})
		if err != nil {
			return domain.StoreError(err, "could not count recipes")
		}
		stats.TotalRecipes = n

		return nil
	})
	g.Go(func() error {
		n, err := c.storage.CountRecipes(gctx, storage.RecipeFilter{PublishedOnly: true})
		if err != nil {
			return domain.StoreError(err, "could not count published recipes")
		}
		stats.PublishedRecipes = n

		return nil
	})
	g.Go(func() error {
		top, err := c.ListTopRated(gctx, c.options.TopRatedLimit)
		if err != nil {
			return err
		}
		stats.TopRated = top

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &stats, nil
}

func (c *catalog) Delete(ctx context.Context, id domain.RecipeID) (bool, error) {
	deleted, err := c.storage.DeleteRecipe(ctx, id)
	if err != nil {
		return false, domain.StoreError(err, "could not delete recipe")
	}
	if deleted {
		logger.Info(ctx, "recipe deleted", zap.Stringer("recipeID", id))
	}

	return deleted, nil
}

func (c *catalog) SyncFavoriteCounts(ctx context.Context) (_ int64, err error) {
	ctx, span := c.tracer.Start(ctx, "recipe.SyncFavoriteCounts")
	defer func() { endSpan(span, err) }()

	changed, err := c.storage.SyncFavoriteCounts(ctx)
	if err != nil {
		return 0, domain.StoreError(err, "could not sync favorite counts")
	}
	span.SetAttributes(attribute.Int64("recipe.favorites.changed", changed))

	return changed, nil
}
