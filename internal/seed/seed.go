// Package seed fills an empty catalog with demonstration data.
package seed

import (
	"context"
	"fmt"

	"cookbook/internal/category"
	"cookbook/internal/recipe"
	"cookbook/internal/user"
	"cookbook/pkg/logger"
	"cookbook/pkg/storage"

	"go.uber.org/zap"
)

// Run creates the default categories, the demo accounts and their recipes in
// a single transaction. Entities that already exist are left untouched, so
// Run can be executed repeatedly.
func Run(ctx context.Context, strg storage.Storage, hasher user.Hasher) error {
	if err := strg.WithTx(ctx, func(tx storage.AllStorage) error {
		categories := category.New(tx)
		users := user.New(tx, hasher)
		recipes := recipe.New(tx, categories, users, recipe.Options{})

		if err := categories.EnsureDefaults(ctx); err != nil {
			return fmt.Errorf("could not create default categories: %w", err)
		}

		for _, demo := range demoUsers {
			existing, err := users.FindByUsername(ctx, demo.user.Username)
			if err != nil {
				return fmt.Errorf("could not get user: %w", err)
			}
			if existing != nil {
				continue
			}
			if _, err := users.Create(ctx, demo.user, demo.password); err != nil {
				return fmt.Errorf("could not create user %s: %w", demo.user.Username, err)
			}
		}

		for _, demo := range demoRecipes {
			if err := addRecipe(ctx, categories, users, recipes, demo); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not seed catalog: %w", err)
	}

	logger.Info(ctx, "catalog seeded",
		zap.Int("users", len(demoUsers)),
		zap.Int("recipes", len(demoRecipes)),
		zap.Int("categories", len(category.Defaults)))

	return nil
}

func addRecipe(ctx context.Context,
	categories category.Catalog,
	users user.Directory,
	recipes recipe.Catalog,
	demo demoRecipe) error {
	author, err := users.FindByUsername(ctx, demo.author)
	if err != nil {
		return fmt.Errorf("could not get author: %w", err)
	}
	cat, err := categories.FindByName(ctx, demo.category)
	if err != nil {
		return fmt.Errorf("could not get category: %w", err)
	}
	if author == nil || cat == nil {
		logger.Warn(ctx, "skipping demo recipe", zap.String("title", demo.recipe.Title))

		return nil
	}

	existing, err := recipes.ListByAuthor(ctx, author.ID)
	if err != nil {
		return fmt.Errorf("could not list recipes: %w", err)
	}
	for _, r := range existing {
		if r.Title == demo.recipe.Title {
			return nil
		}
	}

	r := demo.recipe
	r.AuthorID = author.ID
	r.CategoryID = cat.ID
	r.Published = true
	if _, err := recipes.Create(ctx, r); err != nil {
		return fmt.Errorf("could not create recipe %q: %w", r.Title, err)
	}

	return nil
}
