package category

import (
	"context"

	"cookbook/pkg/domain"
)

// Defaults are the categories every installation starts with.
var Defaults = []domain.Category{
	{Name: "Entrées", Description: "Plats pour commencer le repas", Color: "#e74c3c"},
	{Name: "Plats principaux", Description: "Plats de résistance", Color: "#3498db"},
	{Name: "Desserts", Description: "Sucreries et douceurs", Color: "#f39c12"},
	{Name: "Boissons", Description: "Cocktails, smoothies et autres boissons", Color: "#2ecc71"},
	{Name: "Apéritifs", Description: "Petites bouchées pour l'apéritif", Color: "#9b59b6"},
	{Name: "Salades", Description: "Salades fraîches et composées", Color: "#1abc9c"},
	{Name: "Soupes", Description: "Soupes chaudes et froides", Color: "#e67e22"},
	{Name: "Pâtisseries", Description: "Gâteaux, tartes et pâtisseries", Color: "#f1c40f"},
}

// EnsureDefaults creates each default category missing by name.
func (c *catalog) EnsureDefaults(ctx context.Context) error {
	for _, def := range Defaults {
		existing, err := c.FindByName(ctx, def.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if _, err := c.Create(ctx, def); err != nil {
			return err
		}
	}

	return nil
}
