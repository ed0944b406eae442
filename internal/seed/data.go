package seed

import "cookbook/pkg/domain"

type demoUser struct {
	user     domain.User
	password string
}

var demoUsers = []demoUser{
	{
		user: domain.User{
			Username:  "admin",
			Email:     "admin@recettes.fr",
			FirstName: "Admin",
			LastName:  "Principal",
			Bio:       "Administrateur de l'application de recettes",
			Roles:     []domain.Role{domain.RoleUser, domain.RoleAdmin},
		},
		password: "admin123",
	},
	{
		user: domain.User{
			Username:        "chef_marie",
			Email:           "marie@recettes.fr",
			FirstName:       "Marie",
			LastName:        "Dubois",
			Bio:             "Chef cuisinière passionnée, spécialisée dans la cuisine française traditionnelle",
			ProfileImageURL: "https://images.unsplash.com/photo-1595273670150-bd0c3c392e46?w=150",
		},
		password: "password123",
	},
	{
		user: domain.User{
			Username:        "patissier_paul",
			Email:           "paul@recettes.fr",
			FirstName:       "Paul",
			LastName:        "Martin",
			Bio:             "Pâtissier créatif, amateur de desserts innovants et de pâtisseries classiques",
			ProfileImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150",
		},
		password: "password123",
	},
	{
		user: domain.User{
			Username:        "sophie_cuisine",
			Email:           "sophie@recettes.fr",
			FirstName:       "Sophie",
			LastName:        "Leroy",
			Bio:             "Passionnée de cuisine du monde, j'aime partager mes découvertes culinaires",
			ProfileImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150",
		},
		password: "password123",
	},
}

// demoRecipe references its author and category by username and name.
type demoRecipe struct {
	author   string
	category string
	recipe   domain.Recipe
}

func steps(descriptions ...string) []domain.Instruction {
	out := make([]domain.Instruction, len(descriptions))
	for i, d := range descriptions {
		out[i] = domain.Instruction{StepNumber: i + 1, Description: d}
	}

	return out
}

var demoRecipes = []demoRecipe{
	{
		author:   "chef_marie",
		category: "Plats principaux",
		recipe: domain.Recipe{
			Title: "Coq au Vin traditionnel",
			Description: "Un grand classique de la cuisine française, le coq au vin est un plat mijoté savoureux " +
				"et réconfortant, parfait pour les repas en famille.",
			Servings:        6,
			PrepTimeMinutes: 30,
			CookTimeMinutes: 90,
			Difficulty:      domain.DifficultyMedium,
			ImageURL:        "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=800",
			Tags:            []string{"français", "traditionnel", "vin rouge", "volaille"},
			Ingredients: []domain.Ingredient{
				{Name: "Coq découpé", Quantity: 1, Unit: "pièce"},
				{Name: "Vin rouge", Quantity: 750, Unit: "ml"},
				{Name: "Lardons", Quantity: 200, Unit: "g"},
				{Name: "Champignons de Paris", Quantity: 300, Unit: "g"},
				{Name: "Oignons grelots", Quantity: 250, Unit: "g"},
				{Name: "Carottes", Quantity: 2, Unit: "pièces"},
				{Name: "Bouquet garni", Quantity: 1, Unit: "pièce"},
				{Name: "Beurre", Quantity: 50, Unit: "g"},
				{Name: "Farine", Quantity: 2, Unit: "cuillères à soupe"},
				{Name: "Cognac", Quantity: 3, Unit: "cuillères à soupe"},
			},
			Instructions: steps(
				"Faire revenir les lardons dans une cocotte jusqu'à ce qu'ils soient dorés. Les réserver.",
				"Dans la même cocotte, faire dorer les morceaux de coq de tous côtés. Flamber au cognac.",
				"Saupoudrer de farine, mélanger et verser le vin rouge. Ajouter le bouquet garni.",
				"Couvrir et laisser mijoter 1h à feu doux.",
				"Pendant ce temps, faire revenir les oignons grelots et les champignons dans le beurre.",
				"Ajouter les légumes et les lardons dans la cocotte. Poursuivre la cuisson 30 minutes.",
				"Vérifier l'assaisonnement et servir bien chaud avec des pommes de terre vapeur.",
			),
		},
	},
	{
		author:   "patissier_paul",
		category: "Desserts",
		recipe: domain.Recipe{
			Title: "Tarte aux fraises et crème pâtissière",
			Description: "Une tarte classique avec une pâte sablée croustillante, une onctueuse crème pâtissière " +
				"à la vanille et des fraises fraîches de saison.",
			Servings:        8,
			PrepTimeMinutes: 45,
			CookTimeMinutes: 35,
			Difficulty:      domain.DifficultyMedium,
			ImageURL:        "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=800",
			Tags:            []string{"tarte", "fraises", "crème pâtissière", "dessert"},
			Ingredients: []domain.Ingredient{
				{Name: "Farine", Quantity: 250, Unit: "g"},
				{Name: "Beurre", Quantity: 125, Unit: "g"},
				{Name: "Sucre", Quantity: 50, Unit: "g"},
				{Name: "Œuf", Quantity: 1, Unit: "pièce"},
				{Name: "Lait", Quantity: 500, Unit: "ml"},
				{Name: "Jaunes d'œufs", Quantity: 4, Unit: "pièces"},
				{Name: "Sucre en poudre", Quantity: 100, Unit: "g"},
				{Name: "Maïzena", Quantity: 40, Unit: "g"},
				{Name: "Vanille", Quantity: 1, Unit: "gousse"},
				{Name: "Fraises", Quantity: 500, Unit: "g"},
			},
			Instructions: steps(
				"Préparer la pâte sablée en mélangeant farine, beurre froid, sucre et œuf. "+
					"Former une boule et laisser reposer 1h au frais.",
				"Étaler la pâte et foncer un moule à tarte. Piquer le fond et cuire à blanc 15 minutes à 180°C.",
				"Pour la crème pâtissière : faire chauffer le lait avec la vanille fendue.",
				"Battre les jaunes d'œufs avec le sucre jusqu'à blanchissement, ajouter la maïzena.",
				"Verser le lait chaud progressivement, remettre sur le feu et faire épaissir en remuant constamment.",
				"Laisser refroidir la crème en couvrant d'un film plastique au contact.",
				"Garnir le fond de tarte de crème pâtissière, disposer les fraises équeutées et servir frais.",
			),
		},
	},
	{
		author:   "sophie_cuisine",
		category: "Salades",
		recipe: domain.Recipe{
			Title: "Buddha Bowl arc-en-ciel",
			Description: "Un bowl coloré et nutritif, parfait pour un déjeuner sain et équilibré. Plein de légumes " +
				"de saison, de protéines végétales et d'une sauce tahini délicieuse.",
			Servings:        2,
			PrepTimeMinutes: 25,
			CookTimeMinutes: 20,
			Difficulty:      domain.DifficultyEasy,
			ImageURL:        "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800",
			Tags:            []string{"healthy", "végétarien", "bowl", "coloré", "quinoa"},
			Ingredients: []domain.Ingredient{
				{Name: "Quinoa", Quantity: 150, Unit: "g"},
				{Name: "Betterave cuite", Quantity: 2, Unit: "pièces"},
				{Name: "Carottes", Quantity: 2, Unit: "pièces"},
				{Name: "Avocat", Quantity: 1, Unit: "pièce"},
				{Name: "Concombre", Quantity: 1, Unit: "pièce"},
				{Name: "Edamame", Quantity: 100, Unit: "g"},
				{Name: "Graines de tournesol", Quantity: 2, Unit: "cuillères à soupe"},
				{Name: "Tahini", Quantity: 3, Unit: "cuillères à soupe"},
				{Name: "Citron", Quantity: 1, Unit: "pièce"},
				{Name: "Huile d'olive", Quantity: 2, Unit: "cuillères à soupe"},
				{Name: "Miel", Quantity: 1, Unit: "cuillère à café"},
				{Name: "Gingembre frais", Quantity: 1, Unit: "cm"},
			},
			Instructions: steps(
				"Cuire le quinoa dans 300ml d'eau bouillante salée pendant 15 minutes. Laisser refroidir.",
				"Râper les carottes en julienne, couper les betteraves en lamelles.",
				"Découper l'avocat et le concombre en dés.",
				"Préparer la sauce en mélangeant tahini, jus de citron, huile d'olive, miel et gingembre râpé.",
				"Cuire les edamame 3 minutes dans l'eau bouillante salée.",
				"Disposer tous les ingrédients harmonieusement dans 2 bols.",
				"Parsemer de graines de tournesol et servir avec la sauce tahini à côté.",
			),
		},
	},
	{
		author:   "chef_marie",
		category: "Entrées",
		recipe: domain.Recipe{
			Title: "Velouté de potimarron aux châtaignes",
			Description: "Un velouté onctueux et réconfortant aux saveurs automnales. Le mariage du potimarron " +
				"et des châtaignes crée une harmonie parfaite.",
			Servings:        4,
			PrepTimeMinutes: 20,
			CookTimeMinutes: 40,
			Difficulty:      domain.DifficultyEasy,
			ImageURL:        "https://images.unsplash.com/photo-1476718406336-bb5a9690ee2a?w=800",
			Tags:            []string{"automne", "velouté", "potimarron", "châtaignes", "réconfortant"},
			Ingredients: []domain.Ingredient{
				{Name: "Potimarron", Quantity: 800, Unit: "g"},
				{Name: "Châtaignes cuites", Quantity: 150, Unit: "g"},
				{Name: "Oignon", Quantity: 1, Unit: "pièce"},
				{Name: "Bouillon de légumes", Quantity: 800, Unit: "ml"},
				{Name: "Crème fraîche", Quantity: 100, Unit: "ml"},
				{Name: "Beurre", Quantity: 30, Unit: "g"},
				{Name: "Muscade", Quantity: 1, Unit: "pincée"},
				{Name: "Sel", Quantity: 1, Unit: "au goût"},
				{Name: "Poivre", Quantity: 1, Unit: "au goût"},
				{Name: "Graines de courge", Quantity: 2, Unit: "cuillères à soupe"},
			},
			Instructions: steps(
				"Éplucher et couper le potimarron en cubes. Émincer l'oignon.",
				"Faire revenir l'oignon dans le beurre jusqu'à ce qu'il soit translucide.",
				"Ajouter les cubes de potimarron et les châtaignes émiettées.",
				"Verser le bouillon de légumes et porter à ébullition.",
				"Laisser mijoter 30 minutes jusqu'à ce que le potimarron soit tendre.",
				"Mixer le tout jusqu'à obtenir une texture lisse et onctueuse.",
				"Ajouter la crème fraîche, assaisonner avec sel, poivre et muscade.",
				"Servir chaud, décoré de graines de courge grillées.",
			),
		},
	},
}
