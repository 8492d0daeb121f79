package recipe

// 內建的本地食譜資料集，取代外部資料來源時使用；載入後視為唯讀
var localRecipes = []Recipe{
	{
		ID:          "ginger-tofu-stirfry",
		Title:       "Ginger Tofu Stir-Fry",
		Description: "Crisp tofu tossed with ginger, garlic, and a glossy soy glaze over quick-fried vegetables.",
		Image:       "/placeholder.jpg",
		TimeMinutes: 25,
		Cuisine:     "Chinese",
		DietFlags:   []DietFlag{DietVegan, DietVegetarian, DietDairyFree, DietNutFree},
		Tags:        []string{"weeknight", "stir-fry", "quick"},
		Ingredients: []string{"firm tofu", "soy sauce", "fresh ginger", "garlic", "broccoli florets", "sesame oil", "scallions"},
		Steps: []string{
			"Press the tofu and cut into cubes.",
			"Sear tofu in a hot wok until golden on all sides.",
			"Add garlic, ginger, and broccoli; stir-fry two minutes.",
			"Pour in soy sauce and sesame oil, toss, and finish with scallions.",
		},
	},
	{
		ID:          "peanut-noodle-bowl",
		Title:       "Peanut Noodle Bowl",
		Description: "Chilled wheat noodles in a creamy peanut-lime dressing with crunchy vegetables.",
		Image:       "/placeholder.jpg",
		TimeMinutes: 20,
		Cuisine:     "Thai",
		DietFlags:   []DietFlag{DietVegan, DietVegetarian, DietDairyFree},
		Tags:        []string{"noodles", "cold", "lunch"},
		Ingredients: []string{"wheat noodles", "peanut butter", "lime juice", "soy sauce", "cucumber", "carrot", "crushed peanuts"},
		Steps: []string{
			"Cook noodles and rinse under cold water.",
			"Whisk peanut butter, lime juice, and soy sauce into a dressing.",
			"Toss noodles with vegetables and dressing.",
			"Top with crushed peanuts.",
		},
	},
	{
		ID:          "honey-garlic-chicken",
		Title:       "Honey Garlic Chicken Skillet",
		Description: "Seared chicken thighs glazed with honey, garlic, and a splash of soy, finished with tofu croutons.",
		Image:       "/placeholder.jpg",
		TimeMinutes: 35,
		Cuisine:     "Fusion",
		DietFlags:   []DietFlag{DietDairyFree, DietNutFree},
		Tags:        []string{"skillet", "dinner"},
		Ingredients: []string{"chicken thighs", "honey", "garlic", "soy sauce", "firm tofu", "olive oil", "black pepper"},
		Steps: []string{
			"Sear chicken thighs skin side down until crisp.",
			"Fry tofu cubes in the rendered fat.",
			"Add honey, garlic, and soy; reduce to a glaze.",
			"Rest five minutes before serving.",
		},
	},
	{
		ID:          "margherita-flatbread",
		Title:       "Margherita Flatbread",
		Description: "Blistered flatbread with crushed tomatoes, fresh mozzarella, and torn basil.",
		Image:       "/placeholder.jpg",
		TimeMinutes: 30,
		Cuisine:     "Italian",
		DietFlags:   []DietFlag{DietVegetarian, DietNutFree},
		Tags:        []string{"bread", "baked", "crowd-pleaser"},
		Ingredients: []string{"flatbread dough", "crushed tomatoes", "fresh mozzarella", "basil leaves", "olive oil", "flaky salt"},
		Steps: []string{
			"Stretch the dough and brush with olive oil.",
			"Spread crushed tomatoes and scatter mozzarella.",
			"Bake at high heat until blistered.",
			"Finish with basil and flaky salt.",
		},
	},
	{
		ID:          "lemon-herb-salmon",
		Title:       "Lemon Herb Salmon",
		Description: "Oven-roasted salmon fillets with lemon, dill, and a light olive oil drizzle.",
		Image:       "/placeholder.jpg",
		TimeMinutes: 22,
		Cuisine:     "Mediterranean",
		DietFlags:   []DietFlag{DietPescatarian, DietGlutenFree, DietDairyFree, DietNutFree},
		Tags:        []string{"seafood", "roasted", "light"},
		Ingredients: []string{"salmon fillets", "lemon", "fresh dill", "olive oil", "capers", "sea salt"},
		Steps: []string{
			"Arrange fillets on a lined tray.",
			"Drizzle with olive oil and scatter dill and capers.",
			"Roast until just opaque in the center.",
			"Squeeze lemon over before serving.",
		},
	},
	{
		ID:          "chickpea-coconut-curry",
		Title:       "Chickpea Coconut Curry",
		Description: "A gently spiced curry of chickpeas and spinach simmered in coconut milk.",
		Image:       "/placeholder.jpg",
		TimeMinutes: 40,
		Cuisine:     "Indian",
		DietFlags:   []DietFlag{DietVegan, DietVegetarian, DietGlutenFree, DietDairyFree, DietNutFree},
		Tags:        []string{"curry", "one-pot", "comfort"},
		Ingredients: []string{"chickpeas", "coconut milk", "spinach", "onion", "garlic", "curry powder", "basmati rice"},
		Steps: []string{
			"Soften onion and garlic with curry powder.",
			"Add chickpeas and coconut milk; simmer fifteen minutes.",
			"Fold in spinach until wilted.",
			"Serve over basmati rice.",
		},
	},
	{
		ID:          "beef-barley-stew",
		Title:       "Slow Beef and Barley Stew",
		Description: "Browned beef simmered low with barley, carrots, and thyme until spoon-tender.",
		Image:       "/placeholder.jpg",
		TimeMinutes: 95,
		Cuisine:     "American",
		DietFlags:   []DietFlag{DietDairyFree, DietNutFree},
		Tags:        []string{"stew", "slow", "winter"},
		Ingredients: []string{"beef chuck", "pearl barley", "carrots", "celery", "beef stock", "thyme", "bay leaf"},
		Steps: []string{
			"Brown the beef in batches.",
			"Sweat carrots and celery in the same pot.",
			"Return beef with stock, barley, and herbs.",
			"Simmer covered until the barley is tender.",
		},
	},
	{
		ID:          "shakshuka-skillet",
		Title:       "Shakshuka Skillet",
		Description: "Eggs poached in a smoky pepper and tomato sauce, served with warm pita.",
		Image:       "/placeholder.jpg",
		TimeMinutes: 28,
		Cuisine:     "Middle Eastern",
		DietFlags:   []DietFlag{DietVegetarian, DietHalal, DietKosher, DietNutFree},
		Tags:        []string{"brunch", "eggs", "skillet"},
		Ingredients: []string{"eggs", "crushed tomatoes", "red bell pepper", "onion", "smoked paprika", "cumin", "pita bread"},
		Steps: []string{
			"Soften onion and pepper with the spices.",
			"Add tomatoes and simmer until thick.",
			"Nestle in the eggs and cover until just set.",
			"Serve from the pan with pita.",
		},
	},
}

// recipeIndex 以 ID 建立索引，啟動時建立一次
var recipeIndex = func() map[string]*Recipe {
	idx := make(map[string]*Recipe, len(localRecipes))
	for i := range localRecipes {
		idx[localRecipes[i].ID] = &localRecipes[i]
	}
	return idx
}()
