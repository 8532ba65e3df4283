package model

// Category is a photo search category offered in the selector
type Category string

const (
	// CategoryPlaceholder is shown before the user picks a category. It is never a valid search query.
	CategoryPlaceholder Category = "Choose Category"

	CategoryFood    Category = "Food"
	CategoryAnimals Category = "Animals"
	CategoryPeople  Category = "People"
	CategoryMusic   Category = "Music"
	CategoryArt     Category = "Art"
	CategoryVehicle Category = "Vehicle"
	CategoryNature  Category = "Nature"
	CategoryRandom  Category = "Random"
)

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is one of the selectable categories
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Categories returns the selectable categories in display order
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryAnimals,
		CategoryPeople,
		CategoryMusic,
		CategoryArt,
		CategoryVehicle,
		CategoryNature,
		CategoryRandom,
	}
}

// CategoryOptions returns the selectable categories as strings for a select widget
func CategoryOptions() []string {
	categories := Categories()
	options := make([]string, 0, len(categories))
	for _, c := range categories {
		options = append(options, c.String())
	}
	return options
}
