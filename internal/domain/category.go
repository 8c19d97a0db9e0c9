package domain

import "context"

// WeatherSeason tags a category with the weather it suits.
type WeatherSeason string

const (
	SeasonSpring WeatherSeason = "SPRING"
	SeasonSummer WeatherSeason = "SUMMER"
	SeasonAutumn WeatherSeason = "AUTUMN"
	SeasonWinter WeatherSeason = "WINTER"
	SeasonNone   WeatherSeason = "NONE"
)

// ParseWeatherSeason maps a wire value to a season. Empty means NONE.
func ParseWeatherSeason(s string) (WeatherSeason, bool) {
	switch WeatherSeason(s) {
	case "":
		return SeasonNone, true
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonNone:
		return WeatherSeason(s), true
	}
	return "", false
}

// Category is a named product grouping. Products is only populated by
// the single-category read.
type Category struct {
	ID            int64
	Name          string
	WeatherSeason WeatherSeason
	Products      []ProductSummary
}

// CategoryParams carries a validated category request. ID is ignored on create.
type CategoryParams struct {
	ID            int64
	Name          string
	WeatherSeason WeatherSeason
}

// CategoryService manages categories. Writes run in a transaction.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	CreateCategory(ctx context.Context, params CategoryParams) (*Category, error)
	UpdateCategory(ctx context.Context, params CategoryParams) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// ListCategoryProducts returns the products assigned to the named category.
	ListCategoryProducts(ctx context.Context, name string) ([]ProductSummary, error)
}
