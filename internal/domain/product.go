package domain

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PRODUCT DOMAIN TYPES
// =============================================================================

// ProductSummary is the product projection embedded in categories and cart lines.
type ProductSummary struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURL    *string
}

// Product is a catalog entry with its sized stock units and categories.
// Categories carry no products of their own.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURL    *string
	Items       []Item
	Categories  []Category
}

// Item is a sized stock unit of a product. Sizes are unique per product.
type Item struct {
	ID        int64
	ProductID int64
	Size      string
	Quantity  int32
}

// ProductParams carries a validated product request. ID is ignored on create.
type ProductParams struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description string
	CategoryIDs []int64
}

// ItemParams carries a validated item request. ID is ignored on create.
type ItemParams struct {
	ID       int64
	Size     string
	Quantity int32
}

// WeatherMatch is the result of matching the catalog to current weather.
type WeatherMatch struct {
	Celsius  float64
	Season   WeatherSeason
	Products []Product
}

// ProductService manages products, their items and category assignments.
type ProductService interface {
	// ListProducts returns one page of products without items.
	ListProducts(ctx context.Context, page Page) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, params ProductParams) (*Product, error)
	UpdateProduct(ctx context.Context, params ProductParams) (*Product, error)

	// DeleteProduct attempts image removal first; failure there is not fatal.
	DeleteProduct(ctx context.Context, id int64) error

	AddItem(ctx context.Context, productID int64, params ItemParams) (*Item, error)
	UpdateItem(ctx context.Context, params ItemParams) (*Item, error)
	DeleteItem(ctx context.Context, id int64) error

	AssignToCategory(ctx context.Context, productID, categoryID int64) error
	UnassignFromCategory(ctx context.Context, productID, categoryID int64) error

	// MatchToWeather returns the page of products whose categories suit the
	// current temperature at the given place.
	MatchToWeather(ctx context.Context, city, country string, page Page) (*WeatherMatch, error)
}

// ImageService stores one PNG image per product.
type ImageService interface {
	// UploadImage replaces the product image. It reports false on storage
	// failure without returning an error.
	UploadImage(ctx context.Context, productID int64, r io.Reader) (bool, error)

	// DeleteImage removes the image file and always clears the product's
	// image URL. It reports whether the file removal succeeded.
	DeleteImage(ctx context.Context, productID int64) (bool, error)

	// ReadImage returns the bytes of the product's current image.
	ReadImage(ctx context.Context, productID int64) ([]byte, error)
}

// ImageKey is the storage key of a product's image.
func ImageKey(productID int64) string {
	return strconv.FormatInt(productID, 10) + ".png"
}

// Default image URLs assigned on product creation.
const (
	TShirtImageURL   = "https://cdn.pixabay.com/photo/2016/03/25/09/04/t-shirt-1278404_960_720.jpg"
	TrousersImageURL = "https://cdn.pixabay.com/photo/2017/08/27/05/33/trousers-2685231_960_720.jpg"
	HoodieImageURL   = "https://img.freepik.com/free-photo/black-hoodie-back-isolated_125540-839.jpg?w=1380"
	CoatImageURL     = "https://img.freepik.com/free-photo/leather-jacket_1101-716.jpg?w=1380"
	OtherImageURL    = "https://img.freepik.com/free-photo/shop-clothing-clothes-shop-hanger-modern-shop-boutique_1150-8886.jpg?w=1380"
)

var defaultImages = []struct {
	keyword string
	url     string
}{
	{"t-shirt", TShirtImageURL},
	{"trousers", TrousersImageURL},
	{"hoodie", HoodieImageURL},
	{"coat", CoatImageURL},
}

// DefaultImageURL picks the image for a new product from the first category
// name containing a known keyword. Keywords are tested in a fixed order per
// category.
func DefaultImageURL(categoryNames []string) string {
	for _, name := range categoryNames {
		for _, img := range defaultImages {
			if strings.Contains(name, img.keyword) {
				return img.url
			}
		}
	}
	return OtherImageURL
}
