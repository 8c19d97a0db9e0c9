package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/wardrobe/internal/domain"
)

const (
	dateLayout      = "2006-01-02"
	orderTimeLayout = "2006-01-02 15:04"
)

// =============================================================================
// REQUESTS
// =============================================================================

type addressRequest struct {
	ApartmentNumber *int32 `json:"apartmentNumber" validate:"required,min=0"`
	Street          string `json:"street" validate:"required,min=2"`
	City            string `json:"city" validate:"required,min=2"`
	Country         string `json:"country" validate:"required,min=2"`
}

func (a *addressRequest) toDomain() domain.Address {
	return domain.Address{
		ApartmentNumber: *a.ApartmentNumber,
		Street:          a.Street,
		City:            a.City,
		Country:         a.Country,
	}
}

// userRequest is used for registration and self-update. Email is ignored on
// update.
type userRequest struct {
	ID               int64           `json:"id"`
	Email            string          `json:"email" validate:"required,email"`
	Password         string          `json:"password" validate:"required,min=8"`
	MatchingPassword string          `json:"matchingPassword" validate:"required,eqfield=Password"`
	FirstName        string          `json:"firstName" validate:"required,min=2"`
	LastName         string          `json:"lastName" validate:"required,min=2"`
	PhoneNumber      string          `json:"phoneNumber" validate:"required,min=2"`
	DOB              string          `json:"dob" validate:"required,datetime=2006-01-02"`
	Address          *addressRequest `json:"address" validate:"required"`
}

func (u *userRequest) dob() time.Time {
	t, _ := time.Parse(dateLayout, u.DOB)
	return t
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type categoryRequest struct {
	ID            int64  `json:"id"`
	Name          string `json:"name" validate:"required,min=2"`
	WeatherSeason string `json:"weatherSeason" validate:"season"`
}

func (c *categoryRequest) toDomain() domain.CategoryParams {
	season, _ := domain.ParseWeatherSeason(c.WeatherSeason)
	return domain.CategoryParams{ID: c.ID, Name: c.Name, WeatherSeason: season}
}

type productRequest struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name" validate:"required,min=2"`
	Price       *decimal.Decimal `json:"price" validate:"required,min=0"`
	Description string           `json:"description" validate:"required,min=2"`
	CategoryIDs []int64          `json:"categoriesIds" validate:"required"`
}

func (p *productRequest) toDomain() domain.ProductParams {
	return domain.ProductParams{
		ID:          p.ID,
		Name:        p.Name,
		Price:       *p.Price,
		Description: p.Description,
		CategoryIDs: p.CategoryIDs,
	}
}

type itemRequest struct {
	ID       int64  `json:"id"`
	Size     string `json:"size" validate:"required"`
	Quantity *int32 `json:"quantity" validate:"required,min=0"`
}

func (i *itemRequest) toDomain() domain.ItemParams {
	return domain.ItemParams{ID: i.ID, Size: i.Size, Quantity: *i.Quantity}
}

// =============================================================================
// RESPONSES
// =============================================================================

// money renders a decimal as a JSON number with two fractional digits.
type money decimal.Decimal

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

type roleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type addressResponse struct {
	ApartmentNumber int32  `json:"apartmentNumber"`
	Street          string `json:"street"`
	City            string `json:"city"`
	Country         string `json:"country"`
}

type userResponse struct {
	ID          int64            `json:"id"`
	Email       string           `json:"email"`
	Roles       []roleResponse   `json:"roles"`
	Enabled     bool             `json:"enabled"`
	FirstName   string           `json:"firstName"`
	LastName    string           `json:"lastName"`
	PhoneNumber string           `json:"phoneNumber"`
	DOB         string           `json:"dob,omitempty"`
	Address     *addressResponse `json:"address,omitempty"`
}

func newUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Roles:       make([]roleResponse, 0, len(u.Roles)),
		Enabled:     u.Enabled,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
	}
	if !u.DOB.IsZero() {
		resp.DOB = u.DOB.Format(dateLayout)
	}
	for _, r := range u.Roles {
		resp.Roles = append(resp.Roles, roleResponse{ID: r.ID, Name: r.Name})
	}
	if u.Address != nil {
		resp.Address = &addressResponse{
			ApartmentNumber: u.Address.ApartmentNumber,
			Street:          u.Address.Street,
			City:            u.Address.City,
			Country:         u.Address.Country,
		}
	}
	return resp
}

type categoryResponse struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	WeatherSeason domain.WeatherSeason `json:"weatherSeason"`
	Products      []productRead        `json:"products,omitempty"`
}

func newCategoryResponse(c domain.Category) categoryResponse {
	resp := categoryResponse{ID: c.ID, Name: c.Name, WeatherSeason: c.WeatherSeason}
	if c.Products != nil {
		resp.Products = newProductReads(c.Products)
	}
	return resp
}

type productRead struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    money   `json:"price"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func newProductReads(products []domain.ProductSummary) []productRead {
	out := make([]productRead, 0, len(products))
	for _, p := range products {
		out = append(out, productRead{ID: p.ID, Name: p.Name, Price: money(p.Price), ImageURL: p.ImageURL})
	}
	return out
}

type itemRead struct {
	ID       int64  `json:"id"`
	Size     string `json:"size"`
	Quantity int32  `json:"quantity"`
}

type productResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Price       money              `json:"price"`
	ImageURL    *string            `json:"imageUrl,omitempty"`
	Description string             `json:"description,omitempty"`
	Items       []itemRead         `json:"items,omitempty"`
	Categories  []categoryResponse `json:"categories,omitempty"`
}

func newProductResponse(p domain.Product) productResponse {
	resp := productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       money(p.Price),
		ImageURL:    p.ImageURL,
		Description: p.Description,
	}
	if p.Items != nil {
		resp.Items = make([]itemRead, 0, len(p.Items))
		for _, i := range p.Items {
			resp.Items = append(resp.Items, itemRead{ID: i.ID, Size: i.Size, Quantity: i.Quantity})
		}
	}
	if p.Categories != nil {
		resp.Categories = make([]categoryResponse, 0, len(p.Categories))
		for _, c := range p.Categories {
			resp.Categories = append(resp.Categories, newCategoryResponse(c))
		}
	}
	return resp
}

func newProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}

type itemResponse struct {
	ID       int64        `json:"id"`
	Size     string       `json:"size"`
	Quantity int32        `json:"quantity"`
	Product  *productRead `json:"product,omitempty"`
}

func newItemResponse(i *domain.Item) itemResponse {
	return itemResponse{ID: i.ID, Size: i.Size, Quantity: i.Quantity}
}

type cartItemResponse struct {
	ID     int64        `json:"id"`
	Item   itemResponse `json:"item"`
	Amount int32        `json:"amount"`
}

type cartResponse struct {
	ID         int64              `json:"id"`
	TotalValue money              `json:"totalValue"`
	CartItems  []cartItemResponse `json:"cartItems"`
}

func newCartResponse(c *domain.Cart) cartResponse {
	resp := cartResponse{
		ID:         c.ID,
		TotalValue: money(c.TotalValue),
		CartItems:  make([]cartItemResponse, 0, len(c.Lines)),
	}
	for _, l := range c.Lines {
		p := l.Item.Product
		resp.CartItems = append(resp.CartItems, cartItemResponse{
			ID: l.ID,
			Item: itemResponse{
				ID:       l.Item.ID,
				Size:     l.Item.Size,
				Quantity: l.Item.Quantity,
				Product:  &productRead{ID: p.ID, Name: p.Name, Price: money(p.Price), ImageURL: p.ImageURL},
			},
			Amount: l.Amount,
		})
	}
	return resp
}

type orderedProduct struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	Price money  `json:"price"`
}

type orderedItem struct {
	ID      *int64         `json:"id"`
	Size    string         `json:"size"`
	Product orderedProduct `json:"product"`
}

type orderItemResponse struct {
	ID     int64       `json:"id"`
	Item   orderedItem `json:"item"`
	Amount int32       `json:"amount"`
}

type orderResponse struct {
	ID          int64               `json:"id"`
	OrderItems  []orderItemResponse `json:"orderItems"`
	TotalValue  money               `json:"totalValue"`
	DateOfOrder string              `json:"dateOfOrder"`
}

func newOrderResponse(o domain.Order) orderResponse {
	resp := orderResponse{
		ID:          o.ID,
		OrderItems:  make([]orderItemResponse, 0, len(o.Lines)),
		TotalValue:  money(o.TotalValue),
		DateOfOrder: o.DateOfOrder.Format(orderTimeLayout),
	}
	for _, l := range o.Lines {
		resp.OrderItems = append(resp.OrderItems, orderItemResponse{
			ID: l.ID,
			Item: orderedItem{
				ID:   l.ItemID,
				Size: l.Size,
				Product: orderedProduct{
					ID:    l.ProductID,
					Name:  l.ProductName,
					Price: money(l.UnitPrice),
				},
			},
			Amount: l.Amount,
		})
	}
	return resp
}
