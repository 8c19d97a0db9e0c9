package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dukerupert/wardrobe/internal/auth"
	"github.com/dukerupert/wardrobe/internal/domain"
)

// =============================================================================
// FAKE SERVICES
// =============================================================================

type mockUserService struct {
	currentUserFunc  func(ctx context.Context, p domain.Principal) (*domain.User, error)
	listUsersFunc    func(ctx context.Context) ([]domain.User, error)
	getUserFunc      func(ctx context.Context, p domain.Principal, id int64) (*domain.User, error)
	registerFunc     func(ctx context.Context, params domain.RegisterUserParams) (*domain.User, error)
	updateUserFunc   func(ctx context.Context, p domain.Principal, params domain.UpdateUserParams) (*domain.User, error)
	deleteUserFunc   func(ctx context.Context, p domain.Principal, id int64) error
	authenticateFunc func(ctx context.Context, email, password string) (*domain.User, error)
}

func (m *mockUserService) CurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error) {
	if m.currentUserFunc != nil {
		return m.currentUserFunc(ctx, p)
	}
	return nil, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserService) GetUser(ctx context.Context, p domain.Principal, id int64) (*domain.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, p, id)
	}
	return nil, nil
}

func (m *mockUserService) Register(ctx context.Context, params domain.RegisterUserParams) (*domain.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, params)
	}
	return &domain.User{}, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, p domain.Principal, params domain.UpdateUserParams) (*domain.User, error) {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(ctx, p, params)
	}
	return &domain.User{}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, p domain.Principal, id int64) error {
	if m.deleteUserFunc != nil {
		return m.deleteUserFunc(ctx, p, id)
	}
	return nil
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, email, password)
	}
	return nil, domain.ErrBadCredentials
}

type mockTokenIssuer struct {
	issueFunc func(email string, roles []string) (auth.Token, error)
}

func (m *mockTokenIssuer) Issue(email string, roles []string) (auth.Token, error) {
	if m.issueFunc != nil {
		return m.issueFunc(email, roles)
	}
	return auth.Token{}, nil
}

type mockCategoryService struct {
	listFunc         func(ctx context.Context) ([]domain.Category, error)
	getByNameFunc    func(ctx context.Context, name string) (*domain.Category, error)
	createFunc       func(ctx context.Context, params domain.CategoryParams) (*domain.Category, error)
	updateFunc       func(ctx context.Context, params domain.CategoryParams) (*domain.Category, error)
	deleteFunc       func(ctx context.Context, id int64) error
	listProductsFunc func(ctx context.Context, name string) ([]domain.ProductSummary, error)
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryService) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return nil, domain.ErrCategoryNameNotFound(name)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, params domain.CategoryParams) (*domain.Category, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &domain.Category{Name: params.Name, WeatherSeason: params.WeatherSeason}, nil
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, params domain.CategoryParams) (*domain.Category, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, params)
	}
	return &domain.Category{ID: params.ID, Name: params.Name, WeatherSeason: params.WeatherSeason}, nil
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryService) ListCategoryProducts(ctx context.Context, name string) ([]domain.ProductSummary, error) {
	if m.listProductsFunc != nil {
		return m.listProductsFunc(ctx, name)
	}
	return nil, nil
}

type mockProductService struct {
	listFunc           func(ctx context.Context, page domain.Page) ([]domain.Product, error)
	getFunc            func(ctx context.Context, id int64) (*domain.Product, error)
	createFunc         func(ctx context.Context, params domain.ProductParams) (*domain.Product, error)
	updateFunc         func(ctx context.Context, params domain.ProductParams) (*domain.Product, error)
	deleteFunc         func(ctx context.Context, id int64) error
	addItemFunc        func(ctx context.Context, productID int64, params domain.ItemParams) (*domain.Item, error)
	updateItemFunc     func(ctx context.Context, params domain.ItemParams) (*domain.Item, error)
	deleteItemFunc     func(ctx context.Context, id int64) error
	assignFunc         func(ctx context.Context, productID, categoryID int64) error
	unassignFunc       func(ctx context.Context, productID, categoryID int64) error
	matchToWeatherFunc func(ctx context.Context, city, country string, page domain.Page) (*domain.WeatherMatch, error)
}

func (m *mockProductService) ListProducts(ctx context.Context, page domain.Page) ([]domain.Product, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page)
	}
	return nil, nil
}

func (m *mockProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound(id)
}

func (m *mockProductService) CreateProduct(ctx context.Context, params domain.ProductParams) (*domain.Product, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &domain.Product{Name: params.Name, Price: params.Price}, nil
}

func (m *mockProductService) UpdateProduct(ctx context.Context, params domain.ProductParams) (*domain.Product, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, params)
	}
	return &domain.Product{ID: params.ID, Name: params.Name, Price: params.Price}, nil
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProductService) AddItem(ctx context.Context, productID int64, params domain.ItemParams) (*domain.Item, error) {
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, productID, params)
	}
	return &domain.Item{ProductID: productID, Size: params.Size, Quantity: params.Quantity}, nil
}

func (m *mockProductService) UpdateItem(ctx context.Context, params domain.ItemParams) (*domain.Item, error) {
	if m.updateItemFunc != nil {
		return m.updateItemFunc(ctx, params)
	}
	return &domain.Item{ID: params.ID, Size: params.Size, Quantity: params.Quantity}, nil
}

func (m *mockProductService) DeleteItem(ctx context.Context, id int64) error {
	if m.deleteItemFunc != nil {
		return m.deleteItemFunc(ctx, id)
	}
	return nil
}

func (m *mockProductService) AssignToCategory(ctx context.Context, productID, categoryID int64) error {
	if m.assignFunc != nil {
		return m.assignFunc(ctx, productID, categoryID)
	}
	return nil
}

func (m *mockProductService) UnassignFromCategory(ctx context.Context, productID, categoryID int64) error {
	if m.unassignFunc != nil {
		return m.unassignFunc(ctx, productID, categoryID)
	}
	return nil
}

func (m *mockProductService) MatchToWeather(ctx context.Context, city, country string, page domain.Page) (*domain.WeatherMatch, error) {
	if m.matchToWeatherFunc != nil {
		return m.matchToWeatherFunc(ctx, city, country, page)
	}
	return &domain.WeatherMatch{}, nil
}

type mockImageService struct {
	uploadFunc func(ctx context.Context, productID int64, r io.Reader) (bool, error)
	deleteFunc func(ctx context.Context, productID int64) (bool, error)
	readFunc   func(ctx context.Context, productID int64) ([]byte, error)
}

func (m *mockImageService) UploadImage(ctx context.Context, productID int64, r io.Reader) (bool, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, productID, r)
	}
	return true, nil
}

func (m *mockImageService) DeleteImage(ctx context.Context, productID int64) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, productID)
	}
	return true, nil
}

func (m *mockImageService) ReadImage(ctx context.Context, productID int64) ([]byte, error) {
	if m.readFunc != nil {
		return m.readFunc(ctx, productID)
	}
	return nil, domain.ErrImageNotFound(productID)
}

type mockShoppingService struct {
	viewCartFunc   func(ctx context.Context, p domain.Principal) (*domain.Cart, error)
	addFunc        func(ctx context.Context, p domain.Principal, itemID int64, amount int32) error
	removeFunc     func(ctx context.Context, p domain.Principal, itemID int64, amount int32) error
	checkoutFunc   func(ctx context.Context, p domain.Principal) (*domain.Order, error)
	listOrdersFunc func(ctx context.Context, p domain.Principal) ([]domain.Order, error)
}

func (m *mockShoppingService) ViewCart(ctx context.Context, p domain.Principal) (*domain.Cart, error) {
	if m.viewCartFunc != nil {
		return m.viewCartFunc(ctx, p)
	}
	return &domain.Cart{}, nil
}

func (m *mockShoppingService) AddCartItem(ctx context.Context, p domain.Principal, itemID int64, amount int32) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, p, itemID, amount)
	}
	return nil
}

func (m *mockShoppingService) RemoveCartItem(ctx context.Context, p domain.Principal, itemID int64, amount int32) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, p, itemID, amount)
	}
	return nil
}

func (m *mockShoppingService) Checkout(ctx context.Context, p domain.Principal) (*domain.Order, error) {
	if m.checkoutFunc != nil {
		return m.checkoutFunc(ctx, p)
	}
	return &domain.Order{}, nil
}

func (m *mockShoppingService) ListOrders(ctx context.Context, p domain.Principal) ([]domain.Order, error) {
	if m.listOrdersFunc != nil {
		return m.listOrdersFunc(ctx, p)
	}
	return nil, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// apiResponse mirrors the envelope with data left raw for per-test decoding.
type apiResponse struct {
	Status     string                     `json:"status"`
	StatusCode int                        `json:"statusCode"`
	Message    string                     `json:"message"`
	Data       map[string]json.RawMessage `json:"data"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// newRequest builds a request with optional JSON body, path values and principal.
func newRequest(method, target, body string, principal *domain.Principal, pathValues ...string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	if principal != nil {
		req = req.WithContext(domain.NewContextWithPrincipal(req.Context(), principal))
	}
	return req
}

var (
	userPrincipal  = &domain.Principal{Email: "anna@example.com", Roles: []string{domain.RoleUser}}
	adminPrincipal = &domain.Principal{Email: "admin@example.com", Roles: []string{domain.RoleAdmin, domain.RoleUser}}
)
