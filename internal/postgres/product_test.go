package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/jobs"
	"github.com/dukerupert/wardrobe/internal/repository"
)

func newTestProductService(m repository.Querier, thermo *fakeThermometer, images *memStorage) *ProductService {
	if thermo == nil {
		thermo = &fakeThermometer{}
	}
	if images == nil {
		images = newMemStorage()
	}
	return NewProductService(m, &passThroughScope{}, images, thermo, discardLogger())
}

func TestProductService_CreateProduct_DefaultImage(t *testing.T) {
	tests := []struct {
		name       string
		categories []repository.Category
		wantURL    string
	}{
		{
			name:       "first matching category wins",
			categories: []repository.Category{{ID: 1, Name: "winter coats"}, {ID: 2, Name: "t-shirts"}},
			wantURL:    domain.CoatImageURL,
		},
		{
			name:       "keyword in later category",
			categories: []repository.Category{{ID: 3, Name: "sale"}, {ID: 4, Name: "hoodie"}},
			wantURL:    domain.HoodieImageURL,
		},
		{
			name:    "no categories",
			wantURL: domain.OtherImageURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)

			var ids []int64
			for _, c := range tt.categories {
				ids = append(ids, c.ID)
				mockRepo.EXPECT().GetCategoryByID(gomock.Any(), c.ID).Return(c, nil)
				mockRepo.EXPECT().AssignProductCategory(gomock.Any(), repository.AssignProductCategoryParams{
					ProductID: 20, CategoryID: c.ID,
				}).Return(nil)
			}
			mockRepo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, arg repository.CreateProductParams) (repository.Product, error) {
					assert.Equal(t, tt.wantURL, arg.ImageUrl.String)
					return repository.Product{
						ID: 20, Name: arg.Name, Price: arg.Price, Description: arg.Description, ImageUrl: arg.ImageUrl,
					}, nil
				})

			svc := newTestProductService(mockRepo, nil, nil)
			p, err := svc.CreateProduct(context.Background(), domain.ProductParams{
				Name:        "Parka",
				Price:       decimal.RequireFromString("149.99"),
				Description: "Warm",
				CategoryIDs: ids,
			})

			require.NoError(t, err)
			require.NotNil(t, p.ImageURL)
			assert.Equal(t, tt.wantURL, *p.ImageURL)
			assert.Len(t, p.Categories, len(tt.categories))
		})
	}
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	mockRepo.EXPECT().GetCategoryByID(gomock.Any(), int64(77)).Return(repository.Category{}, pgx.ErrNoRows)

	scope := &passThroughScope{}
	svc := NewProductService(mockRepo, scope, newMemStorage(), &fakeThermometer{}, discardLogger())
	_, err := svc.CreateProduct(context.Background(), domain.ProductParams{Name: "Parka", CategoryIDs: []int64{77}})

	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	assert.Equal(t, "Category with id: 77 not found", domain.ErrorMessage(err))
	assert.Error(t, scope.lastErr)
}

func TestProductService_UpdateProduct_ReplacesCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	image := pgtype.Text{String: "5.png", Valid: true}

	mockRepo.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(repository.Product{ID: 5, ImageUrl: image}, nil)
	mockRepo.EXPECT().GetCategoryByID(gomock.Any(), int64(2)).Return(repository.Category{ID: 2, Name: "hoodie"}, nil)
	mockRepo.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).Return(repository.Product{ID: 5, Name: "Zip hoodie", ImageUrl: image}, nil)
	gomock.InOrder(
		mockRepo.EXPECT().ClearProductCategories(gomock.Any(), int64(5)).Return(nil),
		mockRepo.EXPECT().AssignProductCategory(gomock.Any(), repository.AssignProductCategoryParams{ProductID: 5, CategoryID: 2}).Return(nil),
	)
	mockRepo.EXPECT().ListItemsByProduct(gomock.Any(), int64(5)).Return([]repository.Item{{ID: 1, ProductID: 5, Size: "M", Quantity: 3}}, nil)
	mockRepo.EXPECT().ListCategoriesForProducts(gomock.Any(), []int64{5}).Return([]repository.ListCategoriesForProductsRow{
		{ProductID: 5, ID: 2, Name: "hoodie", WeatherSeason: "AUTUMN"},
	}, nil)

	svc := newTestProductService(mockRepo, nil, nil)
	p, err := svc.UpdateProduct(context.Background(), domain.ProductParams{ID: 5, Name: "Zip hoodie", CategoryIDs: []int64{2, 2}})

	require.NoError(t, err)
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "5.png", *p.ImageURL)
	require.Len(t, p.Items, 1)
	require.Len(t, p.Categories, 1)
	assert.Equal(t, domain.SeasonAutumn, p.Categories[0].WeatherSeason)
}

func TestProductService_AddItem_SizeTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	mockRepo.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(repository.Product{ID: 5}, nil)
	mockRepo.EXPECT().GetItemByProductAndSize(gomock.Any(), repository.GetItemByProductAndSizeParams{ProductID: 5, Size: "L"}).
		Return(repository.Item{ID: 9, ProductID: 5, Size: "L"}, nil)

	svc := newTestProductService(mockRepo, nil, nil)
	_, err := svc.AddItem(context.Background(), 5, domain.ItemParams{Size: "L", Quantity: 2})

	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	assert.Equal(t, "Item with size: L already exists", domain.ErrorMessage(err))
}

func TestProductService_UpdateItem(t *testing.T) {
	tests := []struct {
		name     string
		size     string
		setup    func(m *repository.MockQuerier)
		wantCode string
	}{
		{
			name: "same size only changes quantity",
			size: "M",
			setup: func(m *repository.MockQuerier) {
				m.EXPECT().UpdateItem(gomock.Any(), repository.UpdateItemParams{ID: 9, Size: "M", Quantity: 7}).
					Return(repository.Item{ID: 9, ProductID: 5, Size: "M", Quantity: 7}, nil)
			},
		},
		{
			name: "new size taken by a sibling",
			size: "L",
			setup: func(m *repository.MockQuerier) {
				m.EXPECT().GetItemByProductAndSize(gomock.Any(), repository.GetItemByProductAndSizeParams{ProductID: 5, Size: "L"}).
					Return(repository.Item{ID: 10}, nil)
			},
			wantCode: domain.ECONFLICT,
		},
		{
			name: "new free size",
			size: "S",
			setup: func(m *repository.MockQuerier) {
				m.EXPECT().GetItemByProductAndSize(gomock.Any(), gomock.Any()).Return(repository.Item{}, pgx.ErrNoRows)
				m.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(repository.Item{ID: 9, ProductID: 5, Size: "S", Quantity: 7}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)
			mockRepo.EXPECT().GetItemByID(gomock.Any(), int64(9)).Return(repository.Item{ID: 9, ProductID: 5, Size: "M", Quantity: 1}, nil)
			tt.setup(mockRepo)

			svc := newTestProductService(mockRepo, nil, nil)
			item, err := svc.UpdateItem(context.Background(), domain.ItemParams{ID: 9, Size: tt.size, Quantity: 7})

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, item.Size)
			assert.Equal(t, int32(7), item.Quantity)
		})
	}
}

func TestProductService_DeleteItem_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	mockRepo.EXPECT().DeleteCartLinesByItem(gomock.Any(), int64(4)).Return(nil, nil)
	mockRepo.EXPECT().DeleteItem(gomock.Any(), int64(4)).Return(int64(0), nil)

	svc := newTestProductService(mockRepo, nil, nil)
	err := svc.DeleteItem(context.Background(), 4)

	assert.Equal(t, "Item with id: 4 not found", domain.ErrorMessage(err))
}

func TestProductService_Assignment(t *testing.T) {
	tests := []struct {
		name    string
		assign  bool
		exists  bool
		wantMsg string
	}{
		{name: "assign twice", assign: true, exists: true, wantMsg: "Product with id: 5 is already assigned to category with id: 2"},
		{name: "unassign missing link", assign: false, exists: false, wantMsg: "Product with id: 5 is not assigned to category with id: 2"},
		{name: "assign", assign: true, exists: false},
		{name: "unassign", assign: false, exists: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)
			link := repository.ProductCategoryExistsParams{ProductID: 5, CategoryID: 2}

			mockRepo.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(repository.Product{ID: 5}, nil)
			mockRepo.EXPECT().GetCategoryByID(gomock.Any(), int64(2)).Return(repository.Category{ID: 2}, nil)
			mockRepo.EXPECT().ProductCategoryExists(gomock.Any(), link).Return(tt.exists, nil)
			if tt.wantMsg == "" {
				if tt.assign {
					mockRepo.EXPECT().AssignProductCategory(gomock.Any(), repository.AssignProductCategoryParams(link)).Return(nil)
				} else {
					mockRepo.EXPECT().UnassignProductCategory(gomock.Any(), repository.UnassignProductCategoryParams(link)).Return(int64(1), nil)
				}
			}

			svc := newTestProductService(mockRepo, nil, nil)
			var err error
			if tt.assign {
				err = svc.AssignToCategory(context.Background(), 5, 2)
			} else {
				err = svc.UnassignFromCategory(context.Background(), 5, 2)
			}

			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
			assert.Equal(t, tt.wantMsg, domain.ErrorMessage(err))
		})
	}
}

func TestProductService_MatchToWeather(t *testing.T) {
	coats := repository.Category{ID: 1, Name: "coats", WeatherSeason: "WINTER"}
	scarves := repository.Category{ID: 2, Name: "scarves", WeatherSeason: "WINTER"}
	p := func(id int64) repository.Product {
		return repository.Product{ID: id, Name: "p", Price: decimal.NewFromInt(10)}
	}

	tests := []struct {
		name    string
		page    domain.Page
		wantIDs []int64
	}{
		{name: "first page", page: domain.Page{Number: 0, Size: 2}, wantIDs: []int64{3, 5}},
		{name: "last partial page", page: domain.Page{Number: 1, Size: 2}, wantIDs: []int64{8}},
		{name: "past the end", page: domain.Page{Number: 4, Size: 2}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)
			thermo := &fakeThermometer{celsius: 3.2}

			mockRepo.EXPECT().ListCategoriesBySeason(gomock.Any(), "WINTER").Return([]repository.Category{coats, scarves}, nil)
			mockRepo.EXPECT().ListProductsByCategory(gomock.Any(), int64(1)).Return([]repository.Product{p(8), p(3)}, nil)
			mockRepo.EXPECT().ListProductsByCategory(gomock.Any(), int64(2)).Return([]repository.Product{p(3), p(5)}, nil)
			if len(tt.wantIDs) > 0 {
				mockRepo.EXPECT().ListCategoriesForProducts(gomock.Any(), tt.wantIDs).Return(nil, nil)
			}

			svc := newTestProductService(mockRepo, thermo, nil)
			match, err := svc.MatchToWeather(context.Background(), "Oslo", "Norway", tt.page)

			require.NoError(t, err)
			assert.Equal(t, domain.SeasonWinter, match.Season)
			assert.InDelta(t, 3.2, match.Celsius, 1e-9)

			got := make([]int64, 0, len(match.Products))
			for _, mp := range match.Products {
				got = append(got, mp.ID)
				assert.NotNil(t, mp.Categories)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestProductService_MatchToWeather_Failures(t *testing.T) {
	t.Run("invalid page never calls upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		thermo := &fakeThermometer{}
		svc := newTestProductService(repository.NewMockQuerier(ctrl), thermo, nil)

		_, err := svc.MatchToWeather(context.Background(), "Oslo", "Norway", domain.Page{Number: 0, Size: 0})

		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		assert.Zero(t, thermo.calls)
	})

	t.Run("page past the int32 range never calls upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		thermo := &fakeThermometer{}
		svc := newTestProductService(repository.NewMockQuerier(ctrl), thermo, nil)

		_, err := svc.MatchToWeather(context.Background(), "Oslo", "Norway", domain.Page{Number: 1 << 62, Size: 2})

		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		assert.Zero(t, thermo.calls)
	})

	t.Run("thermometer error is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		thermo := &fakeThermometer{err: domain.ErrLocationNotFound("Atlantis", "Nowhere")}
		svc := newTestProductService(repository.NewMockQuerier(ctrl), thermo, nil)

		_, err := svc.MatchToWeather(context.Background(), "Atlantis", "Nowhere", domain.Page{Size: 10})

		assert.Equal(t, "Localization for city: Atlantis in country: Nowhere not found", domain.ErrorMessage(err))
	})
}

func TestProductService_ListProducts_Paging(t *testing.T) {
	t.Run("passes limit and offset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repository.NewMockQuerier(ctrl)
		mockRepo.EXPECT().ListProducts(gomock.Any(), repository.ListProductsParams{Limit: 10, Offset: 30}).Return(nil, nil)

		svc := newTestProductService(mockRepo, nil, nil)
		products, err := svc.ListProducts(context.Background(), domain.Page{Number: 3, Size: 10})

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("offset past int32 is rejected before querying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestProductService(repository.NewMockQuerier(ctrl), nil, nil)

		_, err := svc.ListProducts(context.Background(), domain.Page{Number: 214748365, Size: 10})

		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Run("removes the image file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repository.NewMockQuerier(ctrl)
		images := newMemStorage()
		images.files["5.png"] = []byte("png")

		mockRepo.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(repository.Product{ID: 5}, nil)
		mockRepo.EXPECT().DeleteCartLinesByProduct(gomock.Any(), int64(5)).Return(nil, nil)
		mockRepo.EXPECT().DeleteProduct(gomock.Any(), int64(5)).Return(int64(1), nil)

		svc := newTestProductService(mockRepo, nil, images)
		require.NoError(t, svc.DeleteProduct(context.Background(), 5))
		assert.Equal(t, []string{"5.png"}, images.deleted)
	})

	t.Run("storage failure schedules a retry and still deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repository.NewMockQuerier(ctrl)
		images := newMemStorage()
		images.deleteErr = errors.New("bucket unavailable")

		mockRepo.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(repository.Product{ID: 5}, nil)
		mockRepo.EXPECT().EnqueueJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg repository.EnqueueJobParams) (repository.Job, error) {
				assert.Equal(t, jobs.JobTypeDeleteImage, arg.JobType)
				assert.JSONEq(t, `{"product_id":5,"key":"5.png"}`, string(arg.Payload))
				return repository.Job{ID: 1}, nil
			})
		mockRepo.EXPECT().DeleteCartLinesByProduct(gomock.Any(), int64(5)).Return(nil, nil)
		mockRepo.EXPECT().DeleteProduct(gomock.Any(), int64(5)).Return(int64(1), nil)

		svc := newTestProductService(mockRepo, nil, images)
		require.NoError(t, svc.DeleteProduct(context.Background(), 5))
	})

	t.Run("refreshes totals of carts that held its items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repository.NewMockQuerier(ctrl)

		mockRepo.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(repository.Product{ID: 5}, nil)
		gomock.InOrder(
			mockRepo.EXPECT().DeleteCartLinesByProduct(gomock.Any(), int64(5)).Return([]int64{10, 11}, nil),
			mockRepo.EXPECT().DeleteProduct(gomock.Any(), int64(5)).Return(int64(1), nil),
			mockRepo.EXPECT().RefreshCartTotals(gomock.Any(), []int64{10, 11}).Return(nil),
		)

		svc := newTestProductService(mockRepo, nil, nil)
		require.NoError(t, svc.DeleteProduct(context.Background(), 5))
	})

	t.Run("missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repository.NewMockQuerier(ctrl)
		mockRepo.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(repository.Product{}, pgx.ErrNoRows)

		svc := newTestProductService(mockRepo, nil, nil)
		err := svc.DeleteProduct(context.Background(), 5)

		assert.Equal(t, "Product with id: 5 not found", domain.ErrorMessage(err))
	})
}
