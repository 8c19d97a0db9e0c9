package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
)

func TestCategoryService_DeleteCategory(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *repository.MockQuerier)
		wantCode string
		wantMsg  string
	}{
		{
			name: "category with products is kept",
			setup: func(m *repository.MockQuerier) {
				m.EXPECT().GetCategoryByID(gomock.Any(), int64(3)).Return(repository.Category{ID: 3, Name: "coats"}, nil)
				m.EXPECT().CountCategoryProducts(gomock.Any(), int64(3)).Return(int64(2), nil)
			},
			wantCode: domain.ECONFLICT,
			wantMsg:  "Cannot delete category with assigned products",
		},
		{
			name: "missing category",
			setup: func(m *repository.MockQuerier) {
				m.EXPECT().GetCategoryByID(gomock.Any(), int64(3)).Return(repository.Category{}, pgx.ErrNoRows)
			},
			wantCode: domain.ENOTFOUND,
			wantMsg:  "Category with id: 3 not found",
		},
		{
			name: "empty category is deleted",
			setup: func(m *repository.MockQuerier) {
				m.EXPECT().GetCategoryByID(gomock.Any(), int64(3)).Return(repository.Category{ID: 3}, nil)
				m.EXPECT().CountCategoryProducts(gomock.Any(), int64(3)).Return(int64(0), nil)
				m.EXPECT().DeleteCategory(gomock.Any(), int64(3)).Return(int64(1), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)
			tt.setup(mockRepo)

			svc := NewCategoryService(mockRepo, &passThroughScope{})
			err := svc.DeleteCategory(context.Background(), 3)

			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
			assert.Equal(t, tt.wantMsg, domain.ErrorMessage(err))
		})
	}
}

func TestCategoryService_CreateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	mockRepo.EXPECT().GetCategoryByName(gomock.Any(), "hoodies").Return(repository.Category{}, pgx.ErrNoRows)
	mockRepo.EXPECT().CreateCategory(gomock.Any(), repository.CreateCategoryParams{
		Name:          "hoodies",
		WeatherSeason: "NONE",
	}).Return(repository.Category{ID: 4, Name: "hoodies", WeatherSeason: "NONE"}, nil)

	svc := NewCategoryService(mockRepo, &passThroughScope{})
	c, err := svc.CreateCategory(context.Background(), domain.CategoryParams{Name: "hoodies"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), c.ID)
	assert.Equal(t, domain.SeasonNone, c.WeatherSeason)
}

func TestCategoryService_CreateCategory_NameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	mockRepo.EXPECT().GetCategoryByName(gomock.Any(), "coats").Return(repository.Category{ID: 1, Name: "coats"}, nil)

	svc := NewCategoryService(mockRepo, &passThroughScope{})
	_, err := svc.CreateCategory(context.Background(), domain.CategoryParams{Name: "coats", WeatherSeason: domain.SeasonWinter})

	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	assert.Equal(t, "Category with name: coats already exists", domain.ErrorMessage(err))
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	tests := []struct {
		name     string
		byName   repository.Category
		nameErr  error
		wantCode string
	}{
		{name: "name used by another category", byName: repository.Category{ID: 7, Name: "coats"}, wantCode: domain.ECONFLICT},
		{name: "keeping its own name", byName: repository.Category{ID: 1, Name: "coats"}},
		{name: "fresh name", nameErr: pgx.ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)

			mockRepo.EXPECT().GetCategoryByID(gomock.Any(), int64(1)).Return(repository.Category{ID: 1, Name: "jackets"}, nil)
			mockRepo.EXPECT().GetCategoryByName(gomock.Any(), "coats").Return(tt.byName, tt.nameErr)
			if tt.wantCode == "" {
				mockRepo.EXPECT().UpdateCategory(gomock.Any(), repository.UpdateCategoryParams{
					ID: 1, Name: "coats", WeatherSeason: "WINTER",
				}).Return(repository.Category{ID: 1, Name: "coats", WeatherSeason: "WINTER"}, nil)
				mockRepo.EXPECT().ListProductsByCategory(gomock.Any(), int64(1)).Return([]repository.Product{{ID: 11, Name: "parka"}}, nil)
			}

			svc := NewCategoryService(mockRepo, &passThroughScope{})
			c, err := svc.UpdateCategory(context.Background(), domain.CategoryParams{
				ID: 1, Name: "coats", WeatherSeason: domain.SeasonWinter,
			})

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "coats", c.Name)
			require.Len(t, c.Products, 1)
			assert.Equal(t, int64(11), c.Products[0].ID)
		})
	}
}

func TestCategoryService_UpdateCategory_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	mockRepo.EXPECT().GetCategoryByID(gomock.Any(), int64(5)).Return(repository.Category{}, pgx.ErrNoRows)

	svc := NewCategoryService(mockRepo, &passThroughScope{})
	_, err := svc.UpdateCategory(context.Background(), domain.CategoryParams{ID: 5, Name: "coats"})

	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestCategoryService_ListCategoryProducts_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	mockRepo.EXPECT().GetCategoryByName(gomock.Any(), "capes").Return(repository.Category{}, pgx.ErrNoRows)

	svc := NewCategoryService(mockRepo, &passThroughScope{})
	_, err := svc.ListCategoryProducts(context.Background(), "capes")

	assert.Equal(t, "Category with name: capes not found", domain.ErrorMessage(err))
}
