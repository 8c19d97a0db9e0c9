package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/wardrobe/internal/auth"
	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/repository"
)

type directScope struct{}

func (directScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAdminConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AdminConfig
		wantErr bool
	}{
		{name: "valid", cfg: AdminConfig{Email: "admin@example.com", Password: "a-long-password"}},
		{name: "missing email", cfg: AdminConfig{Password: "a-long-password"}, wantErr: true},
		{name: "missing password", cfg: AdminConfig{Email: "admin@example.com"}, wantErr: true},
		{name: "short password", cfg: AdminConfig{Email: "admin@example.com", Password: "short"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnsureMasterAdmin_SkipsWithoutConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)

	require.NoError(t, EnsureMasterAdmin(context.Background(), mockRepo, directScope{}, nil, testLogger()))
	require.NoError(t, EnsureMasterAdmin(context.Background(), mockRepo, directScope{}, &AdminConfig{}, testLogger()))
}

func TestEnsureMasterAdmin_Creates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	cfg := &AdminConfig{Email: "admin@example.com", Password: "a-long-password"}

	mockRepo.EXPECT().UpsertRole(gomock.Any(), domain.RoleAdmin).Return(repository.Role{ID: 1, Name: domain.RoleAdmin}, nil)
	mockRepo.EXPECT().UpsertRole(gomock.Any(), domain.RoleUser).Return(repository.Role{ID: 2, Name: domain.RoleUser}, nil)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), cfg.Email).Return(repository.AppUser{}, pgx.ErrNoRows)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg repository.CreateUserParams) (repository.AppUser, error) {
			assert.True(t, arg.Enabled)
			assert.Equal(t, "Admin", arg.FirstName)
			assert.NoError(t, auth.VerifyPassword(cfg.Password, arg.PasswordHash))
			return repository.AppUser{ID: 1, Email: arg.Email}, nil
		})
	gomock.InOrder(
		mockRepo.EXPECT().AddUserRole(gomock.Any(), repository.AddUserRoleParams{UserID: 1, RoleID: 1, Position: 0}).Return(nil),
		mockRepo.EXPECT().AddUserRole(gomock.Any(), repository.AddUserRoleParams{UserID: 1, RoleID: 2, Position: 1}).Return(nil),
	)
	mockRepo.EXPECT().CreateCart(gomock.Any(), int64(1)).Return(repository.Cart{ID: 1, UserID: 1}, nil)

	require.NoError(t, EnsureMasterAdmin(context.Background(), mockRepo, directScope{}, cfg, testLogger()))
}

func TestEnsureMasterAdmin_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	cfg := &AdminConfig{Email: "admin@example.com", Password: "a-long-password"}

	mockRepo.EXPECT().UpsertRole(gomock.Any(), gomock.Any()).Return(repository.Role{}, nil).Times(2)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), cfg.Email).Return(repository.AppUser{ID: 4}, nil)

	require.NoError(t, EnsureMasterAdmin(context.Background(), mockRepo, directScope{}, cfg, testLogger()))
}

func TestEnsureMasterAdmin_RoleFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	cfg := &AdminConfig{Email: "admin@example.com", Password: "a-long-password"}

	mockRepo.EXPECT().UpsertRole(gomock.Any(), domain.RoleAdmin).Return(repository.Role{}, errors.New("db down"))

	err := EnsureMasterAdmin(context.Background(), mockRepo, directScope{}, cfg, testLogger())
	assert.ErrorContains(t, err, "db down")
}
