package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/wardrobe/internal/auth"
	"github.com/dukerupert/wardrobe/internal/domain"
)

const validUserBody = `{
	"email": "tom@email.com",
	"password": "1y5E3X8k",
	"matchingPassword": "1y5E3X8k",
	"firstName": "Tom",
	"lastName": "Jones",
	"phoneNumber": "500600700",
	"dob": "1990-02-20",
	"address": {"apartmentNumber": 101, "street": "Pine", "city": "Seattle", "country": "USA"}
}`

func TestUserHandler_Register(t *testing.T) {
	var got domain.RegisterUserParams
	users := &mockUserService{
		registerFunc: func(ctx context.Context, params domain.RegisterUserParams) (*domain.User, error) {
			got = params
			return &domain.User{ID: 5, Email: params.Email}, nil
		},
	}
	h := NewUserHandler(users, &mockTokenIssuer{}, nil)

	rec := httptest.NewRecorder()
	h.Register(rec, newRequest(http.MethodPost, "/api/v1/users", validUserBody, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "CREATED", resp.Status)
	assert.Equal(t, "Registered new user", resp.Message)
	assert.JSONEq(t, "true", string(resp.Data["is_registered"]))

	assert.Equal(t, "tom@email.com", got.Email)
	assert.Equal(t, "1y5E3X8k", got.Password)
	assert.Equal(t, time.Date(1990, 2, 20, 0, 0, 0, 0, time.UTC), got.DOB)
	assert.Equal(t, domain.Address{ApartmentNumber: 101, Street: "Pine", City: "Seattle", Country: "USA"}, got.Address)
}

func TestUserHandler_Register_Validation(t *testing.T) {
	called := false
	users := &mockUserService{
		registerFunc: func(ctx context.Context, params domain.RegisterUserParams) (*domain.User, error) {
			called = true
			return nil, nil
		},
	}
	h := NewUserHandler(users, &mockTokenIssuer{}, nil)

	body := `{
		"email": "tom",
		"password": "1y5E3X8k",
		"matchingPassword": "other-password",
		"firstName": "T",
		"lastName": "Jones",
		"phoneNumber": "500600700",
		"dob": "20-02-1990",
		"address": {"apartmentNumber": -1, "street": "Pine", "city": "", "country": "USA"}
	}`

	rec := httptest.NewRecorder()
	h.Register(rec, newRequest(http.MethodPost, "/api/v1/users", body, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "error occurred", resp.Message)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(resp.Data["errors"], &fields))
	assert.Equal(t, "Invalid email", fields["email"])
	assert.Equal(t, "The password must match", fields["matchingPassword"])
	assert.Equal(t, "Min length is 2", fields["firstName"])
	assert.Equal(t, "Min is 0", fields["address.apartmentNumber"])
	assert.Equal(t, "Cannot be empty", fields["address.city"])
	assert.Contains(t, fields, "dob")
}

func TestUserHandler_Register_EmailTaken(t *testing.T) {
	users := &mockUserService{
		registerFunc: func(ctx context.Context, params domain.RegisterUserParams) (*domain.User, error) {
			return nil, domain.ErrEmailTaken(params.Email)
		},
	}
	h := NewUserHandler(users, &mockTokenIssuer{}, nil)

	rec := httptest.NewRecorder()
	h.Register(rec, newRequest(http.MethodPost, "/api/v1/users", validUserBody, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email tom@email.com is already taken", decodeResponse(t, rec).Message)
}

func TestUserHandler_Get(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "found", wantStatus: http.StatusOK, wantMessage: "Retrieved user by id: 2"},
		{name: "denied", serviceErr: domain.ErrPermissionDenied, wantStatus: http.StatusBadRequest, wantMessage: "Permission denied"},
		{name: "missing", serviceErr: domain.ErrUserNotFound(2), wantStatus: http.StatusNotFound, wantMessage: "User with id: 2 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				getUserFunc: func(ctx context.Context, p domain.Principal, id int64) (*domain.User, error) {
					assert.Equal(t, userPrincipal.Email, p.Email)
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &domain.User{
						ID:      id,
						Email:   "bob@example.com",
						Enabled: true,
						DOB:     time.Date(1991, 5, 1, 0, 0, 0, 0, time.UTC),
						Roles:   []domain.Role{{ID: 1, Name: domain.RoleUser}},
					}, nil
				},
			}
			h := NewUserHandler(users, &mockTokenIssuer{}, nil)

			rec := httptest.NewRecorder()
			h.Get(rec, newRequest(http.MethodGet, "/api/v1/users/2", "", userPrincipal, "id", "2"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, tt.wantMessage, resp.Message)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{
					"id": 2, "email": "bob@example.com", "enabled": true,
					"roles": [{"id": 1, "name": "USER"}],
					"firstName": "", "lastName": "", "phoneNumber": "", "dob": "1991-05-01"
				}`, string(resp.Data["user"]))
			}
		})
	}
}

func TestUserHandler_Update_RequiresID(t *testing.T) {
	h := NewUserHandler(&mockUserService{}, &mockTokenIssuer{}, nil)

	rec := httptest.NewRecorder()
	h.Update(rec, newRequest(http.MethodPut, "/api/v1/users", validUserBody, userPrincipal))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec).Data["errors"], &fields))
	assert.Equal(t, map[string]string{"id": "Cannot be empty"}, fields)
}

func TestUserHandler_Delete(t *testing.T) {
	var deleted int64
	users := &mockUserService{
		deleteUserFunc: func(ctx context.Context, p domain.Principal, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(users, &mockTokenIssuer{}, nil)

	rec := httptest.NewRecorder()
	h.Delete(rec, newRequest(http.MethodDelete, "/api/v1/users/9", "", adminPrincipal, "id", "9"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), deleted)
	assert.Equal(t, "Deleted user with id: 9", decodeResponse(t, rec).Message)
}

func TestUserHandler_Login(t *testing.T) {
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		authErr    error
		wantStatus int
	}{
		{name: "valid credentials", wantStatus: http.StatusOK},
		{name: "bad credentials", authErr: domain.ErrBadCredentials, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				authenticateFunc: func(ctx context.Context, email, password string) (*domain.User, error) {
					if tt.authErr != nil {
						return nil, tt.authErr
					}
					return &domain.User{
						Email: email,
						Roles: []domain.Role{{ID: 2, Name: domain.RoleAdmin}, {ID: 1, Name: domain.RoleUser}},
					}, nil
				},
			}
			tokens := &mockTokenIssuer{
				issueFunc: func(email string, roles []string) (auth.Token, error) {
					assert.Equal(t, []string{"ADMIN", "USER"}, roles)
					return auth.Token{AccessToken: "signed." + email, ExpiresAt: expires}, nil
				},
			}
			h := NewUserHandler(users, tokens, nil)

			rec := httptest.NewRecorder()
			h.Login(rec, newRequest(http.MethodPost, "/api/v1/login",
				`{"email":"admin@example.com","password":"secret-password"}`, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "Bad credentials", resp.Message)
				return
			}
			assert.JSONEq(t, `"signed.admin@example.com"`, string(resp.Data["access_token"]))
			assert.JSONEq(t, `"Bearer"`, string(resp.Data["token_type"]))
			assert.JSONEq(t, `"2030-01-02T03:04:05Z"`, string(resp.Data["expires_at"]))
		})
	}
}
