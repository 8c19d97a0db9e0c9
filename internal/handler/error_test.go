package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/envelope"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope.Envelope {
	t.Helper()
	var env envelope.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestRespond_Envelope(t *testing.T) {
	envelope.Now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 123000000, time.UTC) }
	t.Cleanup(func() { envelope.Now = time.Now })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()

	Created(rec, req, "Created new category", map[string]any{"category": map[string]any{"id": 1}})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "2024-03-09T14:05:07.123", env.Timestamp)
	assert.Equal(t, "CREATED", env.Status)
	assert.Equal(t, 201, env.StatusCode)
	assert.Equal(t, "Created new category", env.Message)
	assert.Contains(t, env.Data, "category")
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedName   string
		expectedMsg    string
	}{
		{
			name:           "not found",
			err:            domain.ErrProductNotFound(12),
			expectedStatus: http.StatusNotFound,
			expectedName:   "NOT_FOUND",
			expectedMsg:    "Product with id: 12 not found",
		},
		{
			name:           "bad state",
			err:            domain.Invalid("cart.add", domain.MsgOrderedAmountExceeds),
			expectedStatus: http.StatusBadRequest,
			expectedName:   "BAD_REQUEST",
			expectedMsg:    "Ordered amount must not exceed quantity of item",
		},
		{
			name:           "conflict reported as bad request",
			err:            domain.ErrCategoryHasProducts,
			expectedStatus: http.StatusBadRequest,
			expectedName:   "BAD_REQUEST",
			expectedMsg:    "Cannot delete category with assigned products",
		},
		{
			name:           "permission denied",
			err:            domain.ErrPermissionDenied,
			expectedStatus: http.StatusBadRequest,
			expectedName:   "BAD_REQUEST",
			expectedMsg:    "Permission denied",
		},
		{
			name:           "bad credentials",
			err:            domain.ErrBadCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedName:   "UNAUTHORIZED",
			expectedMsg:    "Bad credentials",
		},
		{
			name:           "plain error hides details",
			err:            errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedName:   "INTERNAL_SERVER_ERROR",
			expectedMsg:    "An internal error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/12", nil)
			rec := httptest.NewRecorder()

			ErrorResponse(rec, req, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.expectedName, env.Status)
			assert.Equal(t, tt.expectedStatus, env.StatusCode)
			assert.Equal(t, tt.expectedMsg, env.Message)
			assert.Nil(t, env.Data)
		})
	}
}

func TestErrorResponse_InternalHidesDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	err := domain.Internal(nil, "db.query", "failed to connect to database at 192.168.1.100:5432")
	ErrorResponse(rec, req, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "192.168.1.100")
}

func TestValidationErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	err := domain.NewValidationError("user.register", "email", "Invalid email")
	err = domain.AddFieldError(err, "address.city", "Cannot be empty")

	ErrorResponse(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Errors map[string]string `json:"errors"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "BAD_REQUEST", body.Status)
	assert.Equal(t, "error occurred", body.Message)
	assert.Equal(t, map[string]string{
		"email":        "Invalid email",
		"address.city": "Cannot be empty",
	}, body.Data.Errors)
}

func TestValidationErrorResponse_NonValidationError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rec := httptest.NewRecorder()

	ValidationErrorResponse(rec, req, domain.ErrUserNotFound(3))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User with id: 3 not found", decodeEnvelope(t, rec).Message)
}

func TestConvenienceResponses(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter, r *http.Request)
		status int
		msg    string
	}{
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized, domain.MsgAuthenticationRequired},
		{"forbidden", ForbiddenResponse, http.StatusBadRequest, "Permission denied"},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			NotFoundResponse(w, r, "Image for product with id: 4 not found")
		}, http.StatusNotFound, "Image for product with id: 4 not found"},
		{"bad request", func(w http.ResponseWriter, r *http.Request) {
			BadRequestResponse(w, r, "Required parameter city is missing")
		}, http.StatusBadRequest, "Required parameter city is missing"},
		{"internal", func(w http.ResponseWriter, r *http.Request) {
			InternalErrorResponse(w, r, errors.New("boom"))
		}, http.StatusInternalServerError, "An internal error occurred. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.msg, decodeEnvelope(t, rec).Message)
		})
	}
}
