package handler

import (
	"net/http"
	"strconv"

	"github.com/dukerupert/wardrobe/internal/domain"
)

// PathID parses the named path wildcard as a positive id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidParam(name, raw)
	}
	return id, nil
}

// QueryPage reads the page and size query parameters, defaulting to the
// first page of ten. Pages ending beyond the int32 range are rejected.
func QueryPage(r *http.Request) (domain.Page, error) {
	page := domain.Page{Number: domain.DefaultPageNumber, Size: domain.DefaultPageSize}

	q := r.URL.Query()
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, domain.ErrInvalidParam("page", raw)
		}
		page.Number = n
	}
	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return page, domain.ErrInvalidParam("size", raw)
		}
		page.Size = n
	}
	if !page.Valid() {
		return page, domain.ErrInvalidParam("page", page.Number)
	}
	return page, nil
}

// QueryAmount reads the required amount query parameter. Range checks are
// left to the cart so its canonical messages apply.
func QueryAmount(r *http.Request) (int32, error) {
	raw := r.URL.Query().Get("amount")
	if raw == "" {
		return 0, domain.Invalid("request.param", "Required parameter amount is missing")
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidParam("amount", raw)
	}
	return int32(n), nil
}

// QueryRequired returns the named query parameter or an error when it is empty.
func QueryRequired(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", domain.Invalid("request.param", "Required parameter %s is missing", name)
	}
	return v, nil
}
