package domain

import "fmt"

// Messages returned to clients. They are part of the public API.
const (
	MsgPermissionDenied       = "Permission denied"
	MsgBadCredentials         = "Bad credentials"
	MsgAuthenticationRequired = "Full authentication is required to access this resource"

	MsgOrderedAmountMin       = "Ordered amount must be minimum 1"
	MsgOrderedAmountExceeds   = "Ordered amount must not exceed quantity of item"
	MsgOrderedStockExceeds    = "Ordered amount must not exceed stock quantity of item"
	MsgAmountToDeleteMin      = "Amount to delete must be minimum 1"
	MsgAmountToDeleteExceeds  = "Amount to delete is higher than actual ordered amount in cart"
	MsgCategoryHasProducts    = "Cannot delete category with assigned products"
	MsgNoTemperatureAvailable = "No temperature information is available for inserted location"
)

var (
	// ErrPermissionDenied is returned by the authorization gate.
	ErrPermissionDenied = &Error{Code: EFORBIDDEN, Message: MsgPermissionDenied}

	// ErrBadCredentials is returned when login fails for any reason.
	ErrBadCredentials = &Error{Code: EUNAUTHORIZED, Message: MsgBadCredentials}

	// ErrAuthenticationRequired is returned when a protected route has no principal.
	ErrAuthenticationRequired = &Error{Code: EUNAUTHORIZED, Message: MsgAuthenticationRequired}

	// ErrCategoryHasProducts guards category deletion.
	ErrCategoryHasProducts = &Error{Code: ECONFLICT, Message: MsgCategoryHasProducts}

	// ErrNoTemperature is returned when the weather upstream has no reading.
	ErrNoTemperature = &Error{Code: EINVALID, Message: MsgNoTemperatureAvailable}
)

func ErrUserNotFound(id int64) error {
	return NotFound("user.get", "User with id: %d not found", id)
}

func ErrUserEmailNotFound(email string) error {
	return NotFound("user.resolve", "User with email %s not found", email)
}

func ErrEmailTaken(email string) error {
	return Conflict("user.register", "Email %s is already taken", email)
}

func ErrCategoryNotFound(id int64) error {
	return NotFound("category.get", "Category with id: %d not found", id)
}

func ErrCategoryNameNotFound(name string) error {
	return NotFound("category.get", "Category with name: %s not found", name)
}

func ErrCategoryExists(name string) error {
	return Conflict("category.save", "Category with name: %s already exists", name)
}

func ErrProductNotFound(id int64) error {
	return NotFound("product.get", "Product with id: %d not found", id)
}

func ErrItemNotFound(id int64) error {
	return NotFound("item.get", "Item with id: %d not found", id)
}

func ErrItemNotInCart(id int64) error {
	return NotFound("cart.remove", "Item with id: %d not found in cart", id)
}

func ErrItemSizeExists(size string) error {
	return Conflict("item.save", "Item with size: %s already exists", size)
}

func ErrAlreadyAssigned(productID, categoryID int64) error {
	return Conflict("product.assign",
		"Product with id: %d is already assigned to category with id: %d", productID, categoryID)
}

func ErrNotAssigned(productID, categoryID int64) error {
	return Conflict("product.unassign",
		"Product with id: %d is not assigned to category with id: %d", productID, categoryID)
}

func ErrImageNotFound(productID int64) error {
	return NotFound("image.read", "Image for product with id: %d not found", productID)
}

func ErrLocationNotFound(city, country string) error {
	return Invalid("weather.geocode", "Localization for city: %s in country: %s not found", city, country)
}

// ErrInvalidParam reports a malformed path or query parameter.
func ErrInvalidParam(name string, value any) error {
	return Invalid("request.param", "Invalid value for parameter %s: %s", name, fmt.Sprint(value))
}
