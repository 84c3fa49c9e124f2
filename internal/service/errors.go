package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the root of every not-found error
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound is returned when a user does not exist
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	// ErrProductNotFound is returned when a product does not exist or is not visible
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	// ErrAddressNotFound is returned when an address does not exist for the user
	ErrAddressNotFound = fmt.Errorf("address %w", ErrNotFound)
	// ErrTransactionNotFound is returned when an order does not exist for the caller
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	// ErrInvoiceNotFound is returned when an order has no invoice
	ErrInvoiceNotFound = fmt.Errorf("invoice %w", ErrNotFound)
	// ErrContactMessageNotFound is returned when a contact message does not exist
	ErrContactMessageNotFound = fmt.Errorf("contact message %w", ErrNotFound)
	// ErrCartItemNotFound is returned when the product is not in the cart
	ErrCartItemNotFound = fmt.Errorf("cart item %w", ErrNotFound)

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email is already registered")
	// ErrSlugTaken is returned when a product slug already exists
	ErrSlugTaken = errors.New("product slug is already in use")
	// ErrInvalidCredentials is returned for any failed login or password check
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountSuspended is returned when a suspended user tries to log in
	ErrAccountSuspended = errors.New("account is suspended")
	// ErrSamePassword is returned when the new password equals the current one
	ErrSamePassword = errors.New("new password must differ from the current password")

	// ErrInvalidPaymentMethod is returned for an unknown payment method
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrInvalidPaymentReference is returned when a GCash or Maya reference is not 12 digits
	ErrInvalidPaymentReference = errors.New("payment reference must be a 12-digit number")

	// ErrCartEmpty is returned when checking out an empty cart
	ErrCartEmpty = errors.New("cart is empty")
	// ErrInsufficientStock is returned when the requested quantity exceeds stock
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrProductUnavailable is returned when the product is archived
	ErrProductUnavailable = errors.New("product is unavailable")
	// ErrAddressRequired is returned when checking out without any address
	ErrAddressRequired = errors.New("a shipping address is required")
	// ErrAddressLimit is returned when a user already has the maximum number of addresses
	ErrAddressLimit = fmt.Errorf("a user may have at most %d addresses", MaxAddressesPerUser)
	// ErrLastPrimaryAddress is returned when unsetting primary on the only address
	ErrLastPrimaryAddress = errors.New("the only address must remain primary")

	// ErrInvalidStatusTransition is returned for a move the order state machine forbids
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	// ErrOrderNotCancellable is returned when a customer cancels a non-pending order
	ErrOrderNotCancellable = errors.New("only pending orders can be cancelled")

	// ErrSelfModification is returned when an admin demotes, suspends or deletes themselves
	ErrSelfModification = errors.New("administrators cannot demote, suspend or delete themselves")
	// ErrUserHasTransactions is returned when deleting a user with orders
	ErrUserHasTransactions = errors.New("user has transactions; suspend the account instead")

	// ErrInvalidCursor is returned when a pagination cursor cannot be decoded
	ErrInvalidCursor = errors.New("invalid cursor")
)

// ValidationError reports a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
