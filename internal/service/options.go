package service

import (
	"fmt"
	"strings"
)

// Page sizes for list operations
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ProductSort is the ordering of a product listing
type ProductSort string

// Product orderings
const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortName      ProductSort = "name"
)

// Option is a function that sets an option for a list operation
type Option func(o any) error

type cursorOption interface {
	setCursor(cursor string) error
}

type limitOption interface {
	setLimit(limit int) error
}

type offsetOption interface {
	setOffset(offset int) error
}

type searchOption interface {
	setSearch(search string) error
}

type categoryOption interface {
	setCategory(category string) error
}

type tagsOption interface {
	setTags(tags []string) error
}

type priceRangeOption interface {
	setPriceRange(minCents, maxCents *int64) error
}

type inStockOption interface {
	setInStock(inStock bool) error
}

type sortOption interface {
	setSort(sort ProductSort) error
}

type productStatusOption interface {
	setProductStatus(status ProductStatus) error
}

type orderStatusOption interface {
	setOrderStatus(status OrderStatus) error
}

type paymentMethodOption interface {
	setPaymentMethod(method PaymentMethod) error
}

type roleOption interface {
	setRole(role Role) error
}

type userStatusOption interface {
	setUserStatus(status UserStatus) error
}

type contactStatusOption interface {
	setContactStatus(status ContactStatus) error
}

// WithCursor sets the keyset cursor of a cursor-paged list
func WithCursor(cursor string) Option {
	return func(o any) error {
		if cursor == "" {
			return fmt.Errorf("invalid cursor: %s", cursor)
		}

		switch o := o.(type) {
		case cursorOption:
			return o.setCursor(cursor)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithLimit sets the page size, between 1 and MaxPageSize
func WithLimit(limit int) Option {
	return func(o any) error {
		if limit < 1 || limit > MaxPageSize {
			return NewValidationError("limit", "must be between 1 and %d", MaxPageSize)
		}

		switch o := o.(type) {
		case limitOption:
			return o.setLimit(limit)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithOffset sets the number of rows skipped by an offset-paged list
func WithOffset(offset int) Option {
	return func(o any) error {
		if offset < 0 {
			return NewValidationError("offset", "must not be negative")
		}

		switch o := o.(type) {
		case offsetOption:
			return o.setOffset(offset)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithSearch sets a case-insensitive substring search
func WithSearch(search string) Option {
	return func(o any) error {
		search = strings.TrimSpace(search)
		if search == "" {
			return fmt.Errorf("invalid search: %s", search)
		}

		switch o := o.(type) {
		case searchOption:
			return o.setSearch(search)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithCategory restricts a product listing to one category
func WithCategory(category string) Option {
	return func(o any) error {
		category = strings.TrimSpace(category)
		if category == "" {
			return fmt.Errorf("invalid category: %s", category)
		}

		switch o := o.(type) {
		case categoryOption:
			return o.setCategory(category)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithTags restricts a product listing to products carrying any of the tags
func WithTags(tags ...string) Option {
	return func(o any) error {
		tags = NormalizeTags(tags)
		if len(tags) == 0 {
			return fmt.Errorf("invalid tags: at least one tag is required")
		}

		switch o := o.(type) {
		case tagsOption:
			return o.setTags(tags)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithPriceRange restricts a product listing to a price range in centavos. Nil bounds are open.
func WithPriceRange(minCents, maxCents *int64) Option {
	return func(o any) error {
		if minCents != nil && *minCents < 0 {
			return NewValidationError("min_price", "must not be negative")
		}
		if maxCents != nil && *maxCents < 0 {
			return NewValidationError("max_price", "must not be negative")
		}
		if minCents != nil && maxCents != nil && *minCents > *maxCents {
			return NewValidationError("min_price", "must not exceed max_price")
		}

		switch o := o.(type) {
		case priceRangeOption:
			return o.setPriceRange(minCents, maxCents)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithInStock restricts a product listing to products with stock
func WithInStock() Option {
	return func(o any) error {
		switch o := o.(type) {
		case inStockOption:
			return o.setInStock(true)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithSort sets the ordering of a product listing
func WithSort(sort string) Option {
	return func(o any) error {
		s := ProductSort(strings.ToLower(strings.TrimSpace(sort)))
		switch s {
		case SortNewest, SortPriceAsc, SortPriceDesc, SortName:
		default:
			return NewValidationError("sort", "must be newest, price_asc, price_desc or name")
		}

		switch o := o.(type) {
		case sortOption:
			return o.setSort(s)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithProductStatus restricts an administrator's product listing to one status
func WithProductStatus(status ProductStatus) Option {
	return func(o any) error {
		if status != ProductStatusActive && status != ProductStatusArchived {
			return NewValidationError("status", "must be active or archived")
		}

		switch o := o.(type) {
		case productStatusOption:
			return o.setProductStatus(status)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithOrderStatus restricts a transaction listing to one status
func WithOrderStatus(status string) Option {
	return func(o any) error {
		s, err := ParseOrderStatus(status)
		if err != nil {
			return err
		}

		switch o := o.(type) {
		case orderStatusOption:
			return o.setOrderStatus(s)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithPaymentMethod restricts a transaction listing to one payment method
func WithPaymentMethod(method string) Option {
	return func(o any) error {
		m, err := ParsePaymentMethod(method)
		if err != nil {
			return err
		}

		switch o := o.(type) {
		case paymentMethodOption:
			return o.setPaymentMethod(m)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithRole restricts a user listing to one role
func WithRole(role Role) Option {
	return func(o any) error {
		if role != RoleCustomer && role != RoleAdmin {
			return NewValidationError("role", "must be customer or admin")
		}

		switch o := o.(type) {
		case roleOption:
			return o.setRole(role)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithUserStatus restricts a user listing to one account status
func WithUserStatus(status UserStatus) Option {
	return func(o any) error {
		if status != UserStatusActive && status != UserStatusSuspended {
			return NewValidationError("status", "must be active or suspended")
		}

		switch o := o.(type) {
		case userStatusOption:
			return o.setUserStatus(status)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithContactStatus restricts a contact message listing to one status
func WithContactStatus(status ContactStatus) Option {
	return func(o any) error {
		if err := ValidateContactStatus(status); err != nil {
			return err
		}

		switch o := o.(type) {
		case contactStatusOption:
			return o.setContactStatus(status)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// ApplyOptions builds an options struct of type T from opts
func ApplyOptions[T any](opts ...Option) (*T, error) {
	o := new(T)
	if d, ok := any(o).(interface{ setDefaults() }); ok {
		d.setDefaults()
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
