package service

// ListProductsOptions is the options for the product listing operations
type ListProductsOptions struct {
	Category      string
	Search        string
	Tags          []string
	MinPriceCents *int64
	MaxPriceCents *int64
	InStock       bool
	Sort          ProductSort
	Status        *ProductStatus
	Limit         int
	Offset        int
}

func (o *ListProductsOptions) setDefaults() {
	o.Sort = SortNewest
	o.Limit = DefaultPageSize
}

func (o *ListProductsOptions) setCategory(category string) error {
	o.Category = category
	return nil
}

func (o *ListProductsOptions) setSearch(search string) error {
	o.Search = search
	return nil
}

func (o *ListProductsOptions) setTags(tags []string) error {
	o.Tags = tags
	return nil
}

func (o *ListProductsOptions) setPriceRange(minCents, maxCents *int64) error {
	o.MinPriceCents = minCents
	o.MaxPriceCents = maxCents
	return nil
}

func (o *ListProductsOptions) setInStock(inStock bool) error {
	o.InStock = inStock
	return nil
}

func (o *ListProductsOptions) setSort(sort ProductSort) error {
	o.Sort = sort
	return nil
}

func (o *ListProductsOptions) setProductStatus(status ProductStatus) error {
	o.Status = &status
	return nil
}

func (o *ListProductsOptions) setLimit(limit int) error {
	o.Limit = limit
	return nil
}

func (o *ListProductsOptions) setOffset(offset int) error {
	o.Offset = offset
	return nil
}

// ListTransactionsOptions is the options for the order listing operations
type ListTransactionsOptions struct {
	Status        *OrderStatus
	PaymentMethod *PaymentMethod
	Search        string
	Cursor        string
	Limit         int
}

func (o *ListTransactionsOptions) setDefaults() {
	o.Limit = DefaultPageSize
}

func (o *ListTransactionsOptions) setOrderStatus(status OrderStatus) error {
	o.Status = &status
	return nil
}

func (o *ListTransactionsOptions) setPaymentMethod(method PaymentMethod) error {
	o.PaymentMethod = &method
	return nil
}

func (o *ListTransactionsOptions) setSearch(search string) error {
	o.Search = search
	return nil
}

func (o *ListTransactionsOptions) setCursor(cursor string) error {
	o.Cursor = cursor
	return nil
}

func (o *ListTransactionsOptions) setLimit(limit int) error {
	o.Limit = limit
	return nil
}

// ListUsersOptions is the options for the ListUsers operation
type ListUsersOptions struct {
	Search string
	Role   *Role
	Status *UserStatus
	Cursor string
	Limit  int
}

func (o *ListUsersOptions) setDefaults() {
	o.Limit = DefaultPageSize
}

func (o *ListUsersOptions) setSearch(search string) error {
	o.Search = search
	return nil
}

func (o *ListUsersOptions) setRole(role Role) error {
	o.Role = &role
	return nil
}

func (o *ListUsersOptions) setUserStatus(status UserStatus) error {
	o.Status = &status
	return nil
}

func (o *ListUsersOptions) setCursor(cursor string) error {
	o.Cursor = cursor
	return nil
}

func (o *ListUsersOptions) setLimit(limit int) error {
	o.Limit = limit
	return nil
}

// ListContactMessagesOptions is the options for the ListContactMessages operation
type ListContactMessagesOptions struct {
	Status *ContactStatus
	Cursor string
	Limit  int
}

func (o *ListContactMessagesOptions) setDefaults() {
	o.Limit = DefaultPageSize
}

func (o *ListContactMessagesOptions) setContactStatus(status ContactStatus) error {
	o.Status = &status
	return nil
}

func (o *ListContactMessagesOptions) setCursor(cursor string) error {
	o.Cursor = cursor
	return nil
}

func (o *ListContactMessagesOptions) setLimit(limit int) error {
	o.Limit = limit
	return nil
}
