package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions_ListProducts(t *testing.T) {
	t.Parallel()

	minPrice, maxPrice := int64(1000), int64(50000)
	o, err := ApplyOptions[ListProductsOptions](
		WithCategory(" Vegetables "),
		WithSearch("kale"),
		WithTags("Organic", "organic"),
		WithPriceRange(&minPrice, &maxPrice),
		WithInStock(),
		WithSort("PRICE_ASC"),
		WithLimit(50),
		WithOffset(100),
	)
	require.NoError(t, err)

	assert.Equal(t, "Vegetables", o.Category)
	assert.Equal(t, "kale", o.Search)
	assert.Equal(t, []string{"organic"}, o.Tags)
	assert.Equal(t, &minPrice, o.MinPriceCents)
	assert.True(t, o.InStock)
	assert.Equal(t, SortPriceAsc, o.Sort)
	assert.Equal(t, 50, o.Limit)
	assert.Equal(t, 100, o.Offset)
}

func TestApplyOptions_Defaults(t *testing.T) {
	t.Parallel()

	p, err := ApplyOptions[ListProductsOptions]()
	require.NoError(t, err)
	assert.Equal(t, SortNewest, p.Sort)
	assert.Equal(t, DefaultPageSize, p.Limit)

	tx, err := ApplyOptions[ListTransactionsOptions]()
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, tx.Limit)
	assert.Nil(t, tx.Status)
}

func TestApplyOptions_Errors(t *testing.T) {
	t.Parallel()

	minPrice, maxPrice := int64(500), int64(100)

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "limit too large", run: func() error { _, err := ApplyOptions[ListProductsOptions](WithLimit(MaxPageSize + 1)); return err }},
		{name: "limit zero", run: func() error { _, err := ApplyOptions[ListUsersOptions](WithLimit(0)); return err }},
		{name: "negative offset", run: func() error { _, err := ApplyOptions[ListProductsOptions](WithOffset(-1)); return err }},
		{name: "bad sort", run: func() error { _, err := ApplyOptions[ListProductsOptions](WithSort("random")); return err }},
		{name: "inverted price range", run: func() error {
			_, err := ApplyOptions[ListProductsOptions](WithPriceRange(&minPrice, &maxPrice))
			return err
		}},
		{name: "offset on cursor list", run: func() error { _, err := ApplyOptions[ListTransactionsOptions](WithOffset(10)); return err }},
		{name: "cursor on product list", run: func() error { _, err := ApplyOptions[ListProductsOptions](WithCursor("abc")); return err }},
		{name: "unknown order status", run: func() error {
			_, err := ApplyOptions[ListTransactionsOptions](WithOrderStatus("lost"))
			return err
		}},
		{name: "unknown payment method", run: func() error {
			_, err := ApplyOptions[ListTransactionsOptions](WithPaymentMethod("card"))
			return err
		}},
		{name: "bad role", run: func() error { _, err := ApplyOptions[ListUsersOptions](WithRole("root")); return err }},
		{name: "bad contact status", run: func() error {
			_, err := ApplyOptions[ListContactMessagesOptions](WithContactStatus("spam"))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Error(t, tt.run())
		})
	}
}

func TestApplyOptions_Transactions(t *testing.T) {
	t.Parallel()

	o, err := ApplyOptions[ListTransactionsOptions](
		WithOrderStatus("Shipped"),
		WithPaymentMethod("MAYA"),
		WithSearch("HL-2026"),
		WithCursor("abc"),
	)
	require.NoError(t, err)
	require.NotNil(t, o.Status)
	assert.Equal(t, OrderStatusShipped, *o.Status)
	assert.Equal(t, PaymentMethodMaya, *o.PaymentMethod)
	assert.Equal(t, "HL-2026", o.Search)
	assert.Equal(t, "abc", o.Cursor)
}
