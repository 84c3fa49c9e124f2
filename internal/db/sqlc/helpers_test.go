package sqlc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, queries *Queries, email string) User {
	t.Helper()

	user, err := queries.CreateUser(context.Background(), CreateUserParams{
		FirstName:    "Juan",
		LastName:     "Dela Cruz",
		Email:        email,
		Phone:        "09171234567",
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhashnot",
		Role:         "customer",
	})
	require.NoError(t, err)
	return user
}

func createTestProduct(t *testing.T, queries *Queries, slug string, priceCents int64, stock int32) Product {
	t.Helper()

	product, err := queries.CreateProduct(context.Background(), CreateProductParams{
		Name:       slug,
		Slug:       slug,
		Category:   "Vegetables",
		Tags:       []string{"organic"},
		PriceCents: priceCents,
		Unit:       "kg",
		Stock:      stock,
		FarmName:   "Benguet Highland Farm",
		Status:     "active",
	})
	require.NoError(t, err)
	return product
}

func createTestTransaction(t *testing.T, queries *Queries, userID uuid.UUID, status string, items ...Product) Transaction {
	t.Helper()

	ctx := context.Background()
	var subtotal int64
	for _, p := range items {
		subtotal += p.PriceCents
	}

	tx, err := queries.CreateTransaction(ctx, CreateTransactionParams{
		OrderNumber:     "HL-" + uuid.NewString(),
		UserID:          userID,
		SubtotalCents:   subtotal,
		TotalCents:      subtotal,
		PaymentMethod:   "cod",
		PaymentStatus:   "unpaid",
		ShippingAddress: []byte(`{"city":"Baguio"}`),
	})
	require.NoError(t, err)

	for i, p := range items {
		require.NoError(t, queries.CreateTransactionItem(ctx, CreateTransactionItemParams{
			TransactionID:  tx.ID,
			Position:       int32(i),
			ProductID:      p.ID,
			Name:           p.Name,
			Unit:           p.Unit,
			UnitPriceCents: p.PriceCents,
			Quantity:       1,
			LineTotalCents: p.PriceCents,
		}))
	}

	if status != "pending" {
		tx, err = queries.UpdateTransactionStatus(ctx, UpdateTransactionStatusParams{
			Status:        status,
			PaymentStatus: tx.PaymentStatus,
			ID:            tx.ID,
		})
		require.NoError(t, err)
	}
	return tx
}
