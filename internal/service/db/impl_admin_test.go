package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvestlink/internal/service"
)

func TestAdminUsers(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	ctx := context.Background()

	admin, err := svc.EnsureAdmin(ctx, service.RegisterInput{
		FirstName: "Store", LastName: "Admin", Email: "admin@example.com", Password: "admin12345",
	})
	require.NoError(t, err)
	buyer := newShopper(t, svc, "buyer@example.com")
	idle := registerCustomer(t, svc, "idle@example.com")

	t.Run("list and page", func(t *testing.T) {
		page, err := svc.ListUsers(ctx, service.WithLimit(2))
		require.NoError(t, err)
		require.Len(t, page.Users, 2)
		require.NotEmpty(t, page.NextCursor)

		rest, err := svc.ListUsers(ctx, service.WithLimit(2), service.WithCursor(page.NextCursor))
		require.NoError(t, err)
		assert.Len(t, rest.Users, 1)

		admins, err := svc.ListUsers(ctx, service.WithRole(service.RoleAdmin))
		require.NoError(t, err)
		require.Len(t, admins.Users, 1)
		assert.Equal(t, admin.ID, admins.Users[0].ID)

		found, err := svc.ListUsers(ctx, service.WithSearch("IDLE@"))
		require.NoError(t, err)
		require.Len(t, found.Users, 1)
		assert.Equal(t, idle.ID, found.Users[0].ID)
	})

	t.Run("self modification", func(t *testing.T) {
		customer := service.RoleCustomer
		_, err := svc.UpdateUser(ctx, admin.ID, admin.ID, service.UserUpdate{Role: &customer})
		require.ErrorIs(t, err, service.ErrSelfModification)

		suspended := service.UserStatusSuspended
		_, err = svc.UpdateUser(ctx, admin.ID, admin.ID, service.UserUpdate{Status: &suspended})
		require.ErrorIs(t, err, service.ErrSelfModification)

		require.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, admin.ID), service.ErrSelfModification)

		name := "Head"
		got, err := svc.UpdateUser(ctx, admin.ID, admin.ID, service.UserUpdate{FirstName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Head", got.FirstName)
		assert.True(t, got.IsAdmin())
	})

	t.Run("partial update", func(t *testing.T) {
		blank := "   "
		role := service.RoleAdmin
		got, err := svc.UpdateUser(ctx, admin.ID, idle.ID, service.UserUpdate{Phone: &blank, Role: &role})
		require.NoError(t, err)
		assert.Empty(t, got.Phone)
		assert.Equal(t, service.RoleAdmin, got.Role)
		assert.Equal(t, "Maria", got.FirstName)

		_, err = svc.UpdateUser(ctx, admin.ID, uuid.New(), service.UserUpdate{Role: &role})
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		kale := createProduct(t, svc, "Curly Kale", 8000, 10)
		_, err := svc.AddCartItem(ctx, buyer.user.ID, kale.ID, 1)
		require.NoError(t, err)
		checkout(t, svc, buyer.user.ID, "cod", "")

		require.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, buyer.user.ID), service.ErrUserHasTransactions)

		require.NoError(t, svc.DeleteUser(ctx, admin.ID, idle.ID))
		_, err = svc.GetUser(ctx, idle.ID)
		require.ErrorIs(t, err, service.ErrUserNotFound)

		require.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, idle.ID), service.ErrUserNotFound)
	})
}

func TestAdminProducts(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	ctx := context.Background()

	kale := createProduct(t, svc, "Curly Kale", 8000, 10)
	assert.Equal(t, "curly-kale", kale.Slug)
	assert.Equal(t, service.ProductStatusActive, kale.Status)

	t.Run("slug taken", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, service.ProductInput{
			Name: "Curly Kale", Category: "Vegetables", PriceCents: 9000, Unit: "kg",
		})
		require.ErrorIs(t, err, service.ErrSlugTaken)

		other := createProduct(t, svc, "Lacinato Kale", 9000, 5)
		_, err = svc.UpdateProduct(ctx, other.ID, service.ProductInput{
			Name: "Lacinato Kale", Slug: "curly-kale", Category: "Vegetables", PriceCents: 9000, Unit: "kg",
		})
		require.ErrorIs(t, err, service.ErrSlugTaken)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, service.ProductInput{
			Name: "Mystery", Category: "Vegetables", PriceCents: 0, Unit: "kg",
		})
		require.True(t, service.IsValidationError(err))

		_, err = svc.CreateProduct(ctx, service.ProductInput{
			Name: "Mystery", Category: "Vegetables", PriceCents: 100, Unit: "barrel",
		})
		require.True(t, service.IsValidationError(err))
	})

	t.Run("image", func(t *testing.T) {
		got, err := svc.SetProductImage(ctx, kale.ID, "/uploads/kale.png")
		require.NoError(t, err)
		assert.Equal(t, "/uploads/kale.png", got.ImageURL)

		_, err = svc.SetProductImage(ctx, uuid.New(), "/uploads/none.png")
		require.ErrorIs(t, err, service.ErrProductNotFound)
	})

	t.Run("delete ordered product archives it", func(t *testing.T) {
		s := newShopper(t, svc, "buyer@example.com")
		_, err := svc.AddCartItem(ctx, s.user.ID, kale.ID, 1)
		require.NoError(t, err)
		checkout(t, svc, s.user.ID, "cod", "")

		archived, err := svc.DeleteProduct(ctx, kale.ID)
		require.NoError(t, err)
		assert.True(t, archived)

		p, err := svc.AdminGetProduct(ctx, kale.ID)
		require.NoError(t, err)
		assert.Equal(t, service.ProductStatusArchived, p.Status)

		_, err = svc.GetProduct(ctx, "curly-kale")
		require.ErrorIs(t, err, service.ErrProductNotFound)
	})

	t.Run("delete unknown", func(t *testing.T) {
		_, err := svc.DeleteProduct(ctx, uuid.New())
		require.ErrorIs(t, err, service.ErrProductNotFound)
	})
}

func TestContactMessages(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	ctx := context.Background()

	user := registerCustomer(t, svc, "asker@example.com")

	anon, err := svc.SubmitContactMessage(ctx, service.ContactInput{
		Name: "Visitor", Email: "Visitor@Example.com", Message: "Do you deliver to La Trinidad?",
	})
	require.NoError(t, err)
	assert.Equal(t, "General inquiry", anon.Subject)
	assert.Equal(t, "visitor@example.com", anon.Email)
	assert.Nil(t, anon.UserID)
	assert.Equal(t, service.ContactStatusNew, anon.Status)

	signed, err := svc.SubmitContactMessage(ctx, service.ContactInput{
		Name: "Maria", Email: user.Email, Subject: "Order", Message: "Can I change my delivery date?", UserID: &user.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, signed.UserID)
	assert.Equal(t, user.ID, *signed.UserID)

	_, err = svc.SubmitContactMessage(ctx, service.ContactInput{Name: "Short", Email: "a@example.com", Message: "hi"})
	require.True(t, service.IsValidationError(err))

	read, err := svc.UpdateContactMessageStatus(ctx, anon.ID, service.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, service.ContactStatusRead, read.Status)

	_, err = svc.UpdateContactMessageStatus(ctx, anon.ID, "spam")
	require.True(t, service.IsValidationError(err))

	_, err = svc.UpdateContactMessageStatus(ctx, uuid.New(), service.ContactStatusArchived)
	require.ErrorIs(t, err, service.ErrContactMessageNotFound)

	page, err := svc.ListContactMessages(ctx, service.WithContactStatus(service.ContactStatusNew))
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, signed.ID, page.Messages[0].ID)

	all, err := svc.ListContactMessages(ctx, service.WithLimit(1))
	require.NoError(t, err)
	require.Len(t, all.Messages, 1)
	assert.Equal(t, signed.ID, all.Messages[0].ID)
	assert.NotEmpty(t, all.NextCursor)
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.EnsureAdmin(ctx, service.RegisterInput{
		FirstName: "Store", LastName: "Admin", Email: "admin@example.com", Password: "admin12345",
	})
	require.NoError(t, err)

	kale := createProduct(t, svc, "Curly Kale", 8000, 10)
	honey := createProduct(t, svc, "Wild Honey", 30000, 2)
	s := newShopper(t, svc, "buyer@example.com")

	_, err = svc.AddCartItem(ctx, s.user.ID, kale.ID, 3)
	require.NoError(t, err)
	checkout(t, svc, s.user.ID, "gcash", "123456789012")

	_, err = svc.AddCartItem(ctx, s.user.ID, honey.ID, 1)
	require.NoError(t, err)
	cancelled := checkout(t, svc, s.user.ID, "cod", "")
	_, err = svc.UpdateTransactionStatus(ctx, cancelled.Transaction.ID, service.OrderStatusCancelled)
	require.NoError(t, err)

	_, err = svc.SubmitContactMessage(ctx, service.ContactInput{
		Name: "Visitor", Email: "visitor@example.com", Message: "Where is your farm located?",
	})
	require.NoError(t, err)

	_, err = svc.Dashboard(ctx, -1)
	require.True(t, service.IsValidationError(err))

	d, err := svc.Dashboard(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, service.UserCounts{Total: 2, Customers: 1, Admins: 1}, d.Users)
	assert.Equal(t, service.ProductCounts{Total: 2, Active: 2}, d.Products)
	assert.Equal(t, int64(1), d.Orders[service.OrderStatusPending])
	assert.Equal(t, int64(1), d.Orders[service.OrderStatusCancelled])
	assert.Equal(t, int64(0), d.Orders[service.OrderStatusShipped])
	assert.Equal(t, int64(29000), d.RevenueCents)
	assert.Equal(t, int64(1), d.NewMessages)
	require.Len(t, d.LowStock, 1)
	assert.Equal(t, honey.ID, d.LowStock[0].ID)
	assert.Empty(t, d.TopProducts)
}
