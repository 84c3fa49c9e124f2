package inmemory

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/service"
)

func TestMain(m *testing.M) {
	restore := auth.SetBcryptCostForTesting(bcrypt.MinCost)
	code := m.Run()
	restore()
	os.Exit(code)
}

type slugVisibility map[string]bool

func (v slugVisibility) Visible(p *service.Product) bool { return !v[p.Slug] }
func (v slugVisibility) Active() bool                    { return len(v) > 0 }

func newTestService(opts ...Option) service.Service {
	opts = append([]Option{
		WithPricing(service.NewLivePricing(service.Pricing{
			ShippingFeeCents:           5000,
			FreeShippingThresholdCents: 150000,
		})),
	}, opts...)
	return New(opts...)
}

func register(t *testing.T, svc service.Service, email string) *service.User {
	t.Helper()

	user, err := svc.Register(context.Background(), service.RegisterInput{
		FirstName: "Jose",
		LastName:  "Dela Cruz",
		Email:     email,
		Phone:     "09181234567",
		Password:  "harvest2026",
	})
	require.NoError(t, err)
	return user
}

func addProduct(t *testing.T, svc service.Service, name string, priceCents int64, stock int) *service.Product {
	t.Helper()

	p, err := svc.CreateProduct(context.Background(), service.ProductInput{
		Name:       name,
		Category:   "Fruits",
		Tags:       []string{"Seasonal"},
		PriceCents: priceCents,
		Unit:       "kg",
		Stock:      stock,
		FarmName:   "Davao Orchard",
	})
	require.NoError(t, err)
	return p
}

func address(label string, primary bool) service.AddressInput {
	return service.AddressInput{
		Label:         label,
		RecipientName: "Jose Dela Cruz",
		Phone:         "09181234567",
		Street:        "45 Roxas Avenue",
		Barangay:      "Poblacion",
		City:          "Davao City",
		Province:      "Davao del Sur",
		PostalCode:    "8000",
		IsPrimary:     primary,
	}
}

func TestAccounts(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()
	user := register(t, svc, "Jose@Example.com")
	assert.Equal(t, "jose@example.com", user.Email)
	assert.Equal(t, service.RoleCustomer, user.Role)

	_, err := svc.Register(ctx, service.RegisterInput{
		FirstName: "Other", LastName: "Person", Email: "jose@example.com", Password: "harvest2026",
	})
	require.ErrorIs(t, err, service.ErrEmailTaken)

	got, err := svc.Authenticate(ctx, " JOSE@example.com ", "harvest2026")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "jose@example.com", "wrong-password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "nobody@example.com", "harvest2026")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.ChangePassword(ctx, user.ID, "harvest2026", "harvest2026")
	require.ErrorIs(t, err, service.ErrSamePassword)
	_, err = svc.ChangePassword(ctx, user.ID, "harvest2026", "mangoes2027")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "jose@example.com", "mangoes2027")
	require.NoError(t, err)

	admin, err := svc.EnsureAdmin(ctx, service.RegisterInput{
		FirstName: "Jose", LastName: "Dela Cruz", Email: "jose@example.com", Password: "adminpass1",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, admin.ID)
	assert.True(t, admin.IsAdmin())
}

func TestCatalogVisibility(t *testing.T) {
	t.Parallel()

	svc := newTestService(WithVisibility(slugVisibility{"durian": true}))
	ctx := context.Background()

	mango := addProduct(t, svc, "Mango", 12000, 10)
	durian := addProduct(t, svc, "Durian", 25000, 3)
	pomelo := addProduct(t, svc, "Pomelo", 9000, 0)

	page, err := svc.ListProducts(ctx, service.WithSort(string(service.SortPriceAsc)))
	require.NoError(t, err)
	require.Len(t, page.Products, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, pomelo.ID, page.Products[0].ID)
	assert.Equal(t, mango.ID, page.Products[1].ID)

	page, err = svc.ListProducts(ctx, service.WithInStock())
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, mango.ID, page.Products[0].ID)

	_, err = svc.GetProduct(ctx, "durian")
	require.ErrorIs(t, err, service.ErrProductNotFound)
	got, err := svc.GetProduct(ctx, " MANGO ")
	require.NoError(t, err)
	assert.Equal(t, mango.ID, got.ID)

	_, err = svc.AddCartItem(ctx, uuid.New(), durian.ID, 1)
	require.ErrorIs(t, err, service.ErrProductNotFound)

	admin, err := svc.AdminListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, admin.Products, 3)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.Category{{Name: "Fruits", ProductCount: 2}}, cats)
}

func TestCart(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()
	user := register(t, svc, "cart@example.com")
	mango := addProduct(t, svc, "Mango", 12000, 5)
	lanzones := addProduct(t, svc, "Lanzones", 8000, 200)

	tests := []struct {
		name      string
		productID uuid.UUID
		quantity  int
		wantErr   error
	}{
		{name: "zero quantity", productID: mango.ID, quantity: 0},
		{name: "too many", productID: lanzones.ID, quantity: 100},
		{name: "over stock", productID: mango.ID, quantity: 6, wantErr: service.ErrInsufficientStock},
		{name: "unknown product", productID: uuid.New(), quantity: 1, wantErr: service.ErrProductNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddCartItem(ctx, user.ID, tt.productID, tt.quantity)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.True(t, service.IsValidationError(err))
			}
		})
	}

	_, err := svc.AddCartItem(ctx, user.ID, mango.ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddCartItem(ctx, user.ID, mango.ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	_, err = svc.AddCartItem(ctx, user.ID, mango.ID, 3)
	require.ErrorIs(t, err, service.ErrInsufficientStock)

	cart, err = svc.AddCartItem(ctx, user.ID, lanzones.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, mango.ID, cart.Items[0].ProductID)
	assert.Equal(t, int64(3*12000+2*8000), cart.SubtotalCents)
	assert.Equal(t, int64(5000), cart.ShippingFeeCents)
	assert.True(t, cart.CanCheckout)

	cart, err = svc.UpdateCartItem(ctx, user.ID, lanzones.ID, 0)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	_, err = svc.RemoveCartItem(ctx, user.ID, lanzones.ID)
	require.ErrorIs(t, err, service.ErrCartItemNotFound)

	in := service.ProductInput{Name: "Mango", Category: "Fruits", PriceCents: 12000, Unit: "kg", Stock: 5,
		Status: service.ProductStatusArchived}
	_, err = svc.UpdateProduct(ctx, mango.ID, in)
	require.NoError(t, err)

	cart, err = svc.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, cart.CanCheckout)
	assert.NotEmpty(t, cart.Items[0].Warning)

	_, err = svc.AddCartItem(ctx, user.ID, mango.ID, 1)
	require.ErrorIs(t, err, service.ErrProductUnavailable)

	require.NoError(t, svc.ClearCart(ctx, user.ID))
	cart, err = svc.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.False(t, cart.CanCheckout)
}

func primaryCount(t *testing.T, svc service.Service, userID uuid.UUID) int {
	t.Helper()

	list, err := svc.ListAddresses(context.Background(), userID)
	require.NoError(t, err)
	n := 0
	for _, a := range list {
		if a.IsPrimary {
			n++
		}
	}
	return n
}

func TestAddresses(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()
	user := register(t, svc, "addr@example.com")

	home, err := svc.CreateAddress(ctx, user.ID, address("Home", false))
	require.NoError(t, err)
	assert.True(t, home.IsPrimary)

	_, err = svc.UpdateAddress(ctx, user.ID, home.ID, address("Home", false))
	require.ErrorIs(t, err, service.ErrLastPrimaryAddress)

	office, err := svc.CreateAddress(ctx, user.ID, address("Office", true))
	require.NoError(t, err)
	assert.True(t, office.IsPrimary)
	assert.Equal(t, 1, primaryCount(t, svc, user.ID))

	list, err := svc.ListAddresses(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, office.ID, list[0].ID)

	_, err = svc.UpdateAddress(ctx, user.ID, office.ID, address("Office", false))
	require.NoError(t, err)
	got, err := svc.GetAddress(ctx, user.ID, home.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPrimary)

	_, err = svc.SetPrimaryAddress(ctx, user.ID, office.ID)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteAddress(ctx, user.ID, office.ID))
	got, err = svc.GetAddress(ctx, user.ID, home.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPrimary)

	other := register(t, svc, "other@example.com")
	_, err = svc.GetAddress(ctx, other.ID, home.ID)
	require.ErrorIs(t, err, service.ErrAddressNotFound)
	require.ErrorIs(t, svc.DeleteAddress(ctx, other.ID, home.ID), service.ErrAddressNotFound)

	for i := 1; i < service.MaxAddressesPerUser; i++ {
		_, err := svc.CreateAddress(ctx, user.ID, address("Extra", false))
		require.NoError(t, err)
	}
	_, err = svc.CreateAddress(ctx, user.ID, address("One too many", false))
	require.ErrorIs(t, err, service.ErrAddressLimit)
	assert.Equal(t, 1, primaryCount(t, svc, user.ID))
}

func TestCheckoutAndLifecycle(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()
	user := register(t, svc, "buyer@example.com")
	_, err := svc.CreateAddress(ctx, user.ID, address("Home", true))
	require.NoError(t, err)
	mango := addProduct(t, svc, "Mango", 12000, 5)

	_, err = svc.Checkout(ctx, user.ID, service.CheckoutInput{PaymentMethod: "cod"})
	require.ErrorIs(t, err, service.ErrCartEmpty)

	_, err = svc.AddCartItem(ctx, user.ID, mango.ID, 2)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, user.ID, service.CheckoutInput{PaymentMethod: "gcash", PaymentReference: "12345"})
	require.ErrorIs(t, err, service.ErrInvalidPaymentReference)
	_, err = svc.Checkout(ctx, user.ID, service.CheckoutInput{PaymentMethod: "bitcoin"})
	require.ErrorIs(t, err, service.ErrInvalidPaymentMethod)

	res, err := svc.Checkout(ctx, user.ID, service.CheckoutInput{
		PaymentMethod:    "GCash",
		PaymentReference: "1234-5678-9012",
	})
	require.NoError(t, err)
	tx := res.Transaction
	assert.Equal(t, service.PaymentMethodGCash, tx.PaymentMethod)
	assert.Equal(t, "123456789012", tx.PaymentReference)
	assert.Equal(t, service.PaymentStatusPaid, tx.PaymentStatus)
	assert.Equal(t, service.OrderStatusPending, tx.Status)
	assert.Equal(t, int64(24000+5000), tx.TotalCents)
	assert.Equal(t, "Davao City", tx.ShippingAddress.City)
	assert.Equal(t, service.InvoiceStatusPaid, res.Invoice.Status)
	assert.NotNil(t, res.Invoice.PaidAt)

	p, err := svc.AdminGetProduct(ctx, mango.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
	cart, err := svc.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	stranger := register(t, svc, "stranger@example.com")
	_, err = svc.GetMyTransaction(ctx, stranger.ID, tx.ID)
	require.ErrorIs(t, err, service.ErrTransactionNotFound)
	_, err = svc.GetMyInvoice(ctx, stranger.ID, tx.ID)
	require.ErrorIs(t, err, service.ErrInvoiceNotFound)

	cancelled, err := svc.CancelMyTransaction(ctx, user.ID, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, service.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, service.PaymentStatusRefunded, cancelled.PaymentStatus)
	assert.NotNil(t, cancelled.CancelledAt)
	inv, err := svc.GetMyInvoice(ctx, user.ID, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, service.InvoiceStatusVoid, inv.Status)
	p, err = svc.AdminGetProduct(ctx, mango.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)

	_, err = svc.CancelMyTransaction(ctx, user.ID, tx.ID)
	require.ErrorIs(t, err, service.ErrOrderNotCancellable)

	_, err = svc.AddCartItem(ctx, user.ID, mango.ID, 1)
	require.NoError(t, err)
	cod, err := svc.Checkout(ctx, user.ID, service.CheckoutInput{PaymentMethod: "cod", PaymentReference: "ignored"})
	require.NoError(t, err)
	assert.Empty(t, cod.Transaction.PaymentReference)
	assert.Equal(t, service.InvoiceStatusUnpaid, cod.Invoice.Status)

	_, err = svc.UpdateTransactionStatus(ctx, cod.Transaction.ID, service.OrderStatusDelivered)
	require.ErrorIs(t, err, service.ErrInvalidStatusTransition)
	for _, status := range []service.OrderStatus{
		service.OrderStatusProcessing,
		service.OrderStatusShipped,
		service.OrderStatusDelivered,
	} {
		_, err := svc.UpdateTransactionStatus(ctx, cod.Transaction.ID, status)
		require.NoError(t, err)
	}
	delivered, err := svc.AdminGetTransaction(ctx, cod.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, service.PaymentStatusPaid, delivered.PaymentStatus)
	assert.NotNil(t, delivered.DeliveredAt)
	inv, err = svc.AdminGetInvoice(ctx, cod.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, service.InvoiceStatusPaid, inv.Status)

	page, err := svc.ListMyTransactions(ctx, user.ID, service.WithLimit(1))
	require.NoError(t, err)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, cod.Transaction.ID, page.Transactions[0].ID)
	require.NotEmpty(t, page.NextCursor)

	page, err = svc.ListMyTransactions(ctx, user.ID, service.WithLimit(1), service.WithCursor(page.NextCursor))
	require.NoError(t, err)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, tx.ID, page.Transactions[0].ID)
	assert.Empty(t, page.NextCursor)

	top, err := svc.RefreshTopProducts(ctx, 24*time.Hour, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, mango.ID, top[0].ProductID)
	assert.Equal(t, int64(1), top[0].UnitsSold)
	assert.Equal(t, 1, top[0].Rank)

	archived, err := svc.DeleteProduct(ctx, mango.ID)
	require.NoError(t, err)
	assert.True(t, archived)

	require.ErrorIs(t, svc.DeleteUser(ctx, stranger.ID, user.ID), service.ErrUserHasTransactions)
	require.NoError(t, svc.DeleteUser(ctx, user.ID, stranger.ID))
}

func TestAdmin(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx := context.Background()
	admin, err := svc.EnsureAdmin(ctx, service.RegisterInput{
		FirstName: "Ana", LastName: "Reyes", Email: "admin@example.com", Password: "adminpass1",
	})
	require.NoError(t, err)
	customer := register(t, svc, "customer@example.com")

	demote := service.RoleCustomer
	_, err = svc.UpdateUser(ctx, admin.ID, admin.ID, service.UserUpdate{Role: &demote})
	require.ErrorIs(t, err, service.ErrSelfModification)
	require.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, admin.ID), service.ErrSelfModification)

	suspended := service.UserStatusSuspended
	u, err := svc.UpdateUser(ctx, admin.ID, customer.ID, service.UserUpdate{Status: &suspended})
	require.NoError(t, err)
	assert.Equal(t, service.UserStatusSuspended, u.Status)
	_, err = svc.Authenticate(ctx, "customer@example.com", "harvest2026")
	require.ErrorIs(t, err, service.ErrAccountSuspended)

	users, err := svc.ListUsers(ctx, service.WithSearch("reyes"))
	require.NoError(t, err)
	require.Len(t, users.Users, 1)
	assert.Equal(t, admin.ID, users.Users[0].ID)

	calamansi := addProduct(t, svc, "Calamansi", 6000, 2)
	_, err = svc.CreateProduct(ctx, service.ProductInput{
		Name: "Calamansi", Category: "Fruits", PriceCents: 6000, Unit: "kg",
	})
	require.ErrorIs(t, err, service.ErrSlugTaken)

	img, err := svc.SetProductImage(ctx, calamansi.ID, "/uploads/calamansi.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/calamansi.jpg", img.ImageURL)

	_, err = svc.SubmitContactMessage(ctx, service.ContactInput{
		Name:    "Liza",
		Email:   "liza@example.com",
		Subject: "Bulk order",
		Message: "Do you deliver to Cebu every week?",
	})
	require.NoError(t, err)

	d, err := svc.Dashboard(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.Users.Total)
	assert.Equal(t, int64(1), d.Users.Admins)
	assert.Equal(t, int64(1), d.Users.Suspended)
	assert.Equal(t, int64(1), d.Products.Active)
	assert.Equal(t, int64(1), d.NewMessages)
	assert.Len(t, d.Orders, 5)
	require.Len(t, d.LowStock, 1)
	assert.Equal(t, calamansi.ID, d.LowStock[0].ID)

	_, err = svc.Dashboard(ctx, -1)
	assert.True(t, service.IsValidationError(err))

	msgs, err := svc.ListContactMessages(ctx, service.WithContactStatus(service.ContactStatusNew))
	require.NoError(t, err)
	require.Len(t, msgs.Messages, 1)
	m, err := svc.UpdateContactMessageStatus(ctx, msgs.Messages[0].ID, service.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, service.ContactStatusRead, m.Status)

	archived, err := svc.DeleteProduct(ctx, calamansi.ID)
	require.NoError(t, err)
	assert.False(t, archived)
	_, err = svc.AdminGetProduct(ctx, calamansi.ID)
	require.ErrorIs(t, err, service.ErrProductNotFound)
}
