package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harvestlink/harvestlink/database"
	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/service"
)

func TestMain(m *testing.M) {
	restore := auth.SetBcryptCostForTesting(bcrypt.MinCost)
	code := m.Run()
	restore()
	os.Exit(code)
}

// slugVisibility hides the listed slugs
type slugVisibility map[string]bool

func (v slugVisibility) Visible(p *service.Product) bool { return !v[p.Slug] }
func (v slugVisibility) Active() bool                    { return len(v) > 0 }

// setupTestService creates a service over a freshly migrated database
func setupTestService(t *testing.T, opts ...Option) (service.Service, *pgxpool.Pool) {
	t.Helper()

	pool, cleanup := database.SetupTestDB(t)
	t.Cleanup(cleanup)

	opts = append([]Option{
		WithConnectionPool(pool),
		WithPricing(service.NewLivePricing(service.Pricing{
			ShippingFeeCents:           5000,
			FreeShippingThresholdCents: 150000,
		})),
	}, opts...)

	svc, err := New(opts...)
	require.NoError(t, err)
	return svc, pool
}

func registerCustomer(t *testing.T, svc service.Service, email string) *service.User {
	t.Helper()

	user, err := svc.Register(context.Background(), service.RegisterInput{
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     email,
		Phone:     "0917 123 4567",
		Password:  "harvest2026",
	})
	require.NoError(t, err)
	return user
}

func createProduct(t *testing.T, svc service.Service, name string, priceCents int64, stock int) *service.Product {
	t.Helper()

	p, err := svc.CreateProduct(context.Background(), service.ProductInput{
		Name:        name,
		Description: "Fresh from the farm",
		Category:    "Vegetables",
		Tags:        []string{"Organic"},
		PriceCents:  priceCents,
		Unit:        "kg",
		Stock:       stock,
		FarmName:    "Benguet Highland Farm",
	})
	require.NoError(t, err)
	return p
}

func addressInput(label string, primary bool) service.AddressInput {
	return service.AddressInput{
		Label:         label,
		RecipientName: "Maria Santos",
		Phone:         "09171234567",
		Street:        "12 Session Road",
		Barangay:      "Poblacion",
		City:          "Baguio",
		Province:      "Benguet",
		PostalCode:    "2600",
		IsPrimary:     primary,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{
			name:    "no pool",
			opts:    nil,
			wantErr: "pgx pool is required",
		},
		{
			name:    "nil pool",
			opts:    []Option{WithConnectionPool(nil)},
			wantErr: "pgx pool is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, err := New(tt.opts...)
			require.ErrorContains(t, err, tt.wantErr)
			assert.Nil(t, svc)
		})
	}
}

func TestCheckReadiness(t *testing.T) {
	t.Parallel()

	svc, pool := setupTestService(t)
	require.NoError(t, svc.CheckReadiness(context.Background()))

	pool.Close()
	require.Error(t, svc.CheckReadiness(context.Background()))
}

func TestAccounts(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	ctx := context.Background()

	user := registerCustomer(t, svc, "Maria@Example.com")
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, "09171234567", user.Phone)
	assert.Equal(t, service.RoleCustomer, user.Role)
	assert.NotEqual(t, "harvest2026", user.PasswordHash)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterInput{
			FirstName: "Other", LastName: "Person", Email: "MARIA@example.com", Password: "another123",
		})
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterInput{
			FirstName: "Weak", LastName: "Password", Email: "weak@example.com", Password: "short",
		})
		require.True(t, service.IsValidationError(err))
	})

	t.Run("authenticate", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, " maria@example.com ", "harvest2026")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		_, err = svc.Authenticate(ctx, "maria@example.com", "wrong-password1")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "nobody@example.com", "harvest2026")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "not-an-email", "harvest2026")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("update profile", func(t *testing.T) {
		got, err := svc.UpdateProfile(ctx, user.ID, service.ProfileInput{FirstName: " Ria ", LastName: "Santos", Phone: ""})
		require.NoError(t, err)
		assert.Equal(t, "Ria", got.FirstName)
		assert.Empty(t, got.Phone)
		assert.Equal(t, service.RoleCustomer, got.Role)

		_, err = svc.UpdateProfile(ctx, uuid.New(), service.ProfileInput{FirstName: "A", LastName: "B"})
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("change password", func(t *testing.T) {
		_, err := svc.ChangePassword(ctx, user.ID, "wrong-password1", "newharvest1")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, err = svc.ChangePassword(ctx, user.ID, "harvest2026", "harvest2026")
		require.ErrorIs(t, err, service.ErrSamePassword)

		updated, err := svc.ChangePassword(ctx, user.ID, "harvest2026", "newharvest1")
		require.NoError(t, err)
		assert.True(t, updated.PasswordChangedAt.After(user.PasswordChangedAt))

		_, err = svc.Authenticate(ctx, "maria@example.com", "newharvest1")
		require.NoError(t, err)
	})

	t.Run("suspended", func(t *testing.T) {
		admin, err := svc.EnsureAdmin(ctx, service.RegisterInput{
			FirstName: "Store", LastName: "Admin", Email: "admin@example.com", Password: "admin12345",
		})
		require.NoError(t, err)

		suspended := service.UserStatusSuspended
		_, err = svc.UpdateUser(ctx, admin.ID, user.ID, service.UserUpdate{Status: &suspended})
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "maria@example.com", "newharvest1")
		require.ErrorIs(t, err, service.ErrAccountSuspended)

		// a wrong password never reveals the suspension
		_, err = svc.Authenticate(ctx, "maria@example.com", "wrong-password1")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestEnsureAdmin(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	ctx := context.Background()

	customer := registerCustomer(t, svc, "owner@example.com")

	admin, err := svc.EnsureAdmin(ctx, service.RegisterInput{
		FirstName: "Farm", LastName: "Owner", Email: "owner@example.com", Password: "reset12345",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, admin.ID)
	assert.True(t, admin.IsAdmin())
	assert.Equal(t, service.UserStatusActive, admin.Status)

	_, err = svc.Authenticate(ctx, "owner@example.com", "reset12345")
	require.NoError(t, err)

	created, err := svc.EnsureAdmin(ctx, service.RegisterInput{
		FirstName: "New", LastName: "Admin", Email: "new-admin@example.com", Password: "admin12345",
	})
	require.NoError(t, err)
	assert.True(t, created.IsAdmin())
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgDeadlockDetected}, want: true},
		{
			name: "wrapped primary address conflict",
			err:  fmt.Errorf("failed to create address: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: primaryAddressIndex}),
			want: true,
		},
		{
			name: "other unique violation",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}
