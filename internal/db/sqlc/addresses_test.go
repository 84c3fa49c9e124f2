package sqlc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // Register postgres driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvestlink/database"
)

func addressParams(userID uuid.UUID, label string, primary bool) CreateAddressParams {
	return CreateAddressParams{
		UserID:        userID,
		Label:         label,
		RecipientName: "Juan Dela Cruz",
		Phone:         "09171234567",
		Street:        "12 Session Road",
		City:          "Baguio",
		Province:      "Benguet",
		PostalCode:    "2600",
		IsPrimary:     primary,
	}
}

func TestAddresses(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		scenarioFunc func(t *testing.T, queries *Queries, userID uuid.UUID)
	}{
		{
			name: "second primary violates partial unique index",
			//nolint:thelper // We want to see these lines in the test output
			scenarioFunc: func(t *testing.T, queries *Queries, userID uuid.UUID) {
				ctx := context.Background()
				_, err := queries.CreateAddress(ctx, addressParams(userID, "Home", true))
				require.NoError(t, err)

				_, err = queries.CreateAddress(ctx, addressParams(userID, "Work", true))
				require.Error(t, err)
			},
		},
		{
			name: "move primary by clearing first",
			//nolint:thelper // We want to see these lines in the test output
			scenarioFunc: func(t *testing.T, queries *Queries, userID uuid.UUID) {
				ctx := context.Background()
				home, err := queries.CreateAddress(ctx, addressParams(userID, "Home", true))
				require.NoError(t, err)
				work, err := queries.CreateAddress(ctx, addressParams(userID, "Work", false))
				require.NoError(t, err)

				require.NoError(t, queries.ClearPrimaryAddress(ctx, userID))
				_, err = queries.SetPrimaryAddress(ctx, SetPrimaryAddressParams{ID: work.ID, UserID: userID})
				require.NoError(t, err)

				primary, err := queries.GetPrimaryAddress(ctx, userID)
				require.NoError(t, err)
				assert.Equal(t, work.ID, primary.ID)

				list, err := queries.ListAddresses(ctx, userID)
				require.NoError(t, err)
				require.Len(t, list, 2)
				assert.Equal(t, work.ID, list[0].ID)
				assert.Equal(t, home.ID, list[1].ID)
			},
		},
		{
			name: "promote latest after deleting primary",
			//nolint:thelper // We want to see these lines in the test output
			scenarioFunc: func(t *testing.T, queries *Queries, userID uuid.UUID) {
				ctx := context.Background()
				home, err := queries.CreateAddress(ctx, addressParams(userID, "Home", true))
				require.NoError(t, err)
				older, err := queries.CreateAddress(ctx, addressParams(userID, "Farm", false))
				require.NoError(t, err)
				newer, err := queries.CreateAddress(ctx, addressParams(userID, "Work", false))
				require.NoError(t, err)

				// touching the older address makes it the most recently updated
				_, err = queries.UpdateAddress(ctx, UpdateAddressParams{
					Label: "Farmhouse", RecipientName: older.RecipientName, Phone: older.Phone,
					Street: older.Street, City: older.City, Province: older.Province,
					PostalCode: older.PostalCode, ID: older.ID, UserID: userID,
				})
				require.NoError(t, err)

				n, err := queries.DeleteAddress(ctx, DeleteAddressParams{ID: home.ID, UserID: userID})
				require.NoError(t, err)
				assert.Equal(t, int64(1), n)

				n, err = queries.PromoteLatestAddress(ctx, PromoteLatestAddressParams{UserID: userID})
				require.NoError(t, err)
				assert.Equal(t, int64(1), n)

				primary, err := queries.GetPrimaryAddress(ctx, userID)
				require.NoError(t, err)
				assert.Equal(t, older.ID, primary.ID)
				assert.NotEqual(t, newer.ID, primary.ID)
			},
		},
		{
			name: "addresses are scoped to their owner",
			//nolint:thelper // We want to see these lines in the test output
			scenarioFunc: func(t *testing.T, queries *Queries, userID uuid.UUID) {
				ctx := context.Background()
				home, err := queries.CreateAddress(ctx, addressParams(userID, "Home", true))
				require.NoError(t, err)

				stranger := createTestUser(t, queries, "stranger@example.com")
				_, err = queries.GetAddress(ctx, GetAddressParams{ID: home.ID, UserID: stranger.ID})
				require.Error(t, err)

				n, err := queries.DeleteAddress(ctx, DeleteAddressParams{ID: home.ID, UserID: stranger.ID})
				require.NoError(t, err)
				assert.Equal(t, int64(0), n)

				count, err := queries.CountAddresses(ctx, userID)
				require.NoError(t, err)
				assert.Equal(t, int64(1), count)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			db, cleanupFunc := database.SetupTestDB(t)
			t.Cleanup(cleanupFunc)
			queries := New(db)

			user := createTestUser(t, queries, "owner@example.com")
			tc.scenarioFunc(t, queries, user.ID)
		})
	}
}
