package sqlc

import (
	"context"
	"testing"

	_ "github.com/lib/pq" // Register postgres driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvestlink/database"
)

func TestContactMessages(t *testing.T) {
	t.Parallel()

	db, cleanupFunc := database.SetupTestDB(t)
	t.Cleanup(cleanupFunc)
	queries := New(db)
	ctx := context.Background()

	user := createTestUser(t, queries, "sender@example.com")

	anonymous, err := queries.CreateContactMessage(ctx, CreateContactMessageParams{
		Name:    "Maria",
		Email:   "maria@example.com",
		Subject: "Bulk order",
		Message: "Do you deliver to La Trinidad?",
	})
	require.NoError(t, err)
	assert.Nil(t, anonymous.UserID)
	assert.Equal(t, "new", anonymous.Status)

	signedIn, err := queries.CreateContactMessage(ctx, CreateContactMessageParams{
		Name:    "Juan",
		Email:   user.Email,
		Subject: "Order question",
		Message: "When will my order ship?",
		UserID:  &user.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, signedIn.UserID)

	read, err := queries.UpdateContactMessageStatus(ctx, UpdateContactMessageStatusParams{Status: "read", ID: anonymous.ID})
	require.NoError(t, err)
	assert.Equal(t, "read", read.Status)

	newCount, err := queries.CountContactMessagesByStatus(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, int64(1), newCount)

	status := "new"
	list, err := queries.ListContactMessages(ctx, ListContactMessagesParams{Status: &status, Size: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, signedIn.ID, list[0].ID)

	// messages outlive the account that sent them
	_, err = queries.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	list, err = queries.ListContactMessages(ctx, ListContactMessagesParams{Size: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, m := range list {
		assert.Nil(t, m.UserID)
	}
}
