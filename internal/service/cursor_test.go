package service

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_EncodeDecode(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 123456000, time.UTC)
	id := uuid.MustParse("7f6c2c1e-6a2b-4a47-9d8c-0b7d3f8f1a10")

	cursor, err := DecodeCursor(EncodeCursor(createdAt, id))
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.True(t, createdAt.Equal(cursor.CreatedAt))
	assert.Equal(t, id, cursor.ID)
}

func TestDecodeCursor_Errors(t *testing.T) {
	t.Parallel()

	empty, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, empty)

	tests := map[string]string{
		"not base64":    "!!!",
		"no separator":  base64.RawURLEncoding.EncodeToString([]byte("2026-01-01T00:00:00Z")),
		"bad timestamp": base64.RawURLEncoding.EncodeToString([]byte("yesterday|" + uuid.NewString())),
		"bad id":        base64.RawURLEncoding.EncodeToString([]byte("2026-01-01T00:00:00Z|nope")),
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeCursor(in)
			require.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}

func TestCursor_Before(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	var none *Cursor
	assert.True(t, none.Before(now, low))

	c := &Cursor{CreatedAt: now, ID: high}
	assert.True(t, c.Before(now.Add(-time.Second), high))
	assert.False(t, c.Before(now.Add(time.Second), low))
	assert.True(t, c.Before(now, low))
	assert.False(t, c.Before(now, high))
}
