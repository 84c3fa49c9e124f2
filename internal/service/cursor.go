package service

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CursorSeparator separates the timestamp and id inside a cursor
const CursorSeparator = "|"

// Cursor is a keyset position in a list ordered by (created_at DESC, id DESC)
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// DecodeCursor decodes base64(created_at|id). An empty string yields a nil cursor.
func DecodeCursor(cursor string) (*Cursor, error) {
	if cursor == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	ts, id, ok := strings.Cut(string(decoded), CursorSeparator)
	if !ok {
		return nil, fmt.Errorf("%w: expected timestamp%sid", ErrInvalidCursor, CursorSeparator)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	return &Cursor{CreatedAt: createdAt, ID: parsedID}, nil
}

// EncodeCursor encodes a list position into an opaque cursor
func EncodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + CursorSeparator + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// Before reports whether a row at (createdAt, id) comes after the cursor in
// newest-first order.
func (c *Cursor) Before(createdAt time.Time, id uuid.UUID) bool {
	if c == nil {
		return true
	}
	if !createdAt.Equal(c.CreatedAt) {
		return createdAt.Before(c.CreatedAt)
	}
	return strings.Compare(id.String(), c.ID.String()) < 0
}
