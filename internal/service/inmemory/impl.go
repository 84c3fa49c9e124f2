// Package inmemory provides an in-memory implementation of the storefront Service.
// It is used for demos and tests and keeps no state across restarts.
package inmemory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/telemetry"
)

type cartLine struct {
	quantity int
	addedAt  time.Time
}

type topEntry struct {
	productID    uuid.UUID
	unitsSold    int64
	revenueCents int64
	rank         int
	computedAt   time.Time
}

// memSvc implements the Service interface with maps guarded by one RWMutex
type memSvc struct {
	mu sync.RWMutex // Protects everything below

	users    map[uuid.UUID]*service.User
	emails   map[string]uuid.UUID
	products map[uuid.UUID]*service.Product
	slugs    map[string]uuid.UUID
	carts    map[uuid.UUID]map[uuid.UUID]*cartLine
	// addresses are keyed by user
	addresses    map[uuid.UUID][]*service.Address
	transactions map[uuid.UUID]*service.Transaction
	// invoices are keyed by transaction
	invoices map[uuid.UUID]*service.Invoice
	messages map[uuid.UUID]*service.ContactMessage
	top      []topEntry
	lastTick time.Time

	visibility service.ProductVisibility
	pricing    service.PricingSource
	metrics    *telemetry.CommerceMetrics
}

var _ service.Service = (*memSvc)(nil)

// Option is a functional option for configuring the memSvc
type Option func(*memSvc)

// WithVisibility sets the storefront product filter
func WithVisibility(v service.ProductVisibility) Option {
	return func(s *memSvc) {
		s.visibility = v
	}
}

// WithPricing sets the source of the shipping rules
func WithPricing(p service.PricingSource) Option {
	return func(s *memSvc) {
		s.pricing = p
	}
}

// WithMetrics sets the business metric instruments
func WithMetrics(m *telemetry.CommerceMetrics) Option {
	return func(s *memSvc) {
		s.metrics = m
	}
}

// New creates an empty in-memory storefront
func New(opts ...Option) service.Service {
	s := &memSvc{
		users:        make(map[uuid.UUID]*service.User),
		emails:       make(map[string]uuid.UUID),
		products:     make(map[uuid.UUID]*service.Product),
		slugs:        make(map[string]uuid.UUID),
		carts:        make(map[uuid.UUID]map[uuid.UUID]*cartLine),
		addresses:    make(map[uuid.UUID][]*service.Address),
		transactions: make(map[uuid.UUID]*service.Transaction),
		invoices:     make(map[uuid.UUID]*service.Invoice),
		messages:     make(map[uuid.UUID]*service.ContactMessage),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pricing == nil {
		s.pricing = service.NewLivePricing(service.Pricing{})
	}
	return s
}

// CheckReadiness implements Service.CheckReadiness
func (*memSvc) CheckReadiness(_ context.Context) error {
	return nil
}

// tick returns a strictly increasing timestamp so that newest-first orderings
// are stable. Caller must hold s.mu write lock.
func (s *memSvc) tick() time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(s.lastTick) {
		now = s.lastTick.Add(time.Microsecond)
	}
	s.lastTick = now
	return now
}

func (s *memSvc) visible(p *service.Product) bool {
	return s.visibility == nil || s.visibility.Visible(p)
}

func cloneUser(u *service.User) *service.User {
	c := *u
	return &c
}

func cloneProduct(p *service.Product) service.Product {
	c := *p
	c.Tags = append([]string{}, p.Tags...)
	return c
}

func cloneAddress(a *service.Address) *service.Address {
	c := *a
	return &c
}

func cloneTransaction(t *service.Transaction) *service.Transaction {
	c := *t
	c.Items = append([]service.OrderItem{}, t.Items...)
	if t.CancelledAt != nil {
		at := *t.CancelledAt
		c.CancelledAt = &at
	}
	if t.DeliveredAt != nil {
		at := *t.DeliveredAt
		c.DeliveredAt = &at
	}
	return &c
}

func cloneInvoice(i *service.Invoice) *service.Invoice {
	c := *i
	if i.PaidAt != nil {
		at := *i.PaidAt
		c.PaidAt = &at
	}
	return &c
}

func cloneMessage(m *service.ContactMessage) *service.ContactMessage {
	c := *m
	if m.UserID != nil {
		id := *m.UserID
		c.UserID = &id
	}
	return &c
}

// newerFirst reports whether (a, aID) sorts before (b, bID) in a newest-first listing
func newerFirst(a time.Time, aID uuid.UUID, b time.Time, bID uuid.UUID) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return bytes.Compare(aID[:], bID[:]) > 0
}

// cursorPage sorts items newest first, skips everything up to the cursor and
// cuts a page of limit items. It returns the next cursor when more remain.
func cursorPage[T any](
	items []T,
	key func(T) (time.Time, uuid.UUID),
	cursor string,
	limit int,
) ([]T, string, error) {
	c, err := service.DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	sort.Slice(items, func(i, j int) bool {
		ai, aID := key(items[i])
		bj, bID := key(items[j])
		return newerFirst(ai, aID, bj, bID)
	})

	out := make([]T, 0, limit)
	for _, item := range items {
		createdAt, id := key(item)
		if !c.Before(createdAt, id) {
			continue
		}
		if len(out) == limit {
			last, lastID := key(out[len(out)-1])
			return out, service.EncodeCursor(last, lastID), nil
		}
		out = append(out, item)
	}
	return out, "", nil
}
