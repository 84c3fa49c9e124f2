package inmemory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/service"
)

// ListAddresses implements AddressService.ListAddresses
func (s *memSvc) ListAddresses(_ context.Context, userID uuid.UUID) ([]service.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.addresses[userID]
	out := make([]service.Address, 0, len(list))
	for _, a := range list {
		out = append(out, *cloneAddress(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPrimary != out[j].IsPrimary {
			return out[i].IsPrimary
		}
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

// findAddressLocked returns the user's address or nil. Caller must hold s.mu lock.
func (s *memSvc) findAddressLocked(userID, addressID uuid.UUID) *service.Address {
	for _, a := range s.addresses[userID] {
		if a.ID == addressID {
			return a
		}
	}
	return nil
}

// GetAddress implements AddressService.GetAddress
func (s *memSvc) GetAddress(_ context.Context, userID, addressID uuid.UUID) (*service.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := s.findAddressLocked(userID, addressID)
	if a == nil {
		return nil, service.ErrAddressNotFound
	}
	return cloneAddress(a), nil
}

// clearPrimaryLocked unsets the user's primary address. Caller must hold s.mu write lock.
func (s *memSvc) clearPrimaryLocked(userID uuid.UUID) {
	for _, a := range s.addresses[userID] {
		a.IsPrimary = false
	}
}

// promoteLatestLocked makes the most recently updated address other than
// exclude primary. Caller must hold s.mu write lock.
func (s *memSvc) promoteLatestLocked(userID, exclude uuid.UUID) {
	var latest *service.Address
	for _, a := range s.addresses[userID] {
		if a.ID == exclude {
			continue
		}
		if latest == nil || newerFirst(a.UpdatedAt, a.ID, latest.UpdatedAt, latest.ID) {
			latest = a
		}
	}
	if latest != nil {
		latest.IsPrimary = true
		latest.UpdatedAt = s.tick()
	}
}

func applyAddress(a *service.Address, in *service.AddressInput) {
	a.Label = in.Label
	a.RecipientName = in.RecipientName
	a.Phone = in.Phone
	a.Street = in.Street
	a.Barangay = in.Barangay
	a.City = in.City
	a.Province = in.Province
	a.PostalCode = in.PostalCode
}

// CreateAddress implements AddressService.CreateAddress
func (s *memSvc) CreateAddress(_ context.Context, userID uuid.UUID, in service.AddressInput) (*service.Address, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.addresses[userID]
	if len(list) >= service.MaxAddressesPerUser {
		return nil, service.ErrAddressLimit
	}

	primary := in.IsPrimary || len(list) == 0
	if primary {
		s.clearPrimaryLocked(userID)
	}

	now := s.tick()
	a := &service.Address{
		ID:        uuid.New(),
		UserID:    userID,
		IsPrimary: primary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyAddress(a, &in)
	s.addresses[userID] = append(list, a)
	return cloneAddress(a), nil
}

// UpdateAddress implements AddressService.UpdateAddress
func (s *memSvc) UpdateAddress(
	_ context.Context,
	userID, addressID uuid.UUID,
	in service.AddressInput,
) (*service.Address, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findAddressLocked(userID, addressID)
	if a == nil {
		return nil, service.ErrAddressNotFound
	}

	demoted := a.IsPrimary && !in.IsPrimary
	if demoted && len(s.addresses[userID]) <= 1 {
		return nil, service.ErrLastPrimaryAddress
	}
	if in.IsPrimary && !a.IsPrimary {
		s.clearPrimaryLocked(userID)
	}

	applyAddress(a, &in)
	a.IsPrimary = in.IsPrimary
	a.UpdatedAt = s.tick()

	if demoted {
		s.promoteLatestLocked(userID, addressID)
	}
	return cloneAddress(a), nil
}

// DeleteAddress implements AddressService.DeleteAddress
func (s *memSvc) DeleteAddress(_ context.Context, userID, addressID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.addresses[userID]
	for i, a := range list {
		if a.ID != addressID {
			continue
		}
		s.addresses[userID] = append(list[:i:i], list[i+1:]...)
		if a.IsPrimary {
			s.promoteLatestLocked(userID, uuid.Nil)
		}
		return nil
	}
	return service.ErrAddressNotFound
}

// SetPrimaryAddress implements AddressService.SetPrimaryAddress
func (s *memSvc) SetPrimaryAddress(_ context.Context, userID, addressID uuid.UUID) (*service.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findAddressLocked(userID, addressID)
	if a == nil {
		return nil, service.ErrAddressNotFound
	}
	s.clearPrimaryLocked(userID)
	a.IsPrimary = true
	a.UpdatedAt = s.tick()
	return cloneAddress(a), nil
}
