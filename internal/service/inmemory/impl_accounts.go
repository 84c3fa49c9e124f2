package inmemory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/service"
)

// Register implements AccountService.Register
func (s *memSvc) Register(_ context.Context, in service.RegisterInput) (*service.User, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.createUserLocked(in, hash, service.RoleCustomer)
	if err != nil {
		return nil, err
	}
	return cloneUser(user), nil
}

// createUserLocked stores a new user. Caller must hold s.mu write lock.
func (s *memSvc) createUserLocked(in service.RegisterInput, hash string, role service.Role) (*service.User, error) {
	if _, ok := s.emails[in.Email]; ok {
		return nil, service.ErrEmailTaken
	}

	now := s.tick()
	user := &service.User{
		ID:                uuid.New(),
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Phone:             in.Phone,
		PasswordHash:      hash,
		Role:              role,
		Status:            service.UserStatusActive,
		PasswordChangedAt: now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.users[user.ID] = user
	s.emails[user.Email] = user.ID
	return user, nil
}

// Authenticate implements AccountService.Authenticate
func (s *memSvc) Authenticate(_ context.Context, email, password string) (*service.User, error) {
	normalized, err := service.NormalizeEmail(email)
	if err != nil {
		auth.CompareDummy(password)
		return nil, service.ErrInvalidCredentials
	}

	s.mu.RLock()
	var user *service.User
	if id, ok := s.emails[normalized]; ok {
		user = cloneUser(s.users[id])
	}
	s.mu.RUnlock()

	if user == nil {
		auth.CompareDummy(password)
		return nil, service.ErrInvalidCredentials
	}

	ok, err := auth.ComparePassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, service.ErrInvalidCredentials
	}
	if user.Status == service.UserStatusSuspended {
		return nil, service.ErrAccountSuspended
	}
	return user, nil
}

// GetUser implements AccountService.GetUser
func (s *memSvc) GetUser(_ context.Context, id uuid.UUID) (*service.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// UpdateProfile implements AccountService.UpdateProfile
func (s *memSvc) UpdateProfile(_ context.Context, userID uuid.UUID, in service.ProfileInput) (*service.User, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Phone = in.Phone
	user.UpdatedAt = s.tick()
	return cloneUser(user), nil
}

// ChangePassword implements AccountService.ChangePassword
func (s *memSvc) ChangePassword(_ context.Context, userID uuid.UUID, current, next string) (*service.User, error) {
	s.mu.RLock()
	user, ok := s.users[userID]
	var hash string
	if ok {
		hash = user.PasswordHash
	}
	s.mu.RUnlock()
	if !ok {
		return nil, service.ErrUserNotFound
	}

	match, err := auth.ComparePassword(hash, current)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, service.ErrInvalidCredentials
	}
	if err := service.ValidatePassword(next); err != nil {
		return nil, err
	}
	if next == current {
		return nil, service.ErrSamePassword
	}

	newHash, err := auth.HashPassword(next)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok = s.users[userID]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	now := s.tick()
	user.PasswordHash = newHash
	user.PasswordChangedAt = now
	user.UpdatedAt = now
	return cloneUser(user), nil
}

// EnsureAdmin implements AccountService.EnsureAdmin
func (s *memSvc) EnsureAdmin(_ context.Context, in service.RegisterInput) (*service.User, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[in.Email]
	if !ok {
		user, err := s.createUserLocked(in, hash, service.RoleAdmin)
		if err != nil {
			return nil, err
		}
		slog.Info("Administrator created", "user_id", user.ID)
		return cloneUser(user), nil
	}

	user := s.users[id]
	now := s.tick()
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Phone = in.Phone
	user.Role = service.RoleAdmin
	user.Status = service.UserStatusActive
	user.PasswordHash = hash
	user.PasswordChangedAt = now
	user.UpdatedAt = now

	slog.Info("Existing user promoted to administrator", "user_id", user.ID)
	return cloneUser(user), nil
}
