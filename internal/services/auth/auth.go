package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"weather-dashboard/internal/common"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/storage"
	"weather-dashboard/pkg/logger"
)

// AuthService is the mocked session layer. Login and register simulate a
// delay and then unconditionally succeed; no credential validation happens.
// The session is a single persisted User record, and its presence is what
// defines an authenticated session.
type AuthService struct {
	store storage.Store
	l     *logger.Logger
	delay time.Duration
}

func NewAuthService(store storage.Store, l *logger.Logger, delay time.Duration) *AuthService {
	return &AuthService{
		store: store,
		l:     l,
		delay: delay,
	}
}

// Login synthesizes a user for the email, deriving the display name from the
// local part. The password is accepted as-is.
func (s *AuthService) Login(ctx context.Context, email, _ string) (*models.User, error) {
	if err := common.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  localPart(email),
	}
	s.persistSession(user)

	s.l.Info("user logged in", map[string]any{"user": user.ID})
	return user, nil
}

// Register synthesizes a user with the given name.
func (s *AuthService) Register(ctx context.Context, name, email, _ string) (*models.User, error) {
	if err := common.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	s.persistSession(user)

	s.l.Info("user registered", map[string]any{"user": user.ID})
	return user, nil
}

// Logout erases the persisted session record.
func (s *AuthService) Logout() error {
	return s.store.Delete(storage.KeySessionUser)
}

// CurrentUser returns the persisted session user, or nil when no session
// exists. A malformed record counts as no session.
func (s *AuthService) CurrentUser() *models.User {
	var user models.User
	if err := storage.ReadJSON(s.store, storage.KeySessionUser, &user); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.l.Warning("treating unreadable session as absent", map[string]any{"err": err.Error()})
		}
		return nil
	}
	return &user
}

// IsAuthenticated reports whether a session record is present.
func (s *AuthService) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *AuthService) persistSession(user *models.User) {
	if err := storage.WriteJSON(s.store, storage.KeySessionUser, user); err != nil {
		s.l.Warning("failed to persist session", map[string]any{"err": err.Error()})
	}
}

func localPart(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}
