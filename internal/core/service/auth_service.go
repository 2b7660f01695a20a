package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminCredentials is the fixed credential pair accepted by the admin login
// path. This is a mock scheme: no hashing, no stored user records.
type AdminCredentials struct {
	Email    string
	Password string
}

type AuthService struct {
	sessions port.SessionRepository
	admin    AdminCredentials
}

func NewAuthService(sessions port.SessionRepository, admin AdminCredentials) *AuthService {
	return &AuthService{sessions: sessions, admin: admin}
}

// EnsureSession returns the session for the token, minting a fresh anonymous
// session when the token is empty or unknown. A session exists before login
// so an anonymous visitor can carry a cart.
func (s *AuthService) EnsureSession(ctx context.Context, token string) (domain.Session, error) {
	if token != "" {
		session, err := s.sessions.Get(ctx, token)
		if err != nil {
			return domain.Session{}, errors.Wrap(err, "get session")
		}
		if session != nil {
			return *session, nil
		}
	}

	session := domain.Session{Token: uuid.NewString()}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, errors.Wrap(err, "save session")
	}
	return session, nil
}

// Login attaches an identity to the session. The admin path requires an
// exact match against the configured credential pair; the user path accepts
// any non-empty email and password and names the identity after the email's
// local part. On failure the session's identity is left unset.
func (s *AuthService) Login(ctx context.Context, session domain.Session, email, password string, adminLogin bool) (*domain.Identity, error) {
	var identity domain.Identity

	switch {
	case adminLogin && email == s.admin.Email && password == s.admin.Password:
		identity = domain.Identity{
			ID:    "admin-1",
			Name:  "Admin User",
			Email: s.admin.Email,
			Role:  domain.RoleAdmin,
		}
	case !adminLogin && email != "" && password != "":
		identity = domain.Identity{
			ID:    userIDFor(email),
			Name:  strings.SplitN(email, "@", 2)[0],
			Email: email,
			Role:  domain.RoleUser,
		}
	default:
		return nil, ErrInvalidCredentials
	}

	session.Identity = &identity
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}
	return &identity, nil
}

// Register installs a user identity when all three fields are non-empty.
func (s *AuthService) Register(ctx context.Context, session domain.Session, name, email, password string) (*domain.Identity, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	identity := domain.Identity{
		ID:    userIDFor(email),
		Name:  name,
		Email: email,
		Role:  domain.RoleUser,
	}

	session.Identity = &identity
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}
	return &identity, nil
}

// Logout unconditionally detaches the identity. The session itself survives
// so the visitor keeps their token (and an empty role-gated surface).
func (s *AuthService) Logout(ctx context.Context, session domain.Session) error {
	session.Identity = nil
	if err := s.sessions.Save(ctx, session); err != nil {
		return errors.Wrap(err, "save session")
	}
	return nil
}

// Authorize returns a typed allow/deny decision for the capability instead
// of leaving role branching to callers.
func (s *AuthService) Authorize(identity *domain.Identity, capability domain.Capability) domain.Decision {
	if identity == nil {
		return domain.Deny("authentication required")
	}

	switch capability {
	case domain.CapViewOrders:
		return domain.Allow()
	case domain.CapManageBooks, domain.CapManageOrders:
		if identity.Role == domain.RoleAdmin {
			return domain.Allow()
		}
		return domain.Deny("admin role required")
	}
	return domain.Deny("unknown capability")
}

// userIDFor derives a stable identifier from the email's local part so the
// same visitor gets the same order history across logins. There are no
// stored accounts to collide with in this mock scheme.
func userIDFor(email string) string {
	return "user-" + strings.ToLower(strings.SplitN(email, "@", 2)[0])
}
