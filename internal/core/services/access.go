package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

// Ensure AccessGate implements the interface.
var _ driving.AccessGate = (*AccessGate)(nil)

// AccessGate checks passwords against the credential store and throttles
// repeated failures. Only failed attempts consume the limiter budget.
type AccessGate struct {
	creds   driven.CredentialStore
	limiter *rate.Limiter
	now     func() time.Time
}

// NewAccessGate creates an access gate. A non-positive MaxFailedLogins
// disables throttling.
func NewAccessGate(creds driven.CredentialStore, settings domain.AccessSettings) *AccessGate {
	limit := rate.Inf
	if settings.MaxFailedLogins > 0 && settings.Cooldown > 0 {
		limit = rate.Every(settings.Cooldown)
	}
	return &AccessGate{
		creds:   creds,
		limiter: rate.NewLimiter(limit, settings.MaxFailedLogins),
		now:     time.Now,
	}
}

// Login authenticates username and starts a session.
func (g *AccessGate) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	now := g.now()

	if g.limiter.Limit() != rate.Inf && g.limiter.TokensAt(now) < 1 {
		logger.Event("login", "user", username, "result", "throttled")
		return nil, domain.ErrRateLimited
	}

	cred, err := g.creds.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, g.fail(now, username)
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !CheckPassword(cred.PasswordHash, password) {
		return nil, g.fail(now, username)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		User:      cred.User,
		StartedAt: now,
	}
	logger.Event("login", "user", username, "role", cred.User.Role, "session", session.ID)
	return session, nil
}

func (g *AccessGate) fail(now time.Time, username string) error {
	g.limiter.AllowN(now, 1)
	logger.Event("login", "user", username, "result", "denied")
	return domain.ErrInvalidCredentials
}

// Users lists every account in the credential store.
func (g *AccessGate) Users(ctx context.Context) ([]domain.User, error) {
	users, err := g.creds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Register hashes password and stores the account.
func (g *AccessGate) Register(ctx context.Context, user domain.User, password string) error {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if !user.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, user.Role)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := g.creds.Put(ctx, domain.Credential{User: user, PasswordHash: hash}); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// HashPassword generates a bcrypt hash of password.
func (g *AccessGate) HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	return HashPassword(password)
}

// HashPassword generates a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
