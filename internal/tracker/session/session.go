// Package session keeps the signed-in user's identity between CLI runs. The
// identity is a signed token stored in the local metadata table.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/tracker/repositories/metadata"
)

const tokenKey = "session_token"

// Manager stores, reads and clears the session token.
type Manager struct {
	meta   metadata.Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(meta metadata.Repository, secret string, ttl time.Duration) *Manager {
	return &Manager{meta: meta, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Login starts a session for userID, replacing any previous one.
func (m *Manager) Login(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required: %w", common.ErrValidation)
	}
	token, err := GenerateToken(userID, m.secret, m.ttl, m.now())
	if err != nil {
		return err
	}
	if err := m.meta.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Logout forgets the current session.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.meta.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the signed-in user id. It returns common.ErrNoIdentity
// when nobody is signed in and common.ErrTokenExpired (after clearing the
// stale token) when the session has lapsed.
func (m *Manager) CurrentUser(ctx context.Context) (string, error) {
	token, err := m.meta.Get(ctx, tokenKey)
	if errors.Is(err, common.ErrNotFound) {
		return "", common.ErrNoIdentity
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	userID, err := GetUserIDFromToken(token, m.secret, m.now())
	if errors.Is(err, common.ErrTokenExpired) {
		_ = m.meta.Delete(ctx, tokenKey)
		return "", err
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}
