// Package session tracks the active identity: nobody, a guest, or an
// authenticated account. The session is persisted as a snapshot that is
// reconciled against the accounts collection on every load, never trusted
// verbatim.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/astrogid/astrogid/internal/errs"
	"github.com/astrogid/astrogid/internal/logging"
	"github.com/astrogid/astrogid/internal/model"
	"github.com/astrogid/astrogid/internal/repository"
	"github.com/astrogid/astrogid/internal/storage"
)

// State enumerates the session states.
type State int

const (
	Anonymous State = iota
	Guest
	Authenticated
)

func (s State) String() string {
	switch s {
	case Guest:
		return "guest"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is the read-only view handed to callers.
type Session struct {
	State     State
	AccountID string
	Name      string
	Email     string
	Avatar    string
	Bio       string
}

// Manager owns the session state machine.
type Manager struct {
	repo  *repository.Repository
	store *storage.Store
	log   logging.Logger

	state   State
	current model.SessionSnapshot
}

// NewManager returns a Manager in the Anonymous state. Call Load to restore
// the persisted session.
func NewManager(repo *repository.Repository, store *storage.Store, log logging.Logger) *Manager {
	return &Manager{repo: repo, store: store, log: log}
}

// Load computes the initial state from the persisted snapshot. An absent or
// unreadable snapshot yields Anonymous. A guest snapshot is used verbatim
// (guests have no backing account). For anything else the account id is
// looked up: a hit replaces the snapshot's display fields with the live
// record; a miss keeps the stale fields as a degraded fallback, since the
// account was deleted out from under the session.
func (m *Manager) Load(ctx context.Context) error {
	m.state, m.current = Anonymous, model.SessionSnapshot{}

	raw, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		m.log.Warn(ctx, "session snapshot unreadable, starting anonymous", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var snap model.SessionSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		m.log.Warn(ctx, "session snapshot corrupt, starting anonymous", "error", err)
		return nil
	}

	if snap.Guest {
		m.state, m.current = Guest, snap
		return nil
	}

	if acc, ok := m.repo.AccountByID(snap.AccountID); ok {
		m.state, m.current = Authenticated, snapshotOf(acc)
	} else {
		m.log.Warn(ctx, "session account missing, keeping stale snapshot", "accountId", snap.AccountID)
		m.state, m.current = Authenticated, snap
	}
	return nil
}

// Current returns the session view.
func (m *Manager) Current() Session {
	return Session{
		State:     m.state,
		AccountID: m.current.AccountID,
		Name:      m.current.Name,
		Email:     m.current.Email,
		Avatar:    m.current.Avatar,
		Bio:       m.current.Bio,
	}
}

// Register creates a new account and signs it in. The email must not belong
// to any existing account, compared case-insensitively.
func (m *Manager) Register(ctx context.Context, name, email, secret string) (model.Account, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || secret == "" {
		return model.Account{}, fmt.Errorf("%w: name, email and password are required", errs.ErrValidation)
	}
	if _, ok := m.repo.AccountByEmail(email); ok {
		return model.Account{}, errs.ErrDuplicateEmail
	}

	salt, err := newSalt()
	if err != nil {
		return model.Account{}, err
	}
	acc := model.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		SecretHash:   hashSecret(secret, salt),
		SecretSalt:   salt,
		Avatar:       model.DefaultAvatar,
		RegisteredAt: time.Now().UTC(),
	}
	if err := m.repo.AddAccount(ctx, acc); err != nil {
		return model.Account{}, err
	}

	m.state, m.current = Authenticated, snapshotOf(acc)
	if err := m.persist(ctx); err != nil {
		return model.Account{}, err
	}
	m.log.Info(ctx, "account registered", "accountId", acc.ID)
	return acc, nil
}

// Login authenticates by email and secret. The error distinguishes an
// unknown email from a wrong secret (both match ErrInvalidCredentials); on
// failure the session is left untouched.
func (m *Manager) Login(ctx context.Context, email, secret string) (model.Account, error) {
	acc, ok := m.repo.AccountByEmail(normalizeEmail(email))
	if !ok {
		return model.Account{}, errs.ErrEmailNotRegistered
	}
	if !verifySecret(secret, acc.SecretSalt, acc.SecretHash) {
		return model.Account{}, errs.ErrWrongSecret
	}

	m.state, m.current = Authenticated, snapshotOf(acc)
	if err := m.persist(ctx); err != nil {
		return model.Account{}, err
	}
	m.log.Info(ctx, "login", "accountId", acc.ID)
	return acc, nil
}

// QuickLogin signs in the account with the given email without checking the
// secret. Intended for trusted local tooling only.
func (m *Manager) QuickLogin(ctx context.Context, email string) (model.Account, error) {
	acc, ok := m.repo.AccountByEmail(normalizeEmail(email))
	if !ok {
		return model.Account{}, errs.ErrNotFound
	}
	m.state, m.current = Authenticated, snapshotOf(acc)
	if err := m.persist(ctx); err != nil {
		return model.Account{}, err
	}
	m.log.Info(ctx, "quick login", "accountId", acc.ID)
	return acc, nil
}

// EnterGuest switches to the guest identity unconditionally.
func (m *Manager) EnterGuest(ctx context.Context) error {
	m.state, m.current = Guest, model.GuestSnapshot()
	return m.persist(ctx)
}

// Logout returns to Anonymous and removes the persisted snapshot.
func (m *Manager) Logout(ctx context.Context) error {
	m.state, m.current = Anonymous, model.SessionSnapshot{}
	return m.persist(ctx)
}

// UpdateProfile edits the signed-in account. A nil field is left unchanged.
// When the avatar reference changes, the new reference is propagated to
// every content item owned by the account, across all three collections.
func (m *Manager) UpdateProfile(ctx context.Context, bio, avatar *string) error {
	if m.state != Authenticated {
		return errs.ErrNotAuthenticated
	}
	acc, ok := m.repo.AccountByID(m.current.AccountID)
	if !ok {
		return fmt.Errorf("%w: account %s", errs.ErrNotFound, m.current.AccountID)
	}

	avatarChanged := false
	if bio != nil {
		acc.Bio = *bio
	}
	if avatar != nil && *avatar != acc.Avatar {
		acc.Avatar = *avatar
		avatarChanged = true
	}

	if err := m.repo.SaveAccount(ctx, acc); err != nil {
		return err
	}
	if avatarChanged {
		if err := m.repo.SetOwnerAvatar(ctx, acc.ID, acc.Avatar); err != nil {
			return err
		}
	}

	m.current = snapshotOf(acc)
	return m.persist(ctx)
}

// persist writes the current session to the store. For authenticated
// sessions the snapshot is rebuilt from the live account record whenever one
// exists, so the snapshot can never drift ahead of or behind the accounts
// collection.
func (m *Manager) persist(ctx context.Context) error {
	switch m.state {
	case Anonymous:
		return m.store.Delete(ctx, storage.KeySession)
	case Authenticated:
		if acc, ok := m.repo.AccountByID(m.current.AccountID); ok {
			m.current = snapshotOf(acc)
		}
	}
	raw, err := json.Marshal(m.current)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storage.KeySession, raw)
}

func snapshotOf(acc model.Account) model.SessionSnapshot {
	return model.SessionSnapshot{
		AccountID: acc.ID,
		Name:      acc.Name,
		Email:     acc.Email,
		Avatar:    acc.Avatar,
		Bio:       acc.Bio,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
