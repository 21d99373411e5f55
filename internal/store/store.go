package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/services"
	"go.uber.org/zap"
)

// SessionStore is the single source of truth for the running portal: the
// resident roster, the manager singleton, and the currently authenticated
// identity. All mutation funnels through ReplaceResident, AddResident and
// DeleteResident, each of which re-runs the authorization gate before
// touching state. The mutex exists because the HTTP layer serves requests
// in parallel; every entry point takes it for the full operation, identity
// refresh included.
type SessionStore struct {
	mu              sync.RWMutex
	logger          *zap.Logger
	manager         models.User
	residents       []models.User
	currentIdentity *models.User
}

func NewSessionStore(manager models.User, residents []models.User, logger *zap.Logger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	owned := make([]models.User, len(residents))
	for index := range residents {
		owned[index] = residents[index].Clone()
	}
	return &SessionStore{
		logger:    logger,
		manager:   manager.Clone(),
		residents: owned,
	}
}

// NewSeededStore builds a store from the static move-in data.
func NewSeededStore(logger *zap.Logger) *SessionStore {
	return NewSessionStore(models.ManagerUser(), models.SeedResidents(), logger)
}

// Authenticate matches email case-insensitively and password exactly. The
// requested role partitions the search: manager logins are checked against
// the singleton only, resident logins against the roster only. Success
// records the identity as current.
func (store *SessionStore) Authenticate(role string, email string, password string) (models.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(email))
	if role == models.RoleManager {
		if normalized == strings.ToLower(store.manager.Email) && password == store.manager.Password {
			identity := store.manager.Clone()
			store.currentIdentity = &identity
			return store.manager.Clone(), nil
		}
		return models.User{}, ErrInvalidCredentials
	}

	for index := range store.residents {
		if strings.ToLower(store.residents[index].Email) == normalized && store.residents[index].Password == password {
			identity := store.residents[index].Clone()
			store.currentIdentity = &identity
			return store.residents[index].Clone(), nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the current identity and nothing else.
func (store *SessionStore) Logout() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.currentIdentity = nil
}

func (store *SessionStore) CurrentIdentity() (models.User, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	if store.currentIdentity == nil {
		return models.User{}, false
	}
	return store.currentIdentity.Clone(), true
}

func (store *SessionStore) Manager() models.User {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.manager.Clone()
}

func (store *SessionStore) Residents() []models.User {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snapshot := make([]models.User, len(store.residents))
	for index := range store.residents {
		snapshot[index] = store.residents[index].Clone()
	}
	return snapshot
}

func (store *SessionStore) FindResident(id string) (models.User, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	for index := range store.residents {
		if store.residents[index].ID == id {
			return store.residents[index].Clone(), true
		}
	}
	return models.User{}, false
}

// ReplaceResident swaps in a whole replacement record at the same roster
// position. The gate runs first: a denied actor changes nothing and gets
// ErrAuthorizationDenied, which resident-facing callers ignore by policy
// (the denial is still logged for operators). An unknown id is a no-op.
// The stored role survives replacement; role is immutable for the lifetime
// of a user.
func (store *SessionStore) ReplaceResident(actor *models.User, updated models.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if !services.CanMutate(actor, updated) {
		store.logger.Warn("blocked unauthorized resident update",
			zap.String("actor_id", actorID(actor)),
			zap.String("target_id", updated.ID),
		)
		return ErrAuthorizationDenied
	}

	for index := range store.residents {
		if store.residents[index].ID == updated.ID {
			replacement := updated.Clone()
			replacement.Role = store.residents[index].Role
			store.residents[index] = replacement
			store.refreshIdentity()
			return nil
		}
	}
	return nil
}

// AddResident creates a resident with a fresh id and the move-in defaults
// and appends it to the roster. Only the manager may add residents.
func (store *SessionStore) AddResident(actor *models.User, name string, email string) (models.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if !services.IsManagerUser(actor) {
		store.logger.Warn("blocked unauthorized resident add",
			zap.String("actor_id", actorID(actor)),
		)
		return models.User{}, ErrAuthorizationDenied
	}

	resident := models.NewResident(uuid.NewString(), name, email)
	store.residents = append(store.residents, resident)
	store.refreshIdentity()
	return resident.Clone(), nil
}

// DeleteResident removes the matching roster entry. Only the manager may
// delete, and the manager singleton itself is protected: attempting to
// remove it fails loudly instead of silently.
func (store *SessionStore) DeleteResident(actor *models.User, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if !services.IsManagerUser(actor) {
		store.logger.Warn("blocked unauthorized resident delete",
			zap.String("actor_id", actorID(actor)),
			zap.String("target_id", id),
		)
		return ErrAuthorizationDenied
	}
	if id == store.manager.ID {
		return ErrProtectedRecord
	}

	filtered := make([]models.User, 0, len(store.residents))
	for _, resident := range store.residents {
		if resident.ID != id {
			filtered = append(filtered, resident)
		}
	}
	store.residents = filtered
	store.refreshIdentity()
	return nil
}

// refreshIdentity re-reads the current identity from the roster after any
// roster change, so a logged-in resident always observes their own fresh
// record, including edits made by the manager. If the identity's id is gone
// the stale copy is kept; the session simply outlives the record.
func (store *SessionStore) refreshIdentity() {
	if store.currentIdentity == nil || store.currentIdentity.Role != models.RoleResident {
		return
	}
	for index := range store.residents {
		if store.residents[index].ID == store.currentIdentity.ID {
			refreshed := store.residents[index].Clone()
			store.currentIdentity = &refreshed
			return
		}
	}
}

func actorID(actor *models.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
