package session

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lectureportal/internal/common"
	"github.com/dmitrijs2005/lectureportal/internal/dbx"
	"github.com/dmitrijs2005/lectureportal/internal/logging"
	"github.com/google/uuid"
)

const (
	KeyAccessToken  = "lecture_portal_access_token"
	KeyRefreshToken = "lecture_portal_refresh_token"
	KeyDeviceID     = "lecture_portal_device_id"
)

// Store holds the current session. It is safe for concurrent use; every
// mutation is written through to the metadata table before it becomes
// visible.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	logger logging.Logger

	accessToken  string
	refreshToken string
	deviceID     string
	roles        []string
	subject      string
	profile      *models.Profile

	onLogout []func()
}

// Open restores the stored session from db. A device id is generated and
// persisted on first use.
func Open(ctx context.Context, db *sql.DB, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Store{db: db, logger: logger}

	repo := metadata.NewSQLiteRepository(db)
	values, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	s.accessToken = values[KeyAccessToken]
	s.refreshToken = values[KeyRefreshToken]
	s.deviceID = values[KeyDeviceID]
	s.applyTokenMeta(ctx, s.accessToken)

	if s.deviceID == "" {
		s.deviceID = uuid.NewString()
		if err := repo.Set(ctx, KeyDeviceID, s.deviceID); err != nil {
			return nil, fmt.Errorf("store device id: %w", err)
		}
	}

	return s, nil
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

func (s *Store) DeviceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deviceID
}

func (s *Store) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// HasRole reports whether the session carries name; "ADMIN" and "ROLE_ADMIN"
// are equivalent.
func (s *Store) HasRole(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.roles, NormalizeRole(name))
}

func (s *Store) HasAnyRole(names ...string) bool {
	for _, name := range names {
		if s.HasRole(name) {
			return true
		}
	}
	return false
}

// Roles returns a copy of the normalized roles.
func (s *Store) Roles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.roles)
}

// PrimaryRole is the first role without its ROLE_ prefix, e.g. "TEACHER".
func (s *Store) PrimaryRole() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.roles) == 0 {
		return ""
	}
	return strings.TrimPrefix(s.roles[0], common.RolePrefix)
}

// Subject returns the token's sub claim.
func (s *Store) Subject() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subject, s.subject != ""
}

func (s *Store) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) SetProfile(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

// SetTokens replaces the token pair, re-derives roles and subject and drops
// the cached profile. deviceID replaces the stored device id unless empty.
func (s *Store) SetTokens(ctx context.Context, access, refresh, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deviceID == "" {
		deviceID = s.deviceID
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAccessToken, access); err != nil {
			return err
		}
		if err := repo.Set(ctx, KeyRefreshToken, refresh); err != nil {
			return err
		}
		return repo.Set(ctx, KeyDeviceID, deviceID)
	})
	if err != nil {
		return fmt.Errorf("store tokens: %w", err)
	}

	s.accessToken = access
	s.refreshToken = refresh
	s.deviceID = deviceID
	s.profile = nil
	s.applyTokenMeta(ctx, access)
	return nil
}

// SetDeviceID replaces the device id; empty ids are ignored.
func (s *Store) SetDeviceID(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := metadata.NewSQLiteRepository(s.db).Set(ctx, KeyDeviceID, deviceID); err != nil {
		return err
	}
	s.deviceID = deviceID
	return nil
}

// OnLogout registers fn to run after every Logout, including the ones
// triggered by a failed token refresh. fn runs without the store lock held.
func (s *Store) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Logout forgets the tokens, roles, subject and profile. The device id is
// kept so the next login is attributed to the same device.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.roles = nil
	s.subject = ""
	s.profile = nil
	observers := slices.Clone(s.onLogout)
	err := metadata.NewSQLiteRepository(s.db).Delete(ctx, KeyAccessToken, KeyRefreshToken)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}

	if err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

// applyTokenMeta must be called with mu held or before s is shared.
func (s *Store) applyTokenMeta(ctx context.Context, token string) {
	meta, err := decodeTokenMeta(token)
	if err != nil {
		s.logger.Warn(ctx, "access token payload could not be decoded", "error", err)
	}
	s.roles = meta.roles
	s.subject = meta.subject
}
