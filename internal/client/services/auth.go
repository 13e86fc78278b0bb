package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"sync"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/client/session"
	"github.com/dmitrijs2005/lectureportal/internal/common"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"github.com/dmitrijs2005/lectureportal/internal/logging"
	"golang.org/x/sync/singleflight"
)

// LoginInput is the credential form. MFACode and ChallengeID are sent only
// when answering a challenge and must be given together.
type LoginInput struct {
	IdentityNo  string `validate:"required"`
	Password    string `validate:"required"`
	MFACode     string `validate:"required_with=ChallengeID"`
	ChallengeID string `validate:"required_with=MFACode"`
}

// LoginResult tells whether the login completed or needs a second factor.
type LoginResult struct {
	RequiresMFA bool
	Challenge   *models.MFAChallenge
}

type loginRequest struct {
	IdentityNo  string `json:"identityNo"`
	Password    string `json:"password"`
	DeviceID    string `json:"deviceId"`
	DeviceName  string `json:"deviceName"`
	MFACode     string `json:"mfaCode,omitempty"`
	ChallengeID string `json:"challengeId,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
	DeviceID     string `json:"deviceId"`
	DeviceName   string `json:"deviceName"`
}

// AuthService signs the user in and out and manages the account's devices
// and profile. It implements client.Session, so the authenticated API client
// refreshes through it.
//
// api must be a client without a session: login and refresh never go through
// the refresh-on-401 flow, and the remaining calls set their headers here.
type AuthService struct {
	api        *client.HTTPClient
	store      *session.Store
	logger     logging.Logger
	loc        *i18n.Localizer
	deviceName string

	profile singleflight.Group
	wg      sync.WaitGroup
}

func NewAuthService(api *client.HTTPClient, store *session.Store, logger logging.Logger, loc *i18n.Localizer) *AuthService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AuthService{
		api:        api,
		store:      store,
		logger:     logger,
		loc:        loc,
		deviceName: deviceName(loc, runtime.GOOS),
	}
}

func deviceName(loc *i18n.Localizer, goos string) string {
	switch goos {
	case "linux":
		return loc.T(i18n.MsgDeviceName, "Linux")
	case "darwin":
		return loc.T(i18n.MsgDeviceName, "macOS")
	case "windows":
		return loc.T(i18n.MsgDeviceName, "Windows")
	case "android":
		return loc.T(i18n.MsgDeviceName, "Android")
	case "ios":
		return loc.T(i18n.MsgDeviceName, "iOS")
	default:
		return "CLI Client"
	}
}

func (a *AuthService) DeviceName() string {
	return a.deviceName
}

func (a *AuthService) AccessToken() string {
	return a.store.AccessToken()
}

func (a *AuthService) RefreshToken() string {
	return a.store.RefreshToken()
}

// Login submits the credentials. A 202 answer means the server wants a
// second factor: the challenge is returned and nothing is stored. On success
// the tokens are stored and the profile is fetched in the background.
func (a *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if err := validate.Struct(in); err != nil {
		return LoginResult{}, validationError(err, func(field string) string {
			return a.loc.T(i18n.MsgInvalidInput, field)
		})
	}

	req := loginRequest{
		IdentityNo:  in.IdentityNo,
		Password:    in.Password,
		DeviceID:    a.store.DeviceID(),
		DeviceName:  a.deviceName,
		MFACode:     in.MFACode,
		ChallengeID: in.ChallengeID,
	}

	var raw json.RawMessage
	status, err := a.api.DoStatus(ctx, client.Request{Method: http.MethodPost, Path: "/api/auth/login", Body: req}, &raw)
	if err != nil {
		if client.StatusCode(err) == 0 {
			return LoginResult{}, describe(err, a.loc.T(i18n.MsgLoginFailed))
		}
		return LoginResult{}, &Error{
			Message: client.Message(err, a.loc.T(i18n.MsgCredentialsRejected)),
			Err:     fmt.Errorf("%w: %w", ErrAuthenticationFailed, err),
		}
	}

	if status == http.StatusAccepted {
		var challenge models.MFAChallenge
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &challenge); err != nil {
				return LoginResult{}, describe(fmt.Errorf("decode mfa challenge: %w", err), a.loc.T(i18n.MsgLoginFailed))
			}
		}
		return LoginResult{RequiresMFA: true, Challenge: &challenge}, nil
	}

	var pair models.TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return LoginResult{}, describe(fmt.Errorf("decode tokens: %w", err), a.loc.T(i18n.MsgLoginFailed))
	}
	if err := a.store.SetTokens(ctx, pair.AccessToken, pair.RefreshToken, pair.DeviceID); err != nil {
		return LoginResult{}, err
	}

	a.logger.Info(ctx, "signed in", "role", a.store.PrimaryRole())
	a.loadProfileAsync(ctx)
	return LoginResult{}, nil
}

func (a *AuthService) loadProfileAsync(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if _, err := a.EnsureProfile(ctx); err != nil {
			a.logger.Warn(ctx, "profile could not be loaded", "error", err)
		}
	}()
}

// RefreshTokens exchanges the stored refresh token for a new pair and
// returns the new access token. A rejected refresh ends the session.
func (a *AuthService) RefreshTokens(ctx context.Context) (string, error) {
	refresh := a.store.RefreshToken()
	if refresh == "" {
		return "", &Error{Message: a.loc.T(i18n.MsgNoRefreshToken), Err: ErrNoRefreshToken}
	}

	req := refreshRequest{
		RefreshToken: refresh,
		DeviceID:     a.store.DeviceID(),
		DeviceName:   a.deviceName,
	}

	var pair models.TokenPair
	if err := a.api.Post(ctx, "/api/auth/refresh", req, &pair); err != nil {
		if client.StatusCode(err) == 0 {
			return "", err
		}
		if logoutErr := a.store.Logout(ctx); logoutErr != nil {
			a.logger.Error(ctx, "logout after rejected refresh", "error", logoutErr)
		}
		return "", &Error{Message: a.loc.T(i18n.MsgSessionExpired), Err: fmt.Errorf("%w: %w", ErrSessionExpired, err)}
	}

	if err := a.store.SetTokens(ctx, pair.AccessToken, pair.RefreshToken, pair.DeviceID); err != nil {
		return "", err
	}
	a.loadProfileAsync(ctx)
	return pair.AccessToken, nil
}

func (a *AuthService) authHeaders() http.Header {
	h := http.Header{}
	if token := a.store.AccessToken(); token != "" {
		h.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	if device := a.store.DeviceID(); device != "" {
		h.Set(common.DeviceIDHeaderName, device)
	}
	return h
}

func (a *AuthService) notAuthenticated() error {
	return &Error{Message: a.loc.T(i18n.MsgNotAuthenticated), Err: ErrNotAuthenticated}
}

// FetchProfile loads the signed-in user's profile and caches it in the
// session. The cache is cleared when the fetch fails.
func (a *AuthService) FetchProfile(ctx context.Context) (*models.Profile, error) {
	token := a.store.AccessToken()
	if token == "" {
		a.store.SetProfile(nil)
		return nil, a.notAuthenticated()
	}

	var p models.Profile
	err := a.api.Do(ctx, client.Request{Method: http.MethodGet, Path: "/api/users/me", Header: a.authHeaders()}, &p)
	if err != nil {
		a.store.SetProfile(nil)
		return nil, describe(err, a.loc.T(i18n.MsgProfileUnavailable))
	}

	// Tokens replaced mid-flight belong to another session.
	if a.store.AccessToken() == token {
		a.store.SetProfile(&p)
	}
	return &p, nil
}

// EnsureProfile returns the cached profile, fetching it when absent.
// Concurrent callers share a single fetch.
func (a *AuthService) EnsureProfile(ctx context.Context) (*models.Profile, error) {
	if !a.store.IsAuthenticated() {
		return nil, a.notAuthenticated()
	}
	if p := a.store.Profile(); p != nil {
		return p, nil
	}
	v, err, _ := a.profile.Do("profile", func() (any, error) {
		return a.FetchProfile(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Profile), nil
}

func (a *AuthService) UpdateMFAPreference(ctx context.Context, enabled bool) (*models.Profile, error) {
	body := struct {
		Enabled bool `json:"enabled"`
	}{Enabled: enabled}

	err := a.api.Do(ctx, client.Request{Method: http.MethodPatch, Path: "/api/users/me/mfa", Body: body, Header: a.authHeaders()}, nil)
	if err != nil {
		return nil, describe(err, a.loc.T(i18n.MsgMFAUpdateFailed))
	}
	return a.FetchProfile(ctx)
}

func (a *AuthService) FetchSessions(ctx context.Context) ([]models.DeviceSession, error) {
	var sessions []models.DeviceSession
	err := a.api.Do(ctx, client.Request{Method: http.MethodGet, Path: "/api/auth/sessions", Header: a.authHeaders()}, &sessions)
	if err != nil {
		return nil, describe(err, a.loc.T(i18n.MsgSessionsUnavailable))
	}
	return sessions, nil
}

func (a *AuthService) RevokeSession(ctx context.Context, deviceID string) error {
	path := "/api/auth/sessions/" + url.PathEscape(deviceID)
	err := a.api.Do(ctx, client.Request{Method: http.MethodDelete, Path: path, Header: a.authHeaders()}, nil)
	if err != nil {
		return describe(err, a.loc.T(i18n.MsgRevokeFailed))
	}
	return nil
}

// Logout clears the session locally; the server is not contacted.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.store.Logout(ctx)
}

// Close waits for background profile fetches started by Login.
func (a *AuthService) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
