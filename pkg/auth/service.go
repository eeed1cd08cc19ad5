package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/cloudkit/pkg/emitter"
	"github.com/dmitrymomot/cloudkit/pkg/logger"
	"github.com/dmitrymomot/cloudkit/pkg/session"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

// SocialAuthenticator is implemented by the social providers in addition to
// Provider. AuthURL produces the URL the application opens in the platform
// browser together with the CSRF state embedded in it.
type SocialAuthenticator interface {
	Provider

	AuthURL() (url, state string)
}

// Service is the authentication controller. It dispatches login attempts to
// the registered providers, owns the session token through the two-tier
// token context, and keeps the current user in sync on login and logout.
//
// At most one login runs at a time; a second concurrent attempt fails fast
// with ErrLoginInProgress instead of queueing behind the first.
type Service struct {
	providers map[string]Provider
	tokens    *session.CombinedTokenContext
	users     *user.Service
	events    *emitter.Emitter
	logger    *slog.Logger

	mu            sync.Mutex
	loginInFlight bool
}

// ServiceOption configures the controller during construction.
type ServiceOption func(*Service)

// WithProvider registers an authentication provider under its own id,
// replacing any previously registered provider with the same id.
func WithProvider(p Provider) ServiceOption {
	return func(s *Service) {
		if p != nil {
			s.providers[p.ID()] = p
		}
	}
}

// WithServiceLogger sets a custom logger.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates the controller over the given token context, user
// service and event emitter. Providers are registered with WithProvider.
func NewService(tokens *session.CombinedTokenContext, users *user.Service, events *emitter.Emitter, opts ...ServiceOption) *Service {
	s := &Service{
		providers: make(map[string]Provider),
		tokens:    tokens,
		users:     users,
		events:    events,
		logger:    logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provider returns the registered provider for the id.
func (s *Service) Provider(id string) (Provider, bool) {
	p, ok := s.providers[id]
	return p, ok
}

// IsAuthenticated reports whether a session token is present in either
// tier. It does not verify the token with the backend; an expired token
// surfaces as an authentication error on the next API call instead.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Login authenticates with the named provider, stores the issued session
// token honoring opts.Remember (nil opts remembers), hydrates and persists
// the current user and publishes EventLogin. The returned record is the
// shared cached instance.
func (s *Service) Login(ctx context.Context, providerID string, credentials any, opts *LoginOptions) (*user.User, error) {
	p, ok := s.providers[providerID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, providerID)
	}

	if !s.beginLogin() {
		return nil, ErrLoginInProgress
	}
	defer s.endLogin()

	res, err := p.Authenticate(ctx, credentials, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerID, errors.Join(ErrAuthenticationFailed, err))
	}

	var storeOpts []session.StoreOption
	if opts != nil && !opts.Remember {
		storeOpts = append(storeOpts, session.Temporary())
	}
	if err := s.tokens.Store(ctx, res.Token, storeOpts...); err != nil {
		return nil, fmt.Errorf("store session token: %w", err)
	}

	u := s.users.Current()
	s.hydrate(u, res)
	if err := s.users.Store(ctx); err != nil {
		// The session is established; a persistence fault only costs the
		// user cache surviving a restart.
		s.logger.Error("failed to persist user after login",
			logger.Error(err),
			logger.Provider(providerID),
			logger.Component("auth"),
		)
	}

	s.logger.Info("user logged in",
		logger.UserID(u.ID()),
		logger.Provider(providerID),
		logger.Component("auth"),
	)
	s.events.Emit(EventLogin, u.SerializeForAPI())
	return u, nil
}

// Logout clears both token tiers and the current user, locally only. It
// never fails and is safe to call when nobody is logged in; storage faults
// are logged and swallowed so logout always leaves the client signed out.
func (s *Service) Logout(ctx context.Context) {
	if err := s.tokens.Delete(ctx); err != nil {
		s.logger.Error("failed to clear session tokens on logout",
			logger.Error(err),
			logger.Component("auth"),
		)
	}

	s.users.Current().Clear()
	if err := s.users.Unstore(ctx); err != nil {
		s.logger.Error("failed to evict persisted user on logout",
			logger.Error(err),
			logger.Component("auth"),
		)
	}

	s.events.Emit(EventLogout, nil)
}

// Signup registers a new account through the basic provider. It does not
// log the new account in; call Login afterwards.
func (s *Service) Signup(ctx context.Context, details user.Details) error {
	p, err := s.basic()
	if err != nil {
		return err
	}
	if err := p.Signup(ctx, details); err != nil {
		return err
	}

	details.Password = ""
	s.events.Emit(EventSignup, details)
	return nil
}

// RequestPasswordReset asks the backend to email a reset code to the
// account holder.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	p, err := s.basic()
	if err != nil {
		return err
	}
	if err := p.RequestPasswordReset(ctx, email); err != nil {
		return err
	}

	s.events.Emit(EventPasswordResetRequested, nil)
	return nil
}

// ConfirmPasswordReset redeems an emailed reset code for a new password.
func (s *Service) ConfirmPasswordReset(ctx context.Context, code int, newPassword string) error {
	p, err := s.basic()
	if err != nil {
		return err
	}
	if err := p.ConfirmPasswordReset(ctx, code, newPassword); err != nil {
		return err
	}

	s.events.Emit(EventPasswordResetConfirmed, nil)
	return nil
}

func (s *Service) basic() (BasicProvider, error) {
	p, ok := s.providers[ProviderBasic]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, ProviderBasic)
	}
	bp, ok := p.(BasicProvider)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not support account management", ErrUnknownProvider, ProviderBasic)
	}
	return bp, nil
}

// hydrate replaces the cached record's identity with the provider result.
// The password never reaches the cache, and the local data bag survives.
func (s *Service) hydrate(u *user.User, res *ProviderResult) {
	u.SetID(res.UserID)

	details := res.Details
	details.Password = ""
	u.SetDetails(details)

	for name, p := range res.Social {
		u.SetSocialProvider(name, p)
	}

	u.SetFresh(false)
}

func (s *Service) beginLogin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loginInFlight {
		return false
	}
	s.loginInFlight = true
	return true
}

func (s *Service) endLogin() {
	s.mu.Lock()
	s.loginInFlight = false
	s.mu.Unlock()
}
