package user

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/logger"
)

// Service owns the single "current user" cache and keeps it synchronized
// with the remote identity store. There is exactly one live record per
// service; callers share it by reference and never hold a second copy.
//
// Load, Save and Delete are serialized against each other: the cache is
// never mutated by two remote operations at once, and readers observe the
// prior state until an operation completes.
type Service struct {
	client  *apiclient.Client
	context *Context
	logger  *slog.Logger

	// opMu serializes remote operations against the cached instance.
	opMu sync.Mutex

	// curMu guards lazy construction of the cached instance.
	curMu   sync.Mutex
	current *User
}

// Option configures the service during construction.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a single-user service over the given API client and
// durable user context.
func NewService(client *apiclient.Client, userCtx *Context, opts ...Option) *Service {
	s := &Service{
		client:  client,
		context: userCtx,
		logger:  logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the cached user record, creating it and restoring it from
// durable storage on first access. A restore failure is logged and yields an
// anonymous record rather than an error: a corrupt slot must not brick the
// SDK.
func (s *Service) Current() *User {
	s.curMu.Lock()
	defer s.curMu.Unlock()

	if s.current == nil {
		u := New()
		u.service = s
		if _, err := s.context.Load(context.Background(), u); err != nil {
			s.logger.Error("failed to restore persisted user",
				logger.Error(err),
				logger.Component("user"),
			)
		}
		s.current = u
	}
	return s.current
}

// userPayload is the backend's canonical representation of a user.
type userPayload struct {
	UID     string  `json:"uid"`
	Details Details `json:"details"`
	Social  Social  `json:"social"`
}

// Load fetches the canonical state of a user from the backend and applies
// it to the cached record in place. With no id argument it refreshes the
// already-known current user and fails with ErrNoCurrentUser while the
// cache is still anonymous.
func (s *Service) Load(ctx context.Context, id ...string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	u := s.Current()

	target := u.ID()
	if len(id) > 0 && id[0] != "" {
		target = id[0]
	}
	if target == "" {
		return ErrNoCurrentUser
	}

	var resp userPayload
	if err := s.client.Get(ctx, "/users/"+target, &resp); err != nil {
		return err
	}

	s.apply(u, target, resp)
	return nil
}

// Save submits the API-serialized form of the current record and merges the
// backend's authoritative response back into the cache. An anonymous but
// populated record is created remotely and receives its server-assigned id
// here. On failure the cache is left exactly as it was.
func (s *Service) Save(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	u := s.Current()
	body := u.SerializeForAPI()

	var resp userPayload
	if u.IsAnonymous() {
		if err := s.client.Post(ctx, "/users", body, &resp); err != nil {
			return err
		}
	} else {
		if err := s.client.Patch(ctx, "/users/"+u.ID(), body, &resp); err != nil {
			return err
		}
	}

	s.apply(u, u.ID(), resp)
	return nil
}

// Delete requests remote deletion of the current user, then clears the
// cache and durable storage even when the remote call failed: a user who
// asked for deletion must not keep a local identity. The remote error, if
// any, is still returned.
func (s *Service) Delete(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	u := s.Current()
	if u.IsAnonymous() {
		return ErrNoCurrentUser
	}

	remoteErr := s.client.Delete(ctx, "/users/"+u.ID(), nil)

	u.Clear()
	if err := s.context.Unstore(ctx); err != nil {
		s.logger.Error("failed to evict persisted user after delete",
			logger.Error(err),
			logger.Component("user"),
		)
	}

	return remoteErr
}

// Store persists the current record through the user context.
func (s *Service) Store(ctx context.Context) error {
	return s.context.Store(ctx, s.Current())
}

// Unstore evicts the persisted record.
func (s *Service) Unstore(ctx context.Context) error {
	return s.context.Unstore(ctx)
}

// apply merges a backend payload into the cached record. The backend owns
// id, details and social; the local data bag is untouched.
func (s *Service) apply(u *User, fallbackID string, resp userPayload) {
	id := resp.UID
	if id == "" {
		id = fallbackID
	}
	u.SetID(id)

	details := resp.Details
	// The backend never echoes the password; keep whatever the caller set.
	details.Password = u.Details().Password
	u.SetDetails(details)

	for name, p := range resp.Social {
		u.SetSocialProvider(name, p)
	}

	u.SetFresh(false)
}
