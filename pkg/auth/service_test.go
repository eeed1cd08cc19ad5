package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/auth"
	"github.com/dmitrymomot/cloudkit/pkg/emitter"
	"github.com/dmitrymomot/cloudkit/pkg/session"
	"github.com/dmitrymomot/cloudkit/pkg/storage"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

// fakeProvider lets tests script the outcome of an authentication exchange.
type fakeProvider struct {
	id      string
	result  *auth.ProviderResult
	err     error
	release chan struct{} // when set, Authenticate blocks until closed
	entered chan struct{} // when set, closed as Authenticate starts

	mu    sync.Mutex
	calls int
}

func (p *fakeProvider) ID() string { return p.id }

func (p *fakeProvider) Authenticate(ctx context.Context, credentials any, opts *auth.LoginOptions) (*auth.ProviderResult, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.entered != nil {
		close(p.entered)
	}
	if p.release != nil {
		<-p.release
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

// fakeBasicProvider records account management calls.
type fakeBasicProvider struct {
	fakeProvider

	signedUp  []user.Details
	requested []string
	confirmed []int
}

func (p *fakeBasicProvider) Signup(ctx context.Context, details user.Details) error {
	p.signedUp = append(p.signedUp, details)
	return nil
}

func (p *fakeBasicProvider) RequestPasswordReset(ctx context.Context, email string) error {
	p.requested = append(p.requested, email)
	return nil
}

func (p *fakeBasicProvider) ConfirmPasswordReset(ctx context.Context, code int, newPassword string) error {
	p.confirmed = append(p.confirmed, code)
	return nil
}

type harness struct {
	svc      *auth.Service
	events   *emitter.Emitter
	users    *user.Service
	durable  *storage.MemoryStrategy
	ephem    *storage.MemoryStrategy
	tokens   *session.CombinedTokenContext
	userStor *storage.MemoryStrategy
}

func newHarness(t *testing.T, providers ...auth.Provider) *harness {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	durable := storage.NewMemoryStrategy()
	ephem := storage.NewMemoryStrategy()
	tokens := session.NewCombinedTokenContext(
		session.NewTokenContext(storage.New[string](durable), "auth_app1"),
		session.NewTokenContext(storage.New[string](ephem), "auth_app1"),
	)

	userStor := storage.NewMemoryStrategy()
	userCtx := user.NewContext(storage.New[user.StoredUser](userStor), "user_app1")
	users := user.NewService(apiclient.New(srv.URL), userCtx)

	events := emitter.New()

	opts := make([]auth.ServiceOption, 0, len(providers))
	for _, p := range providers {
		opts = append(opts, auth.WithProvider(p))
	}
	svc := auth.NewService(tokens, users, events, opts...)

	return &harness{
		svc:      svc,
		events:   events,
		users:    users,
		durable:  durable,
		ephem:    ephem,
		tokens:   tokens,
		userStor: userStor,
	}
}

func okResult() *auth.ProviderResult {
	return &auth.ProviderResult{
		Token:  "tok-1",
		UserID: "u1",
		Details: user.Details{
			Email:    "a@b.com",
			Name:     "Alice",
			Password: "leaked",
		},
		Social: user.Social{
			"github": {UID: "gh-1", Data: user.SocialDetails{Username: "alice"}},
		},
	}
}

func TestServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown provider", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.svc.Login(ctx, "nope", nil, nil)
		assert.ErrorIs(t, err, auth.ErrUnknownProvider)
	})

	t.Run("success hydrates, persists and emits", func(t *testing.T) {
		h := newHarness(t, &fakeProvider{id: "fake", result: okResult()})

		var payloads []any
		h.events.On(auth.EventLogin, func(p any) { payloads = append(payloads, p) })

		u, err := h.svc.Login(ctx, "fake", nil, nil)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Same(t, h.users.Current(), u)

		assert.Equal(t, "u1", u.ID())
		assert.Equal(t, "a@b.com", u.Details().Email)
		assert.Empty(t, u.Details().Password, "password must not be cached")
		assert.Equal(t, "gh-1", u.Social()["github"].UID)
		assert.False(t, u.Fresh())

		ok, err := h.svc.IsAuthenticated(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		require.Len(t, payloads, 1)
		details, ok2 := payloads[0].(user.Details)
		require.True(t, ok2)
		assert.Equal(t, "a@b.com", details.Email)

		// Record survived to storage.
		loaded := user.New()
		_, err = user.NewContext(storage.New[user.StoredUser](h.userStor), "user_app1").Load(ctx, loaded)
		require.NoError(t, err)
		assert.Equal(t, "u1", loaded.ID())
	})

	t.Run("default remember survives restart", func(t *testing.T) {
		h := newHarness(t, &fakeProvider{id: "fake", result: okResult()})

		_, err := h.svc.Login(ctx, "fake", nil, nil)
		require.NoError(t, err)

		h.ephem.Reset()

		ok, err := h.svc.IsAuthenticated(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("session-only login does not survive restart", func(t *testing.T) {
		h := newHarness(t, &fakeProvider{id: "fake", result: okResult()})

		_, err := h.svc.Login(ctx, "fake", nil, &auth.LoginOptions{Remember: false})
		require.NoError(t, err)

		ok, err := h.svc.IsAuthenticated(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		h.ephem.Reset()

		ok, err = h.svc.IsAuthenticated(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("provider failure wraps and leaves client signed out", func(t *testing.T) {
		cause := errors.New("backend said no")
		h := newHarness(t, &fakeProvider{id: "fake", err: cause})

		_, err := h.svc.Login(ctx, "fake", nil, nil)
		assert.ErrorIs(t, err, auth.ErrAuthenticationFailed)
		assert.ErrorIs(t, err, cause)

		ok, err2 := h.svc.IsAuthenticated(ctx)
		require.NoError(t, err2)
		assert.False(t, ok)
		assert.Zero(t, h.events.Emitted(auth.EventLogin))
	})

	t.Run("concurrent login with another provider rejected", func(t *testing.T) {
		slow := &fakeProvider{
			id:      "slow",
			result:  okResult(),
			release: make(chan struct{}),
			entered: make(chan struct{}),
		}
		other := &fakeProvider{id: "other", result: okResult()}
		h := newHarness(t, slow, other)

		done := make(chan error, 1)
		go func() {
			_, err := h.svc.Login(ctx, "slow", nil, nil)
			done <- err
		}()

		select {
		case <-slow.entered:
		case <-time.After(time.Second):
			t.Fatal("first login never reached the provider")
		}

		_, err := h.svc.Login(ctx, "other", nil, nil)
		assert.ErrorIs(t, err, auth.ErrLoginInProgress)

		close(slow.release)
		require.NoError(t, <-done)

		// The rejected attempt never reached its provider and the cache
		// holds the single winning identity.
		assert.Zero(t, other.calls)
		assert.Equal(t, 1, slow.calls)
		assert.Equal(t, 1, h.events.Emitted(auth.EventLogin))
		assert.Equal(t, "u1", h.users.Current().ID())
	})
}

func TestServiceLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears tokens and user, emits", func(t *testing.T) {
		h := newHarness(t, &fakeProvider{id: "fake", result: okResult()})

		_, err := h.svc.Login(ctx, "fake", nil, nil)
		require.NoError(t, err)

		h.svc.Logout(ctx)

		ok, err := h.svc.IsAuthenticated(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, h.users.Current().IsAnonymous())
		assert.Equal(t, 1, h.events.Emitted(auth.EventLogout))

		// Nothing left behind in durable storage.
		loaded := user.New()
		_, err = user.NewContext(storage.New[user.StoredUser](h.userStor), "user_app1").Load(ctx, loaded)
		require.NoError(t, err)
		assert.True(t, loaded.IsAnonymous())
	})

	t.Run("idempotent when nobody is logged in", func(t *testing.T) {
		h := newHarness(t)

		h.svc.Logout(ctx)
		h.svc.Logout(ctx)

		ok, err := h.svc.IsAuthenticated(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 2, h.events.Emitted(auth.EventLogout))
	})
}

func TestServiceAccountManagement(t *testing.T) {
	ctx := context.Background()

	t.Run("signup delegates to basic provider and emits without password", func(t *testing.T) {
		bp := &fakeBasicProvider{fakeProvider: fakeProvider{id: auth.ProviderBasic}}
		h := newHarness(t, bp)

		var payload any
		h.events.On(auth.EventSignup, func(p any) { payload = p })

		err := h.svc.Signup(ctx, user.Details{Email: "new@b.com", Password: "secret"})
		require.NoError(t, err)
		require.Len(t, bp.signedUp, 1)
		assert.Equal(t, "secret", bp.signedUp[0].Password)

		details, ok := payload.(user.Details)
		require.True(t, ok)
		assert.Equal(t, "new@b.com", details.Email)
		assert.Empty(t, details.Password)
	})

	t.Run("password reset round trip", func(t *testing.T) {
		bp := &fakeBasicProvider{fakeProvider: fakeProvider{id: auth.ProviderBasic}}
		h := newHarness(t, bp)

		require.NoError(t, h.svc.RequestPasswordReset(ctx, "a@b.com"))
		require.NoError(t, h.svc.ConfirmPasswordReset(ctx, 1234, "newpass"))

		assert.Equal(t, []string{"a@b.com"}, bp.requested)
		assert.Equal(t, []int{1234}, bp.confirmed)
		assert.Equal(t, 1, h.events.Emitted(auth.EventPasswordResetRequested))
		assert.Equal(t, 1, h.events.Emitted(auth.EventPasswordResetConfirmed))
	})

	t.Run("no basic provider registered", func(t *testing.T) {
		h := newHarness(t)
		assert.ErrorIs(t, h.svc.Signup(ctx, user.Details{}), auth.ErrUnknownProvider)
		assert.ErrorIs(t, h.svc.RequestPasswordReset(ctx, "a@b.com"), auth.ErrUnknownProvider)
		assert.ErrorIs(t, h.svc.ConfirmPasswordReset(ctx, 1, "x"), auth.ErrUnknownProvider)
	})

	t.Run("non-basic provider under the basic id", func(t *testing.T) {
		h := newHarness(t, &fakeProvider{id: auth.ProviderBasic})
		assert.ErrorIs(t, h.svc.Signup(ctx, user.Details{}), auth.ErrUnknownProvider)
	})
}
