package cloudkit

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/auth"
	"github.com/dmitrymomot/cloudkit/pkg/config"
	"github.com/dmitrymomot/cloudkit/pkg/emitter"
	"github.com/dmitrymomot/cloudkit/pkg/logger"
	"github.com/dmitrymomot/cloudkit/pkg/session"
	"github.com/dmitrymomot/cloudkit/pkg/storage"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

// Client is the SDK entry point. It wires the config, storage tiers, API
// client, user cache and authentication controller together and hands out
// each subsystem through a lazy accessor, so an application only pays for
// what it touches.
//
// Accessors are safe for concurrent use; every subsystem is built at most
// once and shared afterwards.
type Client struct {
	cfg        config.Config
	logger     *slog.Logger
	httpClient *http.Client

	durable   storage.Strategy
	ephemeral storage.Strategy
	providers []func(*Client) auth.Provider

	emitterOnce sync.Once
	emitter     *emitter.Emitter

	tokensOnce sync.Once
	tokens     *session.CombinedTokenContext

	apiOnce sync.Once
	api     *apiclient.Client

	usersOnce sync.Once
	users     *user.Service

	authOnce sync.Once
	auth     *auth.Service
}

// Option configures the client during construction.
type Option func(*Client)

// WithLogger sets the logger shared by every subsystem.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient replaces the http.Client the API client uses.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithDurableStrategy replaces the storage backing the permanent token
// tier and the persisted user record. The default is process memory, which
// loses everything on restart; production clients plug in a durable
// strategy such as the redis or mongo adapters.
func WithDurableStrategy(s storage.Strategy) Option {
	return func(c *Client) {
		if s != nil {
			c.durable = s
		}
	}
}

// WithEphemeralStrategy replaces the storage backing the temporary token
// tier. The default, process memory, already has the right lifetime.
func WithEphemeralStrategy(s storage.Strategy) Option {
	return func(c *Client) {
		if s != nil {
			c.ephemeral = s
		}
	}
}

// WithBasicAuth registers the email and password authentication method.
func WithBasicAuth() Option {
	return withProvider(func(c *Client) auth.Provider {
		return auth.NewBasicProvider(c.cfg.AppID, c.API())
	})
}

// WithCustomAuth registers the application-defined token exchange method.
func WithCustomAuth() Option {
	return withProvider(func(c *Client) auth.Provider {
		return auth.NewCustomProvider(c.cfg.AppID, c.API())
	})
}

// WithFacebookAuth registers Facebook social login.
func WithFacebookAuth(cfg auth.OAuthConfig, opts ...auth.SocialOption) Option {
	return withProvider(func(c *Client) auth.Provider {
		return auth.NewFacebookProvider(c.cfg.AppID, c.API(), cfg, opts...)
	})
}

// WithGithubAuth registers GitHub social login.
func WithGithubAuth(cfg auth.OAuthConfig, opts ...auth.SocialOption) Option {
	return withProvider(func(c *Client) auth.Provider {
		return auth.NewGithubProvider(c.cfg.AppID, c.API(), cfg, opts...)
	})
}

// WithGoogleAuth registers Google social login.
func WithGoogleAuth(cfg auth.OAuthConfig, opts ...auth.SocialOption) Option {
	return withProvider(func(c *Client) auth.Provider {
		return auth.NewGoogleProvider(c.cfg.AppID, c.API(), cfg, opts...)
	})
}

// WithInstagramAuth registers Instagram social login.
func WithInstagramAuth(cfg auth.OAuthConfig, opts ...auth.SocialOption) Option {
	return withProvider(func(c *Client) auth.Provider {
		return auth.NewInstagramProvider(c.cfg.AppID, c.API(), cfg, opts...)
	})
}

// WithLinkedInAuth registers LinkedIn social login.
func WithLinkedInAuth(cfg auth.OAuthConfig, opts ...auth.SocialOption) Option {
	return withProvider(func(c *Client) auth.Provider {
		return auth.NewLinkedInProvider(c.cfg.AppID, c.API(), cfg, opts...)
	})
}

// WithTwitterAuth registers Twitter social login.
func WithTwitterAuth(cfg auth.OAuthConfig, opts ...auth.SocialOption) Option {
	return withProvider(func(c *Client) auth.Provider {
		return auth.NewTwitterProvider(c.cfg.AppID, c.API(), cfg, opts...)
	})
}

// WithAuthProvider registers a caller-supplied authentication provider.
func WithAuthProvider(p auth.Provider) Option {
	return withProvider(func(*Client) auth.Provider { return p })
}

func withProvider(build func(*Client) auth.Provider) Option {
	return func(c *Client) {
		c.providers = append(c.providers, build)
	}
}

// New creates a client for the given configuration. Without options it runs
// entirely in process memory with no authentication methods registered.
func New(cfg config.Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		logger:     logger.Noop(),
		httpClient: http.DefaultClient,
		durable:    storage.NewMemoryStrategy(),
		ephemeral:  storage.NewMemoryStrategy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the configuration the client was built with.
func (c *Client) Config() config.Config {
	return c.cfg
}

// Emitter returns the lifecycle event bus.
func (c *Client) Emitter() *emitter.Emitter {
	c.emitterOnce.Do(func() {
		c.emitter = emitter.New()
	})
	return c.emitter
}

// Tokens returns the two-tier session token context.
func (c *Client) Tokens() *session.CombinedTokenContext {
	c.tokensOnce.Do(func() {
		c.tokens = session.NewCombinedTokenContext(
			session.NewTokenContext(storage.New[string](c.durable), c.cfg.AuthLabel()),
			session.NewTokenContext(storage.New[string](c.ephemeral), c.cfg.AuthLabel()),
		)
	})
	return c.tokens
}

// API returns the backend API client. Requests carry the active session
// token as a bearer credential; a token read failure is logged and the
// request goes out unauthenticated.
func (c *Client) API() *apiclient.Client {
	c.apiOnce.Do(func() {
		c.api = apiclient.New(c.cfg.APIBaseURL,
			apiclient.WithHTTPClient(c.httpClient),
			apiclient.WithLogger(c.logger),
			apiclient.WithTokenSource(func(ctx context.Context) string {
				token, err := c.Tokens().Get(ctx)
				if err != nil {
					c.logger.Error("failed to read session token",
						logger.Error(err),
						logger.Component("cloudkit"),
					)
					return ""
				}
				return token
			}),
		)
	})
	return c.api
}

// Users returns the single-user service.
func (c *Client) Users() *user.Service {
	c.usersOnce.Do(func() {
		userCtx := user.NewContext(storage.New[user.StoredUser](c.durable), c.cfg.UserLabel())
		c.users = user.NewService(c.API(), userCtx, user.WithLogger(c.logger))
	})
	return c.users
}

// User returns the shared current user record.
func (c *Client) User() *user.User {
	return c.Users().Current()
}

// Auth returns the authentication controller with every registered
// provider wired in.
func (c *Client) Auth() *auth.Service {
	c.authOnce.Do(func() {
		opts := make([]auth.ServiceOption, 0, len(c.providers)+1)
		opts = append(opts, auth.WithServiceLogger(c.logger))
		for _, build := range c.providers {
			opts = append(opts, auth.WithProvider(build(c)))
		}
		c.auth = auth.NewService(c.Tokens(), c.Users(), c.Emitter(), opts...)
	})
	return c.auth
}
