package session

import (
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated: no access token stored")
	ErrTokenExpired     = errors.New("stored access token has expired")
)

type (
	// Prefs is the client-side persistent state: the bearer token plus UI
	// preferences. Everything else lives in the backend or in memory.
	Prefs struct {
		Token            string `json:"token,omitempty"`
		Account          string `json:"account,omitempty"`
		SidebarCollapsed bool   `json:"sidebar_collapsed,omitempty"`
	}

	// Store synchronizes prefs to persistent storage. Injected so the
	// context itself never touches the filesystem.
	Store interface {
		Load() (Prefs, error)
		Save(Prefs) error
	}

	// Context is the application context, built once at startup. It is the
	// single reader/writer of client-side persistent state.
	Context struct {
		mu    sync.RWMutex
		prefs Prefs
		store Store

		// legacy behavior: send a placeholder token when none is stored.
		// Off by default; requests fail closed before reaching the network.
		allowAnonymous bool
		anonToken      string
	}
)

func NewContext(store Store) (*Context, error) {
	prefs, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading prefs")
	}
	return &Context{
		prefs:          prefs,
		store:          store,
		allowAnonymous: core.Conf.GetBool("allowAnonymous"),
		anonToken:      core.Conf.GetString("anonymousToken"),
	}, nil
}

// Token returns the bearer token to attach to requests. With no stored token
// it fails closed unless anonymous access was explicitly allowed.
func (c *Context) Token() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.prefs.Token == "" {
		if c.allowAnonymous {
			return c.anonToken, nil
		}
		return "", ErrNotAuthenticated
	}
	return c.prefs.Token, nil
}

func (c *Context) SetToken(token, account string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefs.Token = token
	c.prefs.Account = account
	return c.store.Save(c.prefs)
}

func (c *Context) ClearToken() error {
	return c.SetToken("", "")
}

func (c *Context) Account() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prefs.Account
}

func (c *Context) SidebarCollapsed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prefs.SidebarCollapsed
}

func (c *Context) SetSidebarCollapsed(collapsed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefs.SidebarCollapsed = collapsed
	return c.store.Save(c.prefs)
}

// CheckExpiry inspects the stored token's exp claim without verifying the
// signature, so the console can warn before a request comes back 401.
func (c *Context) CheckExpiry(now time.Time) error {
	c.mu.RLock()
	token := c.prefs.Token
	c.mu.RUnlock()
	if token == "" {
		return ErrNotAuthenticated
	}

	claims := jwt.MapClaims{}
	if _, _, err := (&jwt.Parser{}).ParseUnverified(token, claims); err != nil {
		return nil // opaque tokens have no readable expiry
	}
	if exp, ok := claims["exp"].(float64); ok {
		if now.After(time.Unix(int64(exp), 0)) {
			return ErrTokenExpired
		}
	}
	return nil
}
