package session

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsidulam/exameval/core"
)

type memStore struct {
	prefs   Prefs
	loadErr error
	saves   int
}

func (s *memStore) Load() (Prefs, error) { return s.prefs, s.loadErr }
func (s *memStore) Save(p Prefs) error   { s.prefs = p; s.saves++; return nil }

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestToken(t *testing.T) {
	t.Run("fails closed without a stored token", func(t *testing.T) {
		ctx, err := NewContext(&memStore{})
		require.NoError(t, err)

		_, err = ctx.Token()
		assert.Equal(t, ErrNotAuthenticated, err)
	})

	t.Run("anonymous access must be opted into", func(t *testing.T) {
		core.Conf.Set("allowAnonymous", true)
		defer core.Conf.Set("allowAnonymous", false)

		ctx, err := NewContext(&memStore{})
		require.NoError(t, err)

		token, err := ctx.Token()
		require.NoError(t, err)
		assert.Equal(t, core.Conf.GetString("anonymousToken"), token)
	})

	t.Run("stored token wins", func(t *testing.T) {
		ctx, err := NewContext(&memStore{prefs: Prefs{Token: "abc", Account: "teacher"}})
		require.NoError(t, err)

		token, err := ctx.Token()
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
		assert.Equal(t, "teacher", ctx.Account())
	})
}

func TestContextWriteThrough(t *testing.T) {
	store := &memStore{}
	ctx, err := NewContext(store)
	require.NoError(t, err)

	require.NoError(t, ctx.SetToken("tkn", "teacher"))
	assert.Equal(t, Prefs{Token: "tkn", Account: "teacher"}, store.prefs)

	require.NoError(t, ctx.SetSidebarCollapsed(true))
	assert.True(t, store.prefs.SidebarCollapsed)
	assert.True(t, ctx.SidebarCollapsed())

	require.NoError(t, ctx.ClearToken())
	assert.Empty(t, store.prefs.Token)
	_, err = ctx.Token()
	assert.Equal(t, ErrNotAuthenticated, err)

	assert.Equal(t, 3, store.saves)
}

func TestNewContextLoadFailure(t *testing.T) {
	_, err := NewContext(&memStore{loadErr: errors.New("disk gone")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading prefs")
}

func TestCheckExpiry(t *testing.T) {
	now := time.Now()

	t.Run("no token", func(t *testing.T) {
		ctx, _ := NewContext(&memStore{})
		assert.Equal(t, ErrNotAuthenticated, ctx.CheckExpiry(now))
	})

	t.Run("live token", func(t *testing.T) {
		ctx, _ := NewContext(&memStore{prefs: Prefs{Token: signedToken(t, now.Add(time.Hour))}})
		assert.NoError(t, ctx.CheckExpiry(now))
	})

	t.Run("expired token", func(t *testing.T) {
		ctx, _ := NewContext(&memStore{prefs: Prefs{Token: signedToken(t, now.Add(-time.Hour))}})
		assert.Equal(t, ErrTokenExpired, ctx.CheckExpiry(now))
	})

	t.Run("opaque token has no readable expiry", func(t *testing.T) {
		ctx, _ := NewContext(&memStore{prefs: Prefs{Token: "not-a-jwt"}})
		assert.NoError(t, ctx.CheckExpiry(now))
	})
}
