package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/httpcontext"
)

const secret = "middleware-secret"

type sessionSet map[string]bool

func (s sessionSet) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if s[id] {
		return &domain.Session{ID: id}, nil
	}
	return nil, domain.ErrSessionNotFound
}

func signed(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func run(handler fasthttp.RequestHandler, authorization string) *fasthttp.RequestCtx {
	var rc fasthttp.RequestCtx
	if authorization != "" {
		rc.Request.Header.Set("Authorization", authorization)
	}
	handler(&rc)
	return &rc
}

func TestJWTAuth(t *testing.T) {
	var seenUser string
	next := func(ctx *fasthttp.RequestCtx) {
		seenUser = httpcontext.UserID(ctx)
		ctx.SetStatusCode(fasthttp.StatusOK)
	}
	handler := JWTAuth(secret, sessionSet{"S-1": true}, nil)(next)
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("missing token", func(t *testing.T) {
		rc := run(handler, "")
		assert.Equal(t, fasthttp.StatusUnauthorized, rc.Response.StatusCode())
		assert.Contains(t, string(rc.Response.Body()), "UNAUTHORIZED")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signed(t, "other", jwt.MapClaims{"user_id": "U-1", "session_id": "S-1", "exp": exp})
		rc := run(handler, "Bearer "+token)
		assert.Equal(t, fasthttp.StatusUnauthorized, rc.Response.StatusCode())
	})

	t.Run("expired", func(t *testing.T) {
		token := signed(t, secret, jwt.MapClaims{"user_id": "U-1", "session_id": "S-1", "exp": time.Now().Add(-time.Minute).Unix()})
		rc := run(handler, "Bearer "+token)
		assert.Equal(t, fasthttp.StatusUnauthorized, rc.Response.StatusCode())
	})

	t.Run("revoked session", func(t *testing.T) {
		token := signed(t, secret, jwt.MapClaims{"user_id": "U-1", "session_id": "S-2", "exp": exp})
		rc := run(handler, "Bearer "+token)
		assert.Equal(t, fasthttp.StatusUnauthorized, rc.Response.StatusCode())
	})

	t.Run("valid", func(t *testing.T) {
		token := signed(t, secret, jwt.MapClaims{"user_id": "U-1", "session_id": "S-1", "exp": exp})
		rc := run(handler, "Bearer "+token)
		assert.Equal(t, fasthttp.StatusOK, rc.Response.StatusCode())
		assert.Equal(t, "U-1", seenUser)
		assert.Equal(t, "U-1", string(rc.Request.Header.Peek("X-User-ID")))
	})
}
