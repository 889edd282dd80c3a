package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/remark/domain"
	"github.com/goto/remark/pkg/identity"
)

func TestHTTPResolver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"user_id":"u-1","username":"rafi","email":"rafi@example.com"}`))
		case "Bearer numeric":
			w.Write([]byte(`{"user_id":9007199254740993,"username":"big"}`))
		case "Bearer nameless":
			w.Write([]byte(`{"email":"x@example.com"}`))
		case "Bearer broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	r, err := identity.NewHTTPResolver(identity.HTTPResolverConfig{URL: srv.URL + "/api/user/me"}, srv.Client())
	require.NoError(t, err)

	t.Run("should resolve the caller from the user service", func(t *testing.T) {
		c, err := r.ResolveCaller(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, &domain.Caller{ID: "u-1", DisplayName: "rafi"}, c)
	})

	t.Run("should keep numeric ids exact", func(t *testing.T) {
		c, err := r.ResolveCaller(context.Background(), "numeric")

		require.NoError(t, err)
		assert.Equal(t, &domain.Caller{ID: "9007199254740993", DisplayName: "big"}, c)
	})

	t.Run("should reject tokens the user service refuses", func(t *testing.T) {
		_, err := r.ResolveCaller(context.Background(), "bad")
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("should reject responses without an id", func(t *testing.T) {
		_, err := r.ResolveCaller(context.Background(), "nameless")
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("should not treat upstream failures as invalid tokens", func(t *testing.T) {
		_, err := r.ResolveCaller(context.Background(), "broken")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("should use custom field names", func(t *testing.T) {
		r, err := identity.NewHTTPResolver(identity.HTTPResolverConfig{
			URL:       srv.URL,
			IDField:   "email",
			NameField: "username",
		}, srv.Client())
		require.NoError(t, err)

		c, err := r.ResolveCaller(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, "rafi@example.com", c.ID)
	})
}
