package health_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spellbook/core/handler"
	"github.com/dmitrymomot/spellbook/core/health"
	"github.com/dmitrymomot/spellbook/core/logger"
	"github.com/dmitrymomot/spellbook/core/router"
)

type state struct{}

func newRouter(checks ...func(context.Context) error) *router.Router[state] {
	return router.New[state]().
		Handle("/health/live", health.Liveness[state]).
		Handle("/health/ready", health.Readiness[state](logger.Discard(), checks...)).
		Handle("/ping", health.NoContent[state])
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	resp, err := newRouter().Dispatch(state{}, handler.NewRequest(http.MethodGet, "/health/live"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "ALIVE", string(resp.Body))
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	resp, err := newRouter().Dispatch(state{}, handler.NewRequest(http.MethodGet, "/ping"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Empty(t, resp.Body)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		ok := func(context.Context) error {
			calls.Add(1)
			return nil
		}

		resp, err := newRouter(ok, ok, ok).Dispatch(state{}, handler.NewRequest(http.MethodGet, "/health/ready"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, "READY", string(resp.Body))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("no checks is ready", func(t *testing.T) {
		t.Parallel()

		resp, err := newRouter().Dispatch(state{}, handler.NewRequest(http.MethodGet, "/health/ready"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
	})

	t.Run("failing check is 503", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		down := func(context.Context) error { return errors.New("db down") }

		resp, err := newRouter(ok, down).Dispatch(state{}, handler.NewRequest(http.MethodGet, "/health/ready"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
		assert.Equal(t, "NOT READY", string(resp.Body))
	})

	t.Run("checks receive request context", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		var got any
		check := func(ctx context.Context) error {
			got = ctx.Value(key{})
			return nil
		}

		req := handler.NewRequest(http.MethodGet, "/health/ready")
		req = req.WithContext(context.WithValue(context.Background(), key{}, "v"))

		_, err := newRouter(check).Dispatch(state{}, req)
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})
}
