package handler_test

import (
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spellbook/core/handler"
)

func TestRouteFromParams(t *testing.T) {
	t.Parallel()

	params := map[string]string{"name": "Walt", "age": "42"}
	route := handler.NewRoute(params)

	name, err := handler.Get[string](route, "name")
	require.NoError(t, err)
	assert.Equal(t, "Walt", name)

	age, err := handler.Get[uint32](route, "age")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), age)

	// The route owns a copy of the map.
	params["name"] = "Vic"
	v, ok := route.Param("name")
	assert.True(t, ok)
	assert.Equal(t, "Walt", v)

	out := route.Params()
	out["age"] = "0"
	assert.Equal(t, "42", handler.MustGet[string](route, "age"))
	assert.Equal(t, 2, route.Len())
}

func TestRouteGetTypes(t *testing.T) {
	t.Parallel()

	route := handler.NewRoute(map[string]string{
		"int":      "-17",
		"uint8":    "255",
		"float":    "3.25",
		"bool":     "true",
		"duration": "1m30s",
		"ip":       "10.0.0.1",
		"big":      "9223372036854775807",
	})

	i, err := handler.Get[int](route, "int")
	require.NoError(t, err)
	assert.Equal(t, -17, i)

	i16, err := handler.Get[int16](route, "int")
	require.NoError(t, err)
	assert.Equal(t, int16(-17), i16)

	u8, err := handler.Get[uint8](route, "uint8")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	f, err := handler.Get[float64](route, "float")
	require.NoError(t, err)
	assert.InDelta(t, 3.25, f, 1e-9)

	f32, err := handler.Get[float32](route, "float")
	require.NoError(t, err)
	assert.InDelta(t, float32(3.25), f32, 1e-6)

	b, err := handler.Get[bool](route, "bool")
	require.NoError(t, err)
	assert.True(t, b)

	d, err := handler.Get[time.Duration](route, "duration")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	ip, err := handler.Get[net.IP](route, "ip")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", ip.String())

	big, err := handler.Get[int64](route, "big")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), big)
}

func TestRouteGetMissing(t *testing.T) {
	t.Parallel()

	route := handler.NewRoute(nil)

	v, err := handler.Get[int](route, "id")
	require.Error(t, err)
	assert.Zero(t, v)
	assert.ErrorIs(t, err, handler.ErrParamMissing)
	assert.NotErrorIs(t, err, handler.ErrParamTypeMismatch)

	var pe *handler.ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "id", pe.Key)
	assert.Equal(t, 400, pe.StatusCode())
	assert.Equal(t, `param "id": param does not exist`, err.Error())
}

func TestRouteGetTypeMismatch(t *testing.T) {
	t.Parallel()

	route := handler.NewRoute(map[string]string{"id": "abc", "small": "300"})

	_, err := handler.Get[int](route, "id")
	require.Error(t, err)
	assert.ErrorIs(t, err, handler.ErrParamTypeMismatch)
	assert.NotErrorIs(t, err, handler.ErrParamMissing)

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.ErrorIs(t, numErr, strconv.ErrSyntax)

	var pe *handler.ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "abc", pe.Value)

	_, err = handler.Get[int8](route, "small")
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.ErrorIs(t, err, handler.ErrParamTypeMismatch)

	_, err = handler.Get[bool](route, "id")
	assert.ErrorIs(t, err, handler.ErrParamTypeMismatch)

	_, err = handler.Get[net.IP](route, "id")
	assert.ErrorIs(t, err, handler.ErrParamTypeMismatch)
}

func TestRouteGetUnsupportedType(t *testing.T) {
	t.Parallel()

	route := handler.NewRoute(map[string]string{"id": "1"})

	_, err := handler.Get[[]int](route, "id")
	require.Error(t, err)
	assert.ErrorIs(t, err, handler.ErrParamTypeMismatch)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestRouteMustGetPanics(t *testing.T) {
	t.Parallel()

	route := handler.NewRoute(map[string]string{"id": "x"})

	assert.Panics(t, func() { handler.MustGet[int](route, "id") })
	assert.Panics(t, func() { handler.MustGet[int](route, "missing") })
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	route := handler.NewRouteWithPattern("/users/:id", map[string]string{"id": "1"})
	assert.Equal(t, "/users/:id", route.Pattern())
	assert.Empty(t, handler.NewRoute(nil).Pattern())
}

func TestParamErrorIsDistinguishable(t *testing.T) {
	t.Parallel()

	err := error(&handler.ParamError{Key: "k", Err: handler.ErrParamMissing})
	assert.True(t, errors.Is(err, handler.ErrParamMissing))
	assert.False(t, errors.Is(err, handler.ErrParamTypeMismatch))
}
