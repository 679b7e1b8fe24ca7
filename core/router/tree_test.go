package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spellbook/core/handler"
)

func okHandler(ctx handler.Context[struct{}]) (handler.Response, error) {
	return handler.Text(200, "ok"), nil
}

func TestTreeNew(t *testing.T) {
	t.Parallel()

	tr := newTree[struct{}]()
	require.Len(t, tr.nodes, 1)

	_, ok := tr.handler(rootNode)
	assert.False(t, ok)
	_, ok = tr.wildcard(rootNode)
	assert.False(t, ok)
	_, ok = tr.child(rootNode, "")
	assert.False(t, ok)
}

func TestTreeAddChildIdempotent(t *testing.T) {
	t.Parallel()

	tr := newTree[struct{}]()

	first := tr.addChild(rootNode, "users")
	second := tr.addChild(rootNode, "users")
	assert.Equal(t, first, second)
	assert.Len(t, tr.nodes, 2)

	other := tr.addChild(rootNode, "posts")
	assert.NotEqual(t, first, other)
	assert.Len(t, tr.nodes, 3)

	got, ok := tr.child(rootNode, "users")
	require.True(t, ok)
	assert.Equal(t, first, got)
}

func TestTreeChildIgnoresWildcard(t *testing.T) {
	t.Parallel()

	tr := newTree[struct{}]()
	_, err := tr.setWildcard(rootNode, ":id")
	require.NoError(t, err)

	_, ok := tr.child(rootNode, ":id")
	assert.False(t, ok)
	_, ok = tr.child(rootNode, "42")
	assert.False(t, ok)
}

func TestTreeSetWildcard(t *testing.T) {
	t.Parallel()

	t.Run("same pattern is idempotent", func(t *testing.T) {
		t.Parallel()

		tr := newTree[struct{}]()
		first, err := tr.setWildcard(rootNode, ":id")
		require.NoError(t, err)
		second, err := tr.setWildcard(rootNode, ":id")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, tr.nodes, 2)

		wc, ok := tr.wildcard(rootNode)
		require.True(t, ok)
		assert.Equal(t, ":id", wc.pattern)
		assert.Equal(t, "id", wc.name())
		assert.False(t, wc.catchAll())
		assert.Equal(t, first, wc.child)
	})

	t.Run("different pattern is rejected", func(t *testing.T) {
		t.Parallel()

		tr := newTree[struct{}]()
		first, err := tr.setWildcard(rootNode, ":id")
		require.NoError(t, err)

		_, err = tr.setWildcard(rootNode, "*rest")
		assert.ErrorIs(t, err, ErrWildcardConflict)

		wc, _ := tr.wildcard(rootNode)
		assert.Equal(t, ":id", wc.pattern)
		assert.Equal(t, first, wc.child)
	})

	t.Run("literal and wildcard coexist", func(t *testing.T) {
		t.Parallel()

		tr := newTree[struct{}]()
		lit := tr.addChild(rootNode, "admin")
		wcChild, err := tr.setWildcard(rootNode, ":id")
		require.NoError(t, err)
		assert.NotEqual(t, lit, wcChild)

		got, ok := tr.child(rootNode, "admin")
		require.True(t, ok)
		assert.Equal(t, lit, got)
	})
}

func TestTreeHandlerLastWriteWins(t *testing.T) {
	t.Parallel()

	tr := newTree[struct{}]()
	idx := tr.addChild(rootNode, "a")

	tr.setHandler(idx, okHandler, "/a")
	tr.setHandler(idx, func(handler.Context[struct{}]) (handler.Response, error) {
		return handler.Text(200, "second"), nil
	}, "/a/")

	ep, ok := tr.handler(idx)
	require.True(t, ok)
	assert.Equal(t, "/a/", ep.pattern)

	resp, err := ep.handler(handler.EmptyContext(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, "second", string(resp.Body))
}

func TestTreeIndicesStableOnGrowth(t *testing.T) {
	t.Parallel()

	tr := newTree[struct{}]()
	a := tr.addChild(rootNode, "a")
	for i := 0; i < 100; i++ {
		tr.addChild(a, string(rune('a'+i%26))+string(rune('0'+i/26)))
	}

	got, ok := tr.child(rootNode, "a")
	require.True(t, ok)
	assert.Equal(t, a, got)
	assert.Len(t, tr.nodes, 102)
}

func TestTreeClone(t *testing.T) {
	t.Parallel()

	tr := newTree[struct{}]()
	a := tr.addChild(rootNode, "a")
	tr.setHandler(a, okHandler, "/a")

	cp := tr.clone()
	b := cp.addChild(rootNode, "b")
	_, err := cp.setWildcard(a, ":id")
	require.NoError(t, err)

	_, ok := tr.child(rootNode, "b")
	assert.False(t, ok, "original must not see nodes added to the clone")
	_, ok = tr.wildcard(a)
	assert.False(t, ok)
	assert.Len(t, tr.nodes, 2)

	_, ok = cp.child(rootNode, "b")
	assert.True(t, ok)
	_, ok = cp.handler(a)
	assert.True(t, ok, "clone keeps existing endpoints")
	assert.Equal(t, 2, b)
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{""}},
		{"", []string{""}},
		{"//", []string{""}},
		{"/users", []string{"users"}},
		{"users/", []string{"users"}},
		{"/users/:id/posts/", []string{"users", ":id", "posts"}},
		{"/a//b", []string{"a", "", "b"}},
		{"/a/b//", []string{"a", "b", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPath(tt.path))
		})
	}
}
