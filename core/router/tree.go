package router

import (
	"maps"

	"github.com/dmitrymomot/spellbook/core/handler"
)

// rootNode is the index of the tree root. The root never holds a handler:
// even "/" is stored on its empty-literal child.
const rootNode = 0

// wildcardEdge is the single wildcard child of a node.
// An empty pattern means the node has no wildcard.
type wildcardEdge struct {
	pattern string // ":name" or "*name"
	child   int
}

func (e wildcardEdge) name() string {
	return e.pattern[1:]
}

func (e wildcardEdge) catchAll() bool {
	return e.pattern[0] == '*'
}

// endpoint is the handler stored on a terminal node.
type endpoint[S any] struct {
	handler handler.Handler[S]
	pattern string
}

type node[S any] struct {
	// literal segment -> child index
	children map[string]int

	wildcard wildcardEdge

	// nil when no route terminates here
	endpoint *endpoint[S]
}

// tree is a segment tree stored as a flat, append-only node table.
// Nodes reference each other by index, so growing the table never
// invalidates indices handed out earlier.
type tree[S any] struct {
	nodes []node[S]
}

func newTree[S any]() *tree[S] {
	return &tree[S]{nodes: []node[S]{{}}}
}

func (t *tree[S]) newNode() int {
	t.nodes = append(t.nodes, node[S]{})
	return len(t.nodes) - 1
}

// addChild returns the literal child of idx for segment, creating it if needed.
func (t *tree[S]) addChild(idx int, segment string) int {
	if child, ok := t.nodes[idx].children[segment]; ok {
		return child
	}

	child := t.newNode()
	if t.nodes[idx].children == nil {
		t.nodes[idx].children = make(map[string]int)
	}
	t.nodes[idx].children[segment] = child
	return child
}

// setWildcard returns the wildcard child of idx, creating it if the node has
// none. A node holds at most one wildcard: a differently spelled one is
// rejected so an already registered subtree is never dropped.
func (t *tree[S]) setWildcard(idx int, pattern string) (int, error) {
	if wc := t.nodes[idx].wildcard; wc.pattern != "" {
		if wc.pattern != pattern {
			return 0, ErrWildcardConflict
		}
		return wc.child, nil
	}

	child := t.newNode()
	t.nodes[idx].wildcard = wildcardEdge{pattern: pattern, child: child}
	return child, nil
}

// child looks up a literal edge only.
func (t *tree[S]) child(idx int, segment string) (int, bool) {
	child, ok := t.nodes[idx].children[segment]
	return child, ok
}

func (t *tree[S]) wildcard(idx int) (wildcardEdge, bool) {
	wc := t.nodes[idx].wildcard
	return wc, wc.pattern != ""
}

// setHandler stores h on idx. Registering the same node twice overwrites.
func (t *tree[S]) setHandler(idx int, h handler.Handler[S], pattern string) {
	t.nodes[idx].endpoint = &endpoint[S]{handler: h, pattern: pattern}
}

func (t *tree[S]) handler(idx int) (*endpoint[S], bool) {
	ep := t.nodes[idx].endpoint
	return ep, ep != nil
}

// patterns returns every registered pattern in node order.
func (t *tree[S]) patterns() []string {
	var out []string
	for _, n := range t.nodes {
		if n.endpoint != nil {
			out = append(out, n.endpoint.pattern)
		}
	}
	return out
}

// clone copies the node table. Endpoints are immutable once stored and
// are shared; child maps are copied so neither tree sees the other's growth.
func (t *tree[S]) clone() *tree[S] {
	nodes := make([]node[S], len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = node[S]{
			children: maps.Clone(n.children),
			wildcard: n.wildcard,
			endpoint: n.endpoint,
		}
	}
	return &tree[S]{nodes: nodes}
}
