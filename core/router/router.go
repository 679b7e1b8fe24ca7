package router

import (
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrymomot/spellbook/core/handler"
	"github.com/dmitrymomot/spellbook/core/logger"
)

// Router maps request paths to handlers and runs them through the
// registered tweens.
//
// A Router is built once at startup and then only read. Register, Handle and
// Use must not be called concurrently with Dispatch; hand a Clone to the
// serving side if registration may continue.
type Router[S any] struct {
	tree     *tree[S]
	tweens   []handler.Tween[S]
	notFound handler.Handler[S]
	logger   *slog.Logger
}

// New creates an empty router.
func New[S any](opts ...Option[S]) *Router[S] {
	r := &Router[S]{
		tree:   newTree[S](),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds h for pattern.
//
// A pattern is a "/"-separated list of segments. A segment is either a
// literal, ":name" which binds one path segment, or "*name" which binds the
// rest of the path and must come last. One leading and one trailing slash
// are ignored. Registering the same pattern twice replaces the handler.
//
// Invalid patterns are reported as *ConfigError and leave the router
// unchanged.
func (r *Router[S]) Register(pattern string, h handler.Handler[S]) error {
	if h == nil {
		return &ConfigError{Pattern: pattern, Err: ErrNilHandler}
	}

	segments := splitPath(pattern)
	if err := r.validate(pattern, segments); err != nil {
		return err
	}

	current := rootNode
	for _, seg := range segments {
		if isWildcard(seg) {
			// validate already checked for conflicts
			current, _ = r.tree.setWildcard(current, seg)
			continue
		}
		current = r.tree.addChild(current, seg)
	}

	r.tree.setHandler(current, h, pattern)

	r.logger.Debug("route registered",
		logger.Component("router"),
		slog.String("pattern", pattern),
		slog.Int("nodes", len(r.tree.nodes)),
	)

	return nil
}

// Handle is the builder form of Register. It panics with a *ConfigError on
// invalid input, which is meant to abort startup.
func (r *Router[S]) Handle(pattern string, h handler.Handler[S]) *Router[S] {
	if err := r.Register(pattern, h); err != nil {
		panic(err)
	}
	return r
}

// Use registers a tween. The most recently registered tween runs first.
// It panics with a *ConfigError if tw is nil.
func (r *Router[S]) Use(tw handler.Tween[S]) *Router[S] {
	if tw == nil {
		panic(&ConfigError{Err: ErrNilTween})
	}
	r.tweens = append(r.tweens, tw)

	r.logger.Debug("tween registered",
		logger.Component("router"),
		slog.Int("position", len(r.tweens)),
	)

	return r
}

// Clone returns an independent copy of the router. Routes and tweens added
// to either copy afterwards are not visible in the other.
func (r *Router[S]) Clone() *Router[S] {
	return &Router[S]{
		tree:     r.tree.clone(),
		tweens:   slices.Clone(r.tweens),
		notFound: r.notFound,
		logger:   r.logger,
	}
}

// Routes returns the registered patterns, sorted.
func (r *Router[S]) Routes() []string {
	out := r.tree.patterns()
	sort.Strings(out)
	return out
}

// validate checks a pattern before anything is inserted, so a rejected
// pattern never leaves half-built branches behind.
func (r *Router[S]) validate(pattern string, segments []string) error {
	seen := make(map[string]struct{})
	current, exists := rootNode, true

	for i, seg := range segments {
		if !isWildcard(seg) {
			if exists {
				current, exists = r.tree.child(current, seg)
			}
			continue
		}

		name := seg[1:]
		if name == "" {
			return &ConfigError{Pattern: pattern, Segment: seg, Err: ErrInvalidPattern}
		}
		if seg[0] == '*' && i != len(segments)-1 {
			return &ConfigError{Pattern: pattern, Segment: seg, Err: ErrWildcardPosition}
		}
		if _, dup := seen[name]; dup {
			return &ConfigError{Pattern: pattern, Segment: seg, Err: ErrDuplicateParam}
		}
		seen[name] = struct{}{}

		if !exists {
			continue
		}
		wc, ok := r.tree.wildcard(current)
		if !ok {
			exists = false
			continue
		}
		if wc.pattern != seg {
			return &ConfigError{Pattern: pattern, Segment: seg, Err: ErrWildcardConflict}
		}
		current = wc.child
	}

	return nil
}

// splitPath trims one leading and one trailing slash and splits on "/".
// Both "" and "/" yield a single empty segment.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	return strings.Split(path, "/")
}

func isWildcard(seg string) bool {
	return len(seg) > 0 && (seg[0] == ':' || seg[0] == '*')
}
