package router

import (
	"strings"

	"github.com/dmitrymomot/spellbook/core/handler"
)

// Match resolves path to a route without running any handler.
// It returns ErrRouteMismatch when no registered pattern matches.
func (r *Router[S]) Match(path string) (*handler.Route, error) {
	_, route, ok := r.match(path)
	if !ok {
		return nil, ErrRouteMismatch
	}
	return route, nil
}

// Dispatch matches req.Path, builds a Context around state and runs the
// tween chain ending in the matched handler.
//
// An unmatched path is not an error: the not-found handler runs if one was
// configured, otherwise a 404 response is returned. Errors from tweens and
// handlers are returned unchanged.
func (r *Router[S]) Dispatch(state S, req *handler.Request) (handler.Response, error) {
	if req == nil {
		return handler.Response{}, ErrNilRequest
	}

	ep, route, ok := r.match(req.Path)
	if !ok {
		if r.notFound != nil {
			return r.notFound(handler.NewContext(state, nil, req))
		}
		return handler.NotFound(), nil
	}

	ctx := handler.NewContext(state, route, req)
	return chain(r.tweens, ep.handler)(ctx)
}

// match walks the tree one segment at a time. At every node a literal edge
// is tried before the wildcard edge, and there is no backtracking: the first
// segment that matches neither ends the walk as a mismatch.
func (r *Router[S]) match(path string) (*endpoint[S], *handler.Route, bool) {
	segments := splitPath(path)
	current := rootNode
	var params map[string]string

	for i, seg := range segments {
		if child, ok := r.tree.child(current, seg); ok {
			current = child
			continue
		}

		wc, ok := r.tree.wildcard(current)
		if !ok {
			return nil, nil, false
		}
		if params == nil {
			params = make(map[string]string, 1)
		}
		current = wc.child

		if wc.catchAll() {
			// a catch-all needs a non-empty remainder
			suffix := strings.Join(segments[i:], "/")
			if suffix == "" {
				return nil, nil, false
			}
			params[wc.name()] = suffix
			break
		}
		params[wc.name()] = seg
	}

	ep, ok := r.tree.handler(current)
	if !ok {
		return nil, nil, false
	}

	return ep, handler.NewRouteWithPattern(ep.pattern, params), true
}
