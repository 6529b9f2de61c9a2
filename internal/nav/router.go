package nav

import (
	"path"
	"strings"

	pantaerrors "github.com/zhubert/panta/internal/errors"
	"github.com/zhubert/panta/internal/logger"
)

// Router is an in-process browser-style history of route paths.
type Router struct {
	back    []string
	current string
	forward []string
}

// NewRouter starts the history at start, which is normalized first.
func NewRouter(start string) (*Router, error) {
	p, err := Normalize(start)
	if err != nil {
		return nil, err
	}
	return &Router{current: p}, nil
}

// Normalize cleans a route path: leading slash, no trailing slash, no dot
// segments. Empty input is an error.
func Normalize(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", pantaerrors.RouteInvalid(p)
	}
	if strings.ContainsAny(p, " \t\n?#") {
		return "", pantaerrors.RouteInvalid(p)
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p), nil
}

// Current returns the active path.
func (r *Router) Current() string {
	return r.current
}

// Navigate pushes p onto the history. Navigating to the current path is a
// no-op that reports false.
func (r *Router) Navigate(p string) (bool, error) {
	next, err := Normalize(p)
	if err != nil {
		return false, err
	}
	if next == r.current {
		return false, nil
	}
	r.back = append(r.back, r.current)
	r.current = next
	r.forward = nil
	logger.WithComponent("router").Debug("navigate", "path", next, "depth", len(r.back))
	return true, nil
}

// CanBack reports whether Back would move.
func (r *Router) CanBack() bool { return len(r.back) > 0 }

// CanForward reports whether Forward would move.
func (r *Router) CanForward() bool { return len(r.forward) > 0 }

// Back moves one entry back in history.
func (r *Router) Back() bool {
	if len(r.back) == 0 {
		return false
	}
	r.forward = append(r.forward, r.current)
	r.current = r.back[len(r.back)-1]
	r.back = r.back[:len(r.back)-1]
	return true
}

// Forward re-applies the most recently undone navigation.
func (r *Router) Forward() bool {
	if len(r.forward) == 0 {
		return false
	}
	r.back = append(r.back, r.current)
	r.current = r.forward[len(r.forward)-1]
	r.forward = r.forward[:len(r.forward)-1]
	return true
}

// History returns the back stack followed by the current path, oldest first.
func (r *Router) History() []string {
	out := append([]string(nil), r.back...)
	return append(out, r.current)
}
