// Package guard decides whether the current session may reach a navigation
// target. Evaluate is a pure function of (session, route): no I/O, safe to
// re-run on every navigation.
package guard

import (
	"github.com/example/shop-console/internal/model"
	"github.com/example/shop-console/internal/session"
)

// Decision is the outcome of a guard evaluation.
type Decision int

const (
	// Allow renders the target.
	Allow Decision = iota
	// RedirectToLogin means no session is held.
	RedirectToLogin
	// RedirectToDefault means a session is held but the role check failed.
	RedirectToDefault
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToDefault:
		return "redirect-to-default"
	default:
		return "unknown"
	}
}

// Evaluate applies the access rules for a route. Public routes always pass.
// Protected routes need a session; an empty allowed-role list admits any
// authenticated session, otherwise the dual-shape role check must pass.
func Evaluate(sess session.Session, route Route) Decision {
	if !route.Protected {
		return Allow
	}
	if !sess.Authenticated() {
		return RedirectToLogin
	}
	if len(route.AllowedRoles) == 0 {
		return Allow
	}
	if sess.HasAnyRole(route.AllowedRoles...) {
		return Allow
	}
	return RedirectToDefault
}

// Level classifies a session for display purposes. Transitions happen only
// through login and logout, never inside the guard.
type Level int

const (
	Public Level = iota
	AuthenticatedUnprivileged
	AuthenticatedPrivileged
)

func (l Level) String() string {
	switch l {
	case Public:
		return "public"
	case AuthenticatedUnprivileged:
		return "authenticated"
	case AuthenticatedPrivileged:
		return "privileged"
	default:
		return "unknown"
	}
}

// Classify reports the session's access level.
func Classify(sess session.Session) Level {
	if !sess.Authenticated() {
		return Public
	}
	if sess.HasAnyRole(model.RoleMerchant, model.RoleAdmin) {
		return AuthenticatedPrivileged
	}
	return AuthenticatedUnprivileged
}
