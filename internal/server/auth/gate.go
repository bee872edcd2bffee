// Package auth holds the per-request authorization decision and the session
// token helpers. The gate is a pure function: it consumes session state, it
// never manages it.
package auth

import "strings"

// DashboardRoot is the root of the protected area. Everything under it
// requires a session; authenticated users are steered back to it from
// public pages.
const DashboardRoot = "/dashboard"

type Outcome int

const (
	Allow Outcome = iota
	Deny
	Redirect
)

// Decision is the gate's verdict for one request. RedirectPath is set only
// when Outcome is Redirect.
type Decision struct {
	Outcome      Outcome
	RedirectPath string
}

// Authorize maps (session present, requested path) to an access decision:
//
//   - protected path without a session: Deny (the caller sends the user to
//     the login page);
//   - protected path with a session: Allow;
//   - public path with a session: Redirect to the dashboard root;
//   - anything else: Allow.
func Authorize(sessionPresent bool, requestedPath string) Decision {
	onDashboard := requestedPath == DashboardRoot ||
		strings.HasPrefix(requestedPath, DashboardRoot+"/")

	switch {
	case onDashboard && !sessionPresent:
		return Decision{Outcome: Deny}
	case onDashboard:
		return Decision{Outcome: Allow}
	case sessionPresent:
		return Decision{Outcome: Redirect, RedirectPath: DashboardRoot}
	default:
		return Decision{Outcome: Allow}
	}
}
