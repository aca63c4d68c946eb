package domain

// RouteClass declared access tier of a navigable target, supplied by the
// presentation layer with each gate request
type RouteClass string

const (
	RoutePublicOnly RouteClass = "public_only" // sign-in, sign-up pages
	RouteProtected  RouteClass = "protected"
	RouteAdminOnly  RouteClass = "admin_only"
	RouteOpen       RouteClass = "open"
)

// GateOutcome admission result for one navigation
type GateOutcome string

const (
	OutcomeRender   GateOutcome = "render"
	OutcomeRedirect GateOutcome = "redirect"
)

// RedirectTarget symbolic navigation target. The presentation layer owns the
// mapping to concrete paths.
type RedirectTarget string

const (
	RedirectNone        RedirectTarget = ""
	RedirectSignIn      RedirectTarget = "sign_in"
	RedirectLearnerHome RedirectTarget = "learner_home"
	RedirectAdminHome   RedirectTarget = "admin_home"
	RedirectRoot        RedirectTarget = "root"
)

// GateDecision terminal admission decision; when Outcome is OutcomeRedirect
// no part of the guarded subtree is rendered
type GateDecision struct {
	Outcome  GateOutcome    `json:"outcome"`
	Redirect RedirectTarget `json:"redirect,omitempty"`
}
