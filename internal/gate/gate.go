package gate

import (
	"github.com/pot-code/elearn-bff/internal/domain"
)

// Decide evaluate the route admission table for one navigation. The
// decision is terminal: a redirect means no part of the guarded subtree
// renders for this navigation.
//
// An unknown route class falls through to the admin home for
// administrators and the application root for everyone else; there is no
// explicit 404 state.
func Decide(class domain.RouteClass, viewer domain.Identity) domain.GateDecision {
	switch class {
	case domain.RouteOpen:
		return render()
	case domain.RoutePublicOnly:
		if !viewer.Authenticated {
			return render()
		}
		if viewer.IsAdmin() {
			return redirect(domain.RedirectAdminHome)
		}
		return redirect(domain.RedirectLearnerHome)
	case domain.RouteProtected:
		if !viewer.Authenticated {
			return redirect(domain.RedirectSignIn)
		}
		return render()
	case domain.RouteAdminOnly:
		if viewer.IsAdmin() {
			return render()
		}
		return redirect(domain.RedirectSignIn)
	}
	return DecideUnmatched(viewer)
}

// DecideUnmatched fallback for navigation targets with no declared class
func DecideUnmatched(viewer domain.Identity) domain.GateDecision {
	if viewer.IsAdmin() {
		return redirect(domain.RedirectAdminHome)
	}
	return redirect(domain.RedirectRoot)
}

func render() domain.GateDecision {
	return domain.GateDecision{Outcome: domain.OutcomeRender}
}

func redirect(target domain.RedirectTarget) domain.GateDecision {
	return domain.GateDecision{Outcome: domain.OutcomeRedirect, Redirect: target}
}
