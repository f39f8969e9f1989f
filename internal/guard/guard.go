// Package guard decides, per navigation, whether a screen is reachable given
// the current session state. The decision is synchronous and pure: storage
// reads are instantaneous, so there is no loading or ambiguous state.
package guard

// Policy classifies a screen's reachability rule.
type Policy int

const (
	// PublicOnly screens (sign-in, sign-up) are unreachable once signed in.
	PublicOnly Policy = iota
	// Protected screens require a session.
	Protected
)

// Screen names used as navigation targets.
const (
	ScreenLogin     = "login"
	ScreenDashboard = "dashboard"
)

// Authenticator is the slice of the session store the guard needs.
type Authenticator interface {
	IsAuthenticated() bool
}

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Guard evaluates policies against a session store.
type Guard struct {
	session Authenticator
}

// New creates a guard over the given session store.
func New(session Authenticator) *Guard {
	return &Guard{session: session}
}

// Resolve applies the policy: public-only screens redirect signed-in users to
// the dashboard; protected screens redirect signed-out users to sign-in.
func (g *Guard) Resolve(policy Policy) Decision {
	authenticated := g.session.IsAuthenticated()
	switch policy {
	case PublicOnly:
		if authenticated {
			return Decision{Allow: false, RedirectTo: ScreenDashboard}
		}
	case Protected:
		if !authenticated {
			return Decision{Allow: false, RedirectTo: ScreenLogin}
		}
	}
	return Decision{Allow: true}
}
