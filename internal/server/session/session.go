// Package session models the login gate in front of the console. It has no
// notion of identity: any credentials are accepted and registration only
// checks that the two password entries agree.
package session

// Status is the authentication state of a workspace.
type Status int

const (
	Anonymous Status = iota
	Authenticated
)

func (s Status) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// AuthView selects which form the anonymous screen shows.
type AuthView int

const (
	ViewLogin AuthView = iota
	ViewRegister
)

func (v AuthView) String() string {
	if v == ViewRegister {
		return "register"
	}
	return "login"
}

// Gate holds the session state of one workspace. It is not safe for
// concurrent use; the owning workspace serializes access.
type Gate struct {
	status Status
	view   AuthView
}

func NewGate() *Gate {
	return &Gate{status: Anonymous, view: ViewLogin}
}

func (g *Gate) Status() Status { return g.status }

func (g *Gate) View() AuthView { return g.view }

func (g *Gate) Authenticated() bool { return g.status == Authenticated }

// Login accepts any credentials. It reports whether the state changed.
func (g *Gate) Login(email, password string) bool {
	changed := g.status != Authenticated
	g.status = Authenticated
	return changed
}

// Logout returns to the anonymous login screen.
func (g *Gate) Logout() {
	g.status = Anonymous
	g.view = ViewLogin
}

func (g *Gate) ShowRegister() { g.view = ViewRegister }

func (g *Gate) ShowLogin() { g.view = ViewLogin }

// Register runs the boundary check on form. On success the anonymous screen
// switches back to the login form; the session status never changes. On
// failure nothing changes and the returned error wraps
// common.ErrPasswordMismatch.
func (g *Gate) Register(v *Validator, lang string, form RegisterForm) error {
	if err := v.Check(lang, form); err != nil {
		return err
	}
	g.view = ViewLogin
	return nil
}
