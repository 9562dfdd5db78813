package session

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/dmitrijs2005/careadmin/internal/server/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	c, err := i18n.NewCatalog()
	require.NoError(t, err)
	v, err := NewValidator(c)
	require.NoError(t, err)
	return v
}

func TestGate_Initial(t *testing.T) {
	g := NewGate()
	assert.Equal(t, Anonymous, g.Status())
	assert.Equal(t, ViewLogin, g.View())
	assert.False(t, g.Authenticated())
}

func TestGate_LoginAcceptsAnything(t *testing.T) {
	tests := []struct {
		name            string
		email, password string
	}{
		{"regular", "sarah.johnson@elderlycare.com", "secret"},
		{"empty", "", ""},
		{"garbage", "not-an-email", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate()
			assert.True(t, g.Login(tt.email, tt.password))
			assert.Equal(t, Authenticated, g.Status())
		})
	}
}

func TestGate_LoginTwiceIsNoop(t *testing.T) {
	g := NewGate()
	require.True(t, g.Login("a@b.c", "x"))
	assert.False(t, g.Login("d@e.f", "y"))
	assert.True(t, g.Authenticated())
}

func TestGate_Logout(t *testing.T) {
	g := NewGate()
	g.Login("a@b.c", "x")
	g.ShowRegister()

	g.Logout()
	assert.Equal(t, Anonymous, g.Status())
	assert.Equal(t, ViewLogin, g.View())

	g.Logout()
	assert.Equal(t, Anonymous, g.Status())
}

func TestGate_Toggle(t *testing.T) {
	g := NewGate()
	g.ShowRegister()
	assert.Equal(t, ViewRegister, g.View())
	g.ShowLogin()
	assert.Equal(t, ViewLogin, g.View())
	assert.Equal(t, Anonymous, g.Status())
}

func TestGate_Register(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name     string
		lang     string
		form     RegisterForm
		wantErr  bool
		wantMsg  string
		wantView AuthView
	}{
		{
			name:     "match",
			lang:     "en",
			form:     RegisterForm{Name: "A", Email: "a@b.c", Password: "pw", ConfirmPassword: "pw"},
			wantView: ViewLogin,
		},
		{
			name:     "empty passwords match",
			lang:     "en",
			form:     RegisterForm{},
			wantView: ViewLogin,
		},
		{
			name:     "mismatch en",
			lang:     "en",
			form:     RegisterForm{Password: "pw", ConfirmPassword: "other"},
			wantErr:  true,
			wantMsg:  "Passwords do not match",
			wantView: ViewRegister,
		},
		{
			name:     "mismatch de",
			lang:     "de",
			form:     RegisterForm{Password: "pw", ConfirmPassword: "PW"},
			wantErr:  true,
			wantMsg:  "Passwörter stimmen nicht überein",
			wantView: ViewRegister,
		},
		{
			name:     "mismatch unknown language",
			lang:     "fr",
			form:     RegisterForm{Password: "pw", ConfirmPassword: ""},
			wantErr:  true,
			wantMsg:  "Passwords do not match",
			wantView: ViewRegister,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate()
			g.ShowRegister()

			err := g.Register(v, tt.lang, tt.form)
			assert.Equal(t, tt.wantView, g.View())
			assert.Equal(t, Anonymous, g.Status())

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrPasswordMismatch))

			var fe *FormError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, []string{tt.wantMsg}, fe.Messages)
		})
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "login", ViewLogin.String())
	assert.Equal(t, "register", ViewRegister.String())
}
