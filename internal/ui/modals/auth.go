package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"

	"github.com/docdraft/docdraft/internal/identity"
)

// UsernameCharLimit bounds the name typed into the sign-in forms
const UsernameCharLimit = 64

// =============================================================================
// LoginState - State for the sign-in modal
// =============================================================================

type LoginState struct {
	username string
	password string
	form     *huh.Form
}

func (*LoginState) modalState() {}

func (s *LoginState) Title() string { return "Sign In" }

func (s *LoginState) Help() string {
	return "Tab: next  Enter: sign in  ctrl+n: create account  Esc: continue as guest"
}

func (s *LoginState) Render() string {
	return renderForm(s.Title(), s.form, s.Help())
}

func (s *LoginState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// Submit returns the display name for the entered credentials.
// The password is never kept past this call.
func (s *LoginState) Submit() string {
	name := identity.Login(identity.Credentials{Username: s.username, Password: s.password})
	s.password = ""
	return name
}

// NewLoginState creates a LoginState, prefilled with the last used name
func NewLoginState(lastUsername string) *LoginState {
	s := &LoginState{username: lastUsername}

	s.form = newModalForm(
		huh.NewInput().
			Title("Username").
			Placeholder(identity.Guest).
			CharLimit(UsernameCharLimit).
			Value(&s.username),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&s.password),
	)
	return s
}

// =============================================================================
// SignupState - State for the create-account modal
// =============================================================================

type SignupState struct {
	username string
	email    string
	password string
	confirm  string
	form     *huh.Form
}

func (*SignupState) modalState() {}

func (s *SignupState) Title() string { return "Create Account" }

func (s *SignupState) Help() string {
	return "Tab: next  Enter: create  Esc: back"
}

func (s *SignupState) Render() string {
	return renderForm(s.Title(), s.form, s.Help())
}

func (s *SignupState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// Submit validates the registration and returns the new display name
func (s *SignupState) Submit() (string, error) {
	name, err := identity.Signup(identity.Registration{
		Username: s.username,
		Email:    s.email,
		Password: s.password,
		Confirm:  s.confirm,
	})
	if err != nil {
		return "", err
	}
	s.password, s.confirm = "", ""
	return name, nil
}

// NewSignupState creates a SignupState
func NewSignupState() *SignupState {
	s := &SignupState{}

	s.form = newModalForm(
		huh.NewInput().
			Title("Username").
			CharLimit(UsernameCharLimit).
			Value(&s.username),
		huh.NewInput().
			Title("Email").
			Placeholder("name@example.com").
			Validate(identity.ValidateEmail).
			Value(&s.email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&s.password),
		huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Validate(func(v string) error {
				return identity.ValidateConfirm(s.password, v)
			}).
			Value(&s.confirm),
	)
	return s
}
