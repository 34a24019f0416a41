package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	authdto "github.com/zhengyang6751/inventory-management-system/internal/auth/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/workflow"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

func (a *App) initLoginForm() {
	a.inputs = make([]textinput.Model, 2)

	a.inputs[0] = textinput.New()
	a.inputs[0].Placeholder = "Email"
	a.inputs[0].Focus()

	a.inputs[1] = textinput.New()
	a.inputs[1].Placeholder = "Password"
	a.inputs[1].EchoMode = textinput.EchoPassword

	a.focusIndex = 0
	a.fieldErrs = nil
}

func (a *App) initRegisterForm() {
	a.inputs = make([]textinput.Model, 3)

	a.inputs[0] = textinput.New()
	a.inputs[0].Placeholder = "Full Name"
	a.inputs[0].Focus()

	a.inputs[1] = textinput.New()
	a.inputs[1].Placeholder = "Email"

	a.inputs[2] = textinput.New()
	a.inputs[2].Placeholder = "Password (min 8 characters)"
	a.inputs[2].EchoMode = textinput.EchoPassword

	a.focusIndex = 0
	a.fieldErrs = nil
}

func (a *App) updateAuth(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		a.cycleFocus(1)
		return nil
	case "shift+tab", "up":
		a.cycleFocus(-1)
		return nil
	case "ctrl+r":
		if a.view == viewLogin {
			a.view = viewRegister
			a.initRegisterForm()
		} else {
			a.view = viewLogin
			a.initLoginForm()
		}
		return textinput.Blink
	case "enter":
		a.notice = workflow.Notice{}
		a.loading = true
		if a.view == viewLogin {
			return a.doLogin()
		}
		return a.doRegister()
	}
	return a.forwardToInputs(msg)
}

func (a *App) doLogin() tea.Cmd {
	input := &authdto.LoginInput{
		Email:    strings.TrimSpace(a.inputs[0].Value()),
		Password: a.inputs[1].Value(),
	}
	return func() tea.Msg {
		user, err := a.authUC.Login(context.Background(), input)
		if err != nil {
			var fieldErrs validate.FieldErrors
			if errors.As(err, &fieldErrs) {
				return fieldErrsMsg{errs: fieldErrs}
			}
			return errMsg{err: fmt.Errorf("login failed: %w", err)}
		}
		return loggedInMsg{user: *user}
	}
}

func (a *App) doRegister() tea.Cmd {
	input := &authdto.RegisterInput{
		FullName: strings.TrimSpace(a.inputs[0].Value()),
		Email:    strings.TrimSpace(a.inputs[1].Value()),
		Password: a.inputs[2].Value(),
	}
	return func() tea.Msg {
		user, err := a.authUC.Register(context.Background(), input)
		if err != nil {
			var fieldErrs validate.FieldErrors
			if errors.As(err, &fieldErrs) {
				return fieldErrsMsg{errs: fieldErrs}
			}
			return errMsg{err: fmt.Errorf("registration failed: %w", err)}
		}
		return loggedInMsg{user: *user}
	}
}

func (a *App) doLogout() tea.Cmd {
	return func() tea.Msg {
		if err := a.authUC.Logout(); err != nil {
			return errMsg{err: err}
		}
		return loggedOutMsg{}
	}
}

func (a *App) viewAuth() string {
	var b strings.Builder

	if a.view == viewLogin {
		b.WriteString(titleStyle.Render(" Inventory Management / Sign In ") + "\n\n")
		labels := []string{"Email:", "Password:"}
		fields := []string{"email", "password"}
		a.renderFormInputs(&b, labels, fields)
		b.WriteString(helpStyle.Render("  enter: sign in • ctrl+r: create an account • ctrl+c: quit"))
	} else {
		b.WriteString(titleStyle.Render(" Inventory Management / Register ") + "\n\n")
		labels := []string{"Full Name:", "Email:", "Password:"}
		fields := []string{"full_name", "email", "password"}
		a.renderFormInputs(&b, labels, fields)
		b.WriteString(helpStyle.Render("  enter: register • ctrl+r: back to sign in • ctrl+c: quit"))
	}

	if a.loading {
		b.WriteString("\n\n  Loading...")
	}
	return boxStyle.Render(b.String())
}

func (a *App) renderFormInputs(b *strings.Builder, labels, fields []string) {
	for i, input := range a.inputs {
		b.WriteString(fmt.Sprintf("  %s\n", labels[i]))
		b.WriteString(fmt.Sprintf("  %s\n", input.View()))
		if msg, ok := a.fieldErrs[fields[i]]; ok {
			b.WriteString("  " + fieldErrorStyle.Render(msg) + "\n")
		}
		b.WriteString("\n")
	}
}

func (a *App) cycleFocus(delta int) {
	if len(a.inputs) == 0 {
		return
	}
	a.inputs[a.focusIndex].Blur()
	a.focusIndex = (a.focusIndex + delta + len(a.inputs)) % len(a.inputs)
	a.inputs[a.focusIndex].Focus()
}

func (a *App) forwardToInputs(msg tea.Msg) tea.Cmd {
	if len(a.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	a.inputs[a.focusIndex], cmd = a.inputs[a.focusIndex].Update(msg)
	return cmd
}
