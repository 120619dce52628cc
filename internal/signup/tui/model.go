package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/signup/internal/logging"
	"github.com/muurk/signup/internal/signup"
	"github.com/muurk/signup/internal/urls"
)

// Focus positions after the four inputs
const (
	focusToggle = int(signup.FieldConfirmPassword) + 1 + iota
	focusSubmit
	focusCount
)

// inputCharLimit caps every text input
const inputCharLimit = 128

// submissionDoneMsg is delivered once the simulated submission delay has elapsed
type submissionDoneMsg struct{}

// Model is the interactive signup form
type Model struct {
	form    *signup.Form
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	alert   string

	keys      formKeyMap
	alertKeys alertKeyMap
	help      help.Model

	Width  int
	Height int
}

// NewModel creates an empty form for the given variant. A non-positive
// delay uses signup.DefaultSubmitDelay.
func NewModel(variant signup.Variant, delay time.Duration) Model {
	inputs := make([]textinput.Model, len(signup.AllFields))
	for i, field := range signup.AllFields {
		ti := textinput.New()
		ti.Placeholder = field.Placeholder()
		ti.CharLimit = inputCharLimit
		ti.Width = FormWidth - 4
		ti.Prompt = ""
		if field.IsSecret() {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return Model{
		form:      signup.NewForm(variant, delay),
		inputs:    inputs,
		spinner:   s,
		keys:      newFormKeyMap(),
		alertKeys: newAlertKeyMap(),
		help:      help.New(),
		Width:     DefaultWidth,
		Height:    DefaultHeight,
	}
}

// Form returns the underlying form state
func (m Model) Form() *signup.Form {
	return m.form
}

// Alert returns the success notice currently shown, or "" if none
func (m Model) Alert() string {
	return m.alert
}

// Focused returns the index of the focused control. Indexes below
// len(signup.AllFields) are inputs.
func (m Model) Focused() int {
	return m.focus
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case submissionDoneMsg:
		return m.completeSubmission()

	case spinner.TickMsg:
		if !m.form.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != "" {
			// The alert blocks the form until acknowledged
			if key.Matches(msg, m.alertKeys.Dismiss) {
				m.alert = ""
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)

	case key.Matches(msg, m.keys.Toggle):
		m.togglePassword()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.focus == focusToggle {
			m.togglePassword()
			return m, nil
		}
		return m.submit()
	}

	return m.updateFocusedInput(msg)
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = (m.focus + delta + focusCount) % focusCount

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

func (m *Model) togglePassword() {
	m.form.TogglePasswordVisibility()

	mode := textinput.EchoPassword
	if m.form.PasswordVisible() {
		mode = textinput.EchoNormal
	}
	for i, field := range signup.AllFields {
		if field.IsSecret() {
			m.inputs[i].EchoMode = mode
		}
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	result := m.form.Submit()

	switch result.Outcome {
	case signup.OutcomeSucceeded:
		m.alert = result.Notice
		return m, nil

	case signup.OutcomePending:
		return m, tea.Batch(
			tea.Tick(result.Delay, func(time.Time) tea.Msg { return submissionDoneMsg{} }),
			m.spinner.Tick,
		)
	}

	// Rejected errors render inline; Ignored changes nothing
	return m, nil
}

func (m Model) completeSubmission() (tea.Model, tea.Cmd) {
	notice, err := m.form.CompleteSubmission()
	if err != nil {
		logging.Warn("Stale submission timer", zap.Error(err))
		return m, nil
	}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.alert = notice
	return m, nil
}

// updateFocusedInput forwards msg to the focused text input and mirrors any
// value change into the form
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		m.form.Change(signup.AllFields[m.focus], after)
	}
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.alert != "" {
		modal := lipgloss.JoinVertical(
			lipgloss.Center,
			AlertStyle.Render(m.alert),
			"",
			BuildFooterContent(m.help.View(m.alertKeys)),
		)
		return RenderModal(modal, m.Width, m.Height)
	}

	return RenderApplicationContainer(m.renderForm(), m.help.View(m.keys), m.Width, m.Height)
}

func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Create Account"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Sign up to get started"))
	b.WriteString("\n\n")

	errs := m.form.Errors()
	for i, field := range signup.AllFields {
		label, box := LabelStyle, InputBoxStyle
		switch {
		case errs.Has(field):
			box = InvalidInputBoxStyle
		case i == m.focus:
			box = FocusedInputBoxStyle
		}
		if i == m.focus {
			label = FocusedLabelStyle
		}

		b.WriteString(label.Render(field.Label()))
		b.WriteString("\n")
		b.WriteString(box.Render(m.inputs[i].View()))
		b.WriteString("\n")
		if msg := errs.Get(field); msg != "" {
			b.WriteString(FieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	toggleText := "[ ] Show password"
	if m.form.PasswordVisible() {
		toggleText = "[x] Show password"
	}
	toggle := ToggleStyle
	if m.focus == focusToggle {
		toggle = FocusedToggleStyle
	}
	b.WriteString(toggle.Render(toggleText))
	b.WriteString("\n\n")

	switch {
	case m.form.Submitting():
		b.WriteString(DisabledButtonStyle.Render(m.spinner.View() + " Creating account..."))
	case m.focus == focusSubmit:
		b.WriteString(FocusedButtonStyle.Render("Create Account"))
	default:
		b.WriteString(ButtonStyle.Render("Create Account"))
	}
	b.WriteString("\n\n")

	b.WriteString(SubtitleStyle.Render("Already have an account? "))
	b.WriteString(LinkStyle.Render("Sign in"))
	b.WriteString(SubtitleStyle.Render(" " + urls.SignIn))

	return b.String()
}
