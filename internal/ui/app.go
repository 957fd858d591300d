package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillhq/quill/internal/blogapi"
	"github.com/quillhq/quill/internal/profile"
)

// Form fields in focus order.
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldAvatar
	fieldCount
)

// navigateHomeDelay keeps the success notice on screen before the editor
// exits. Purely cosmetic.
const navigateHomeDelay = 1500 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context context.Context
	Service blogapi.ProfileService
	Engine  *profile.Engine
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx     context.Context
	service blogapi.ProfileService
	engine  *profile.Engine

	// UI state
	theme        Theme
	keys         keyMap
	help         help.Model
	inputs       [fieldCount]textinput.Model
	focus        int
	spin         spinner.Model
	notice       profile.Notice
	showPassword bool
	width        int
	height       int
}

// New creates a new Bubble Tea model over a mounted engine.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	theme := defaultTheme()
	styles := theme.Styles()

	name := textinput.New()
	name.Placeholder = "Your full name"
	name.CharLimit = 64
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "your.email@example.com"
	email.CharLimit = 128
	email.Prompt = ""

	password := textinput.New()
	password.Placeholder = "leave empty to keep current"
	password.CharLimit = 128
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	avatar := textinput.New()
	avatar.Placeholder = "path to an image file, max 5MB"
	avatar.CharLimit = 512
	avatar.Prompt = ""

	m := Model{
		ctx:     ctx,
		service: opts.Service,
		engine:  opts.Engine,
		theme:   theme,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.AccentText)),
	}
	m.inputs[fieldName] = name
	m.inputs[fieldEmail] = email
	m.inputs[fieldPassword] = password
	m.inputs[fieldAvatar] = avatar
	m.syncInputs()
	m.setFocus(fieldName)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		m.fetchCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		if notice := m.engine.ApplyFetch(msg.profile, msg.err); notice.Level != profile.LevelNone {
			m.notice = notice
		}
		m.syncInputs()
		return m, nil

	case avatarEncodedMsg:
		if notice := m.engine.ApplyAvatarEncode(msg.gen, msg.dataURL, msg.err); notice.Level != profile.LevelNone {
			m.notice = notice
		}
		return m, nil

	case saveDoneMsg:
		notice, leave := m.engine.ApplySave(msg.profile, msg.err)
		if notice.Level != profile.LevelNone {
			m.notice = notice
		}
		if leave {
			m.syncInputs()
			return m, goHomeCmd()
		}
		return m, nil

	case goHomeMsg:
		if m.engine.Phase() == profile.PhaseLeaving {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Once the save has succeeded the editor is on its way out; further
	// edits must not land anywhere.
	if m.engine.Phase() == profile.PhaseLeaving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		// Navigate home without applying the draft.
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.TogglePassword):
		m.showPassword = !m.showPassword
		if m.showPassword {
			m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
		} else {
			m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.startSave()

	case key.Matches(msg, m.keys.Attach) && m.focus == fieldAvatar:
		return m.startAvatarEncode()
	}

	return m.updateFocusedInput(msg)
}

// startSave runs the save entry guard and launches the request when allowed.
// The binding is a silent no-op while a save or encode is in flight, which
// is the disabled-control behavior.
func (m Model) startSave() (tea.Model, tea.Cmd) {
	req, notice, ok := m.engine.BeginSave()
	if notice.Level != profile.LevelNone {
		m.notice = notice
	}
	if !ok {
		return m, nil
	}
	m.notice = profile.Notice{}
	return m, tea.Batch(m.saveCmd(req), m.spin.Tick)
}

// startAvatarEncode kicks off the file read for the typed path.
func (m Model) startAvatarEncode() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.inputs[fieldAvatar].Value())
	if path == "" {
		return m, nil
	}
	gen, ok := m.engine.BeginAvatarEncode()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(encodeAvatarCmd(path, gen), m.spin.Tick)
}

// updateFocusedInput routes the message to the focused field and pushes the
// edited values into the engine's draft.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	m.engine.SetName(m.inputs[fieldName].Value())
	m.engine.SetEmail(m.inputs[fieldEmail].Value())
	m.engine.SetPassword(m.inputs[fieldPassword].Value())
	return m, cmd
}

// syncInputs resets the field contents from the engine's draft. Called when
// a new server profile is installed (fetch or save success).
func (m *Model) syncInputs() {
	draft := m.engine.Draft()
	m.inputs[fieldName].SetValue(draft.Name)
	m.inputs[fieldEmail].SetValue(draft.Email)
	m.inputs[fieldPassword].SetValue(draft.Password)
}

func (m *Model) setFocus(idx int) {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// Messages

type fetchDoneMsg struct {
	profile *blogapi.Profile
	err     error
}

type saveDoneMsg struct {
	profile *blogapi.Profile
	err     error
}

type avatarEncodedMsg struct {
	gen     int
	dataURL string
	err     error
}

type goHomeMsg struct{}

// Commands

func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.service.FetchProfile(m.ctx)
		return fetchDoneMsg{profile: p, err: err}
	}
}

func (m Model) saveCmd(req blogapi.UpdateRequest) tea.Cmd {
	return func() tea.Msg {
		p, err := m.service.UpdateProfile(m.ctx, req)
		return saveDoneMsg{profile: p, err: err}
	}
}

func encodeAvatarCmd(path string, gen int) tea.Cmd {
	return func() tea.Msg {
		dataURL, err := profile.EncodeAvatar(path)
		return avatarEncodedMsg{gen: gen, dataURL: dataURL, err: err}
	}
}

func goHomeCmd() tea.Cmd {
	return tea.Tick(navigateHomeDelay, func(time.Time) tea.Msg {
		return goHomeMsg{}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
