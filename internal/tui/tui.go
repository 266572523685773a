// Package tui provides a Bubble Tea terminal user interface for chapterup.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/VoxelCubes/ChapterUp/internal/config"
	"github.com/VoxelCubes/ChapterUp/internal/imgur"
	"github.com/VoxelCubes/ChapterUp/internal/model"
	"github.com/VoxelCubes/ChapterUp/internal/scan"
	"github.com/VoxelCubes/ChapterUp/internal/upload"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#85BF25")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#85BF25")).
			Padding(1, 2)

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateToken State = iota
	StateInput
	StateScanning
	StateConfirm
	StateUploading
	StateComplete
	StateError
)

type logLevel int

const (
	levelVerbose logLevel = iota
	levelInfo
	levelSuccess
	levelError
)

// logEntry represents a log message in the UI.
type logEntry struct {
	message string
	level   logLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state      State
	tokenInput textinput.Model
	dirInput   textinput.Model
	titleInput textinput.Model
	focusIndex int
	spinner    spinner.Model
	progress   progress.Model

	settingsPath string
	settings     *config.Settings

	logs   []logEntry
	images []model.ImageFile
	album  *model.Album
	err    error

	// Upload progress
	uploaded int
	total    int
	current  string

	// Options
	public  bool
	order   scan.Order
	verbose bool

	// Run plumbing
	ctx       context.Context
	cancel    context.CancelFunc
	msgCh     chan tea.Msg
	confirmCh chan bool

	width  int
	height int
}

// NewModel creates a new TUI model. The settings file at settingsPath
// decides whether the token screen shows first.
func NewModel(settingsPath string) Model {
	token := textinput.New()
	token.Placeholder = "paste your Imgur access token"
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '*'
	token.CharLimit = 500
	token.Width = 60

	dir := textinput.New()
	dir.Placeholder = "/path/to/images"
	dir.CharLimit = 500
	dir.Width = 60

	title := textinput.New()
	title.Placeholder = "Album title"
	title.CharLimit = 200
	title.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#85BF25"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	state := StateInput
	var loadErr error
	settings, err := config.Load(settingsPath)
	if err != nil {
		settings = config.DefaultSettings()
		state = StateError
		loadErr = err
	}
	if envToken := config.TokenFromEnv(); envToken != "" {
		settings.AccessToken = envToken
	}
	if state == StateInput && settings.AccessToken == "" {
		state = StateToken
	}

	switch state {
	case StateToken:
		token.Focus()
	case StateInput:
		dir.Focus()
	}

	return Model{
		state:        state,
		tokenInput:   token,
		dirInput:     dir,
		titleInput:   title,
		spinner:      sp,
		progress:     prog,
		settingsPath: settingsPath,
		settings:     settings,
		err:          loadErr,
		order:        scan.OrderName,
		logs:         make([]logEntry, 0),
		ctx:          ctx,
		cancel:       cancel,
		msgCh:        make(chan tea.Msg, 32),
		confirmCh:    make(chan bool, 1),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// RunEventMsg carries one Runner progress event into the UI loop.
	RunEventMsg struct {
		Event upload.Event
	}

	// ConfirmRequestMsg asks the user to approve the planned sequence.
	ConfirmRequestMsg struct {
		Images []model.ImageFile
	}

	// RunDoneMsg is sent when the Runner returns.
	RunDoneMsg struct {
		Album *model.Album
		Err   error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateToken, StateInput:
				return m, tea.Quit
			case StateScanning, StateUploading:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			case StateConfirm:
				m.confirmCh <- false
				m.state = StateInput
			}

		case "enter":
			switch m.state {
			case StateToken:
				return m.submitToken()
			case StateInput:
				if m.focusIndex == 0 {
					if strings.TrimSpace(m.dirInput.Value()) != "" {
						m.setFocus(1)
					}
					return m, nil
				}
				if m.readyToStart() {
					m.state = StateScanning
					return m, tea.Batch(m.startRun(), m.spinner.Tick)
				}
			}

		case "tab", "shift+tab", "up", "down":
			if m.state == StateInput {
				m.setFocus((m.focusIndex + 1) % 2)
			}

		case "ctrl+p":
			if m.state == StateInput {
				m.public = !m.public
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.order = nextOrder(m.order)
			}

		case "ctrl+l":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "y":
			if m.state == StateConfirm {
				m.confirmCh <- true
				m.state = StateUploading
				m.total = len(m.images)
			}

		case "n":
			if m.state == StateConfirm {
				m.confirmCh <- false
				m.state = StateInput
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new upload
				m.state = StateInput
				m.logs = nil
				m.images = nil
				m.album = nil
				m.err = nil
				m.uploaded = 0
				m.total = 0
				m.current = ""
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.dirInput.SetValue("")
				m.titleInput.SetValue("")
				m.setFocus(0)
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ConfirmRequestMsg:
		m.images = msg.Images
		m.total = len(msg.Images)
		m.state = StateConfirm
		cmds = append(cmds, m.waitForMsg())

	case RunEventMsg:
		cmds = append(cmds, m.handleRunEvent(msg.Event)...)
		cmds = append(cmds, m.waitForMsg())

	case RunDoneMsg:
		switch {
		case msg.Err == nil:
			m.album = msg.Album
			m.state = StateComplete
		case errors.Is(msg.Err, upload.ErrAborted):
			m.state = StateInput
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		default:
			m.state = StateError
			m.err = msg.Err
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update the focused text input
	switch m.state {
	case StateToken:
		var cmd tea.Cmd
		m.tokenInput, cmd = m.tokenInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateInput:
		var cmd tea.Cmd
		if m.focusIndex == 0 {
			m.dirInput, cmd = m.dirInput.Update(msg)
		} else {
			m.titleInput, cmd = m.titleInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleRunEvent folds one Runner event into the model.
func (m *Model) handleRunEvent(event upload.Event) []tea.Cmd {
	var cmds []tea.Cmd

	switch event.Stage {
	case upload.StageUploading:
		m.current = event.Image.Name
		m.addLog(fmt.Sprintf("Uploading %s (%d/%d)", event.Image.Name, event.Index+1, event.Total), levelVerbose)

	case upload.StageUploaded:
		m.uploaded = event.Index + 1
		m.total = event.Total
		m.addLog(fmt.Sprintf("%s uploaded", event.Image.Name), levelSuccess)
		if event.Total > 0 {
			cmds = append(cmds, m.progress.SetPercent(float64(m.uploaded)/float64(event.Total)))
		}

	case upload.StageCreatingAlbum:
		m.current = ""
		m.addLog("Creating album...", levelInfo)

	case upload.StageFailed:
		if event.Err != nil {
			m.addLog(event.Err.Error(), levelError)
		}
	}

	return cmds
}

// addLog appends a log line, honoring the verbose toggle.
func (m *Model) addLog(message string, level logLevel) {
	if level == levelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, logEntry{message: message, level: level})
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// submitToken validates and persists the pasted token.
func (m Model) submitToken() (tea.Model, tea.Cmd) {
	token := strings.TrimSpace(m.tokenInput.Value())
	if token == "" {
		return m, nil
	}

	m.settings.AccessToken = token
	if err := m.settings.Save(m.settingsPath); err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	m.state = StateInput
	m.tokenInput.Blur()
	m.setFocus(0)
	return m, nil
}

// setFocus moves keyboard focus between the directory and title fields.
func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == 0 {
		m.dirInput.Focus()
		m.titleInput.Blur()
	} else {
		m.titleInput.Focus()
		m.dirInput.Blur()
	}
}

func (m Model) readyToStart() bool {
	return strings.TrimSpace(m.dirInput.Value()) != "" &&
		strings.TrimSpace(m.titleInput.Value()) != ""
}

func nextOrder(order scan.Order) scan.Order {
	switch order {
	case scan.OrderName:
		return scan.OrderNatural
	case scan.OrderNatural:
		return scan.OrderTaken
	default:
		return scan.OrderName
	}
}

// waitForMsg pulls the next message the run goroutine produced.
func (m Model) waitForMsg() tea.Cmd {
	return func() tea.Msg { return <-m.msgCh }
}

// startRun launches the Runner in the background. Its confirmation
// callback parks the run until the user answers on the confirm screen.
func (m *Model) startRun() tea.Cmd {
	ctx := m.ctx
	msgCh := m.msgCh
	confirmCh := m.confirmCh

	confirm := func(images []model.ImageFile) (bool, error) {
		msgCh <- ConfirmRequestMsg{Images: images}
		select {
		case ok := <-confirmCh:
			return ok, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	onEvent := func(event upload.Event) {
		msgCh <- RunEventMsg{Event: event}
	}

	privacy := model.PrivacyHidden
	if m.public {
		privacy = model.PrivacyPublic
	}

	runner := upload.NewRunner(imgur.NewClient(m.settings.AccessToken), confirm, onEvent)
	req := upload.Request{
		Dir:     strings.TrimSpace(m.dirInput.Value()),
		Title:   strings.TrimSpace(m.titleInput.Value()),
		Order:   m.order,
		Privacy: privacy,
	}

	go func() {
		album, err := runner.Run(ctx, req)
		msgCh <- RunDoneMsg{Album: album, Err: err}
	}()

	return m.waitForMsg()
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📷 ChapterUp"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Upload ordered image albums to Imgur"))
	b.WriteString("\n\n")

	switch m.state {
	case StateToken:
		b.WriteString(m.viewToken())
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateConfirm:
		b.WriteString(m.viewConfirm())
	case StateUploading:
		b.WriteString(m.viewUploading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewToken() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("No Imgur access token is configured."))
	b.WriteString("\n\n")
	b.WriteString(m.tokenInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("The token will be stored in %s", m.settingsPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Directory to upload:"))
	b.WriteString("\n")
	b.WriteString(m.dirInput.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Album title:"))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")

	// Options
	publicCheck := "[ ]"
	if m.public {
		publicCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Public album (ctrl+p)\n", publicCheck))
	b.WriteString(fmt.Sprintf("  Sort order: %s (ctrl+o)\n", m.order))
	b.WriteString(fmt.Sprintf("  %s Verbose log (ctrl+l)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Settings: %s", m.settingsPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning for images..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewConfirm() string {
	var b strings.Builder

	var totalBytes int64
	for _, img := range m.images {
		totalBytes += img.Size
	}
	b.WriteString(successStyle.Render(fmt.Sprintf(
		"Found %d images (%.2f MB):", len(m.images), float64(totalBytes)/1024/1024)))
	b.WriteString("\n")

	const maxListed = 15
	for i, img := range m.images {
		if i == maxListed {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(m.images)-maxListed)))
			b.WriteString("\n")
			break
		}
		b.WriteString(pageStyle.Render(fmt.Sprintf("  %2d. %s", i+1, img.Name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	privacy := "hidden"
	if m.public {
		privacy = "public"
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Album: %s | privacy: %s | order: %s",
		strings.TrimSpace(m.titleInput.Value()), privacy, m.order)))
	b.WriteString("\n\n")
	b.WriteString(warningStyle.Render("Upload these in this order? (y/n)"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewUploading() string {
	var b strings.Builder

	var percent float64
	if m.total > 0 {
		percent = float64(m.uploaded) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	line := fmt.Sprintf("Images: %d/%d", m.uploaded, m.total)
	if m.current != "" {
		line += " | " + m.current
	}
	b.WriteString(infoStyle.Render(line))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.album == nil {
		return b.String()
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Album created!\n\n"+
			"Images: %d\n"+
			"Album id: %s\n"+
			"%s",
		len(m.album.ImageIDs),
		m.album.ID,
		m.album.URL(),
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.level {
		case levelError:
			style = errorStyle
			prefix = "✗"
		case levelSuccess:
			style = successStyle
			prefix = "✓"
		case levelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateToken:
		return "enter: save token • esc: quit"
	case StateInput:
		return "enter: next/start • tab: switch field • ctrl+p: public • ctrl+o: order • ctrl+l: verbose • esc: quit"
	case StateScanning, StateUploading:
		return "esc: cancel"
	case StateConfirm:
		return "y: upload • n: back"
	case StateComplete, StateError:
		return "r: new upload • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settingsPath string) error {
	p := tea.NewProgram(NewModel(settingsPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
