package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/pkg/contract"
)

const PlaceHolderText = "Type a command..."

// GameUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	config        *TUIConfig
	client        *http.Client
	sessionID     string
	lastResp      *contract.PlayResponse
	story         []string
	storyViewport viewport.Model
	mapViewport   viewport.Model
	textarea      textarea.Model
	ready         bool
	width         int
	height        int
	err           error
	loading       bool

	// Title selection state
	showTitleModal bool
	titles         []contract.TitleInfo
	selectedTitle  int
	loadingTitles  bool

	// Quit confirmation state
	showQuitModal bool
}

type titlesLoadedMsg struct {
	titles []contract.TitleInfo
	err    error
}

type playResultMsg struct {
	resp *contract.PlayResponse
	err  error
}

var (
	storyPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	mapPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewGameUI(cfg *TUIConfig, client *http.Client) GameUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	storyVp := viewport.New(50, 20)
	storyVp.MouseWheelEnabled = true

	mapVp := viewport.New(30, 20)

	return GameUI{
		config:         cfg,
		client:         client,
		textarea:       ta,
		storyViewport:  storyVp,
		mapViewport:    mapVp,
		showTitleModal: true,
		loadingTitles:  true,
	}
}

func (m GameUI) Init() tea.Cmd {
	if m.showTitleModal {
		return m.loadTitles()
	}
	return textarea.Blink
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showTitleModal {
		return m.updateTitleModal(msg)
	}
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.storyViewport, vpCmd = m.storyViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.mapViewport, mvCmd = m.mapViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.writeStoryContent()
		m.writeMapContent()
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.loading = true
			m.story = append(m.story, userStyle.Render("> "+input))
			m.writeStoryContent()
			return m, m.sendCommand(input)
		}

	case playResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.story = append(m.story, errorStyle.Render("Error: "+msg.err.Error()))
			m.writeStoryContent()
			return m, nil
		}
		m.applyResponse(msg.resp)
		m.writeStoryContent()
		m.writeMapContent()
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.storyViewport, vpCmd = m.storyViewport.Update(msg)
	m.mapViewport, mvCmd = m.mapViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *GameUI) layout() {
	storyWidth := int(float64(m.width)*0.65) - 4
	mapWidth := m.width - storyWidth - 6

	m.storyViewport.Width = storyWidth - 2
	m.storyViewport.Height = m.height - 7
	m.mapViewport.Width = mapWidth - 2
	m.mapViewport.Height = m.height - 4
	m.textarea.SetWidth(storyWidth - 4)
}

// applyResponse folds one engine turn into the story log and cached
// status.
func (m *GameUI) applyResponse(resp *contract.PlayResponse) {
	if resp.SessionID == contract.ErrorSessionID {
		m.story = append(m.story, errorStyle.Render(resp.CommandResponse))
		return
	}
	m.lastResp = resp
	if resp.WelcomeText != "" {
		m.story = append(m.story, titleStyle.Render(resp.WelcomeText))
	}
	if resp.CommandResponse != "" {
		m.story = append(m.story, narratorStyle.Render(resp.CommandResponse))
	}
	if resp.ItemsInRoom != "" {
		m.story = append(m.story, resp.ItemsInRoom)
	}
	if resp.GameCompleted {
		m.story = append(m.story,
			titleStyle.Render(fmt.Sprintf("You have won! Final score: %d points.", resp.Points)))
	} else if resp.PlayerDead {
		m.story = append(m.story,
			errorStyle.Render(fmt.Sprintf("Game over. Final score: %d points.", resp.Points)))
	}
}

func (m *GameUI) writeStoryContent() {
	storyWidth := m.storyViewport.Width - 6
	if storyWidth < 10 {
		storyWidth = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURE ENGINE") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", storyWidth)) + "\n\n")
	for _, line := range m.story {
		content.WriteString(wordwrap.String(line, storyWidth) + "\n\n")
	}
	if m.loading {
		content.WriteString(loadingStyle.Render("...") + "\n")
	}

	m.storyViewport.SetContent(content.String())
	m.storyViewport.GotoBottom()
}

func (m *GameUI) writeMapContent() {
	var content strings.Builder
	content.WriteString(titleStyle.Render("MAP") + "\n\n")

	if m.lastResp != nil {
		if m.lastResp.Map != nil {
			content.WriteString(m.lastResp.Map.CurrentLevelName + "\n\n")
		}
		if m.lastResp.MapText != "" {
			content.WriteString(m.lastResp.MapText + "\n\n")
		}
		if m.lastResp.Map != nil {
			content.WriteString(fmt.Sprintf("Rooms found: %d\n\n", m.lastResp.Map.VisitedRoomCount))
		}
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• help: Game help\n")
	content.WriteString("• map: Redraw map\n")

	m.mapViewport.SetContent(content.String())
}

func (m GameUI) statusBar() string {
	if m.lastResp == nil {
		return ""
	}
	return statusStyle.Render(fmt.Sprintf(" %s | Health: %s | Points: %d ",
		m.lastResp.RoomName, m.lastResp.HealthBand, m.lastResp.Points))
}

func (m GameUI) sendCommand(input string) tea.Cmd {
	return func() tea.Msg {
		resp, err := play(m.client, m.config.APIBaseURL, &contract.PlayRequest{
			SessionID: m.sessionID,
			Command:   input,
		})
		return playResultMsg{resp, err}
	}
}

func (m GameUI) loadTitles() tea.Cmd {
	return func() tea.Msg {
		titles, err := listTitles(m.client, m.config.APIBaseURL)
		return titlesLoadedMsg{titles, err}
	}
}

func (m GameUI) startGame(titleID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := play(m.client, m.config.APIBaseURL, &contract.PlayRequest{
			TitleID: titleID,
		})
		return playResultMsg{resp, err}
	}
}

func (m GameUI) updateTitleModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case titlesLoadedMsg:
		m.loadingTitles = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.titles = msg.titles
		}

	case playResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.resp.SessionID == contract.ErrorSessionID {
			m.err = fmt.Errorf("%s", msg.resp.CommandResponse)
			return m, nil
		}
		m.sessionID = msg.resp.SessionID
		m.applyResponse(msg.resp)
		m.showTitleModal = false
		if m.width > 0 && m.height > 0 {
			m.layout()
		}
		m.writeStoryContent()
		m.writeMapContent()
		m.textarea.Focus()
		m.ready = true
		return m, textarea.Blink

	case tea.KeyMsg:
		if m.loadingTitles || m.loading {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.err != nil {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.selectedTitle > 0 {
				m.selectedTitle--
			}
		case tea.KeyDown:
			if m.selectedTitle < len(m.titles)-1 {
				m.selectedTitle++
			}
		case tea.KeyEnter:
			if len(m.titles) > 0 {
				m.loading = true
				return m, m.startGame(m.titles[m.selectedTitle].ID)
			}
		}
	}

	return m, nil
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m GameUI) renderTitleModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	switch {
	case m.loadingTitles:
		content.WriteString(modalTitleStyle.Render("Loading Titles..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Please wait while we fetch the library..."))
	case m.err != nil:
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(m.err.Error()))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	case m.loading:
		content.WriteString(modalTitleStyle.Render("Starting Game..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Setting up your adventure..."))
	default:
		content.WriteString(modalTitleStyle.Render("Select a Title"))
		content.WriteString("\n\n")
		for i, t := range m.titles {
			label := fmt.Sprintf("%s — %s", t.Name, t.Description)
			if i == m.selectedTitle {
				content.WriteString(modalSelectedItemStyle.Render("▶ " + label))
			} else {
				content.WriteString(modalItemStyle.Render("  " + label))
			}
			content.WriteString("\n")
		}
		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) View() string {
	if m.showTitleModal {
		return m.renderTitleModal()
	}
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	storyWidth := int(float64(m.width)*0.65) - 4
	mapWidth := m.width - storyWidth - 6

	storyPanel := storyPanelStyle.Width(storyWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.storyViewport.View(),
			"",
			m.statusBar(),
			separatorStyle.Render(strings.Repeat("─", max(storyWidth-4, 1))),
			m.textarea.View(),
		),
	)

	mapPanel := mapPanelStyle.Width(mapWidth).Height(m.height - 2).Render(
		m.mapViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, storyPanel, mapPanel)
}
