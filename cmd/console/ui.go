package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/internal/session"
)

const PlaceHolderText = "What now?"

type entryKind int

const (
	entryGame entryKind = iota
	entryPlayer
	entryError
	entryInfo
)

type entry struct {
	kind entryKind
	text string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	games        *session.Manager
	gameID       uuid.UUID
	snapshot     session.Snapshot
	transcript   []entry
	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	busy         bool

	showQuitModal bool
}

type turnMsg struct {
	input  string
	result *session.Result
	err    error
}

type resetMsg struct {
	result *session.Result
	err    error
}

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // amber
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	finishedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const helpText = `Console commands:
• /help  - Show this help
• /reset - Start over with a fresh game
• /quit  - Leave (your game is saved)

Type commands of one or two words, like WEST, TAKE LAMP or
INVENTORY. Only the first five letters of each word matter.`

func NewConsoleUI(games *session.Manager, start *session.Result) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true

	return ConsoleUI{
		games:        games,
		gameID:       start.Snapshot.ID,
		snapshot:     start.Snapshot,
		transcript:   []entry{{kind: entryGame, text: start.Text}},
		textarea:     ta,
		gameViewport: gameVp,
		metaViewport: viewport.New(20, 20),
	}
}

// renderTranscript formats every entry for the given content width.
func renderTranscript(entries []entry, width int) string {
	if width < 10 {
		width = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("COLOSSAL CAVE") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	for _, e := range entries {
		switch e.kind {
		case entryPlayer:
			content.WriteString(playerStyle.Render("> "+wordwrap.String(e.text, width-2)) + "\n\n")
		case entryError:
			content.WriteString(errorStyle.Render("Error: "+wordwrap.String(e.text, width-7)) + "\n\n")
		case entryInfo:
			content.WriteString(promptStyle.Render(wordwrap.String(e.text, width)) + "\n\n")
		default:
			content.WriteString(gameStyle.Render(wordwrap.String(e.text, width)) + "\n\n")
		}
	}
	return content.String()
}

func writeMetadata(s session.Snapshot, width int) string {
	if width < 10 {
		width = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("STATUS") + "\n\n")

	content.WriteString(labelStyle.Render("Game") + "\n")
	content.WriteString(s.ID.String()[:8] + "\n\n")

	content.WriteString(labelStyle.Render("Location") + "\n")
	content.WriteString(wordwrap.String(s.Location, width) + "\n\n")

	content.WriteString(labelStyle.Render("Score") + "\n")
	content.WriteString(fmt.Sprintf("%d of %d\n\n", s.Score, s.MaxScore))

	content.WriteString(labelStyle.Render("Turns") + "\n")
	content.WriteString(fmt.Sprintf("%d\n\n", s.Turns))

	if s.Deaths > 0 {
		content.WriteString(labelStyle.Render("Deaths") + "\n")
		content.WriteString(fmt.Sprintf("%d\n\n", s.Deaths))
	}

	content.WriteString(labelStyle.Render("Exits") + "\n")
	if len(s.Exits) == 0 {
		content.WriteString("None you can see\n\n")
	} else {
		content.WriteString(wordwrap.String(strings.Join(s.Exits, ", "), width) + "\n\n")
	}

	content.WriteString(labelStyle.Render("Carrying") + "\n")
	if len(s.Inventory) == 0 {
		content.WriteString("Nothing\n")
	}
	for _, item := range s.Inventory {
		content.WriteString(wordwrap.String("• "+item, width) + "\n")
	}

	if s.IsFinished {
		content.WriteString("\n" + finishedStyle.Render("GAME OVER") + "\n")
		content.WriteString("Type /reset to play again.\n")
	}

	return content.String()
}

func (m *ConsoleUI) refresh() {
	m.gameViewport.SetContent(renderTranscript(m.transcript, m.gameViewport.Width-6))
	m.gameViewport.GotoBottom()
	m.metaViewport.SetContent(writeMetadata(m.snapshot, m.metaViewport.Width))
}

func (m *ConsoleUI) layout() {
	gameWidth := int(float64(m.width)*0.72) - 4
	metaWidth := m.width - gameWidth - 6

	m.gameViewport.Width = gameWidth - 2
	m.gameViewport.Height = m.height - 5
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(gameWidth - 4)
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.gameViewport, vpCmd = m.gameViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if strings.HasPrefix(input, "/") {
				return m.handleConsoleCommand(input)
			}
			m.busy = true
			return m, m.playTurn(input)
		}

	case turnMsg:
		m.busy = false
		m.transcript = append(m.transcript, entry{kind: entryPlayer, text: msg.input})
		if msg.err != nil {
			m.transcript = append(m.transcript, entry{kind: entryError, text: msg.err.Error()})
		} else {
			m.snapshot = msg.result.Snapshot
			m.transcript = append(m.transcript, entry{kind: entryGame, text: msg.result.Text})
		}
		m.refresh()
		return m, nil

	case resetMsg:
		m.busy = false
		if msg.err != nil {
			m.transcript = append(m.transcript, entry{kind: entryError, text: msg.err.Error()})
		} else {
			m.snapshot = msg.result.Snapshot
			m.transcript = []entry{
				{kind: entryInfo, text: "A new game begins."},
				{kind: entryGame, text: msg.result.Text},
			}
		}
		m.refresh()
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m ConsoleUI) handleConsoleCommand(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/help":
		m.transcript = append(m.transcript, entry{kind: entryInfo, text: helpText})
	case "/reset":
		m.busy = true
		return m, m.resetGame()
	case "/quit", "/exit":
		return m, tea.Quit
	default:
		m.transcript = append(m.transcript, entry{kind: entryError, text: "Unknown console command " + input + ". Try /help."})
	}
	m.refresh()
	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

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

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the cave?"))
	content.WriteString("\n\n")
	content.WriteString("Your game is saved and can be resumed later with\n")
	content.WriteString("ADVENTURE_GAME_ID=" + m.gameID.String())
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	gameWidth := int(float64(m.width)*0.72) - 4
	metaWidth := m.width - gameWidth - 6

	gamePanel := gamePanelStyle.Width(gameWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.gameViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(gameWidth-4, 1))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, metaPanel)
}
