package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cimforge/internal/cli/formatter"
	"cimforge/internal/domain"
	"cimforge/internal/llm"
)

// replyMsg carries an assistant turn back into the bubbletea loop.
type replyMsg struct {
	text string
	err  error
}

// chatModel is the bubbletea Model for the interactive chat REPL.
type chatModel struct {
	input   textinput.Model
	app     *App
	history []llm.Message
	lines   []string
	waiting bool
	width   int
	quit    bool
}

func newChatModel(app *App) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Talk to your deal advisor (/help for commands)"
	ti.Prompt = formatter.StyleHeader.Render("> ")
	ti.Focus()
	ti.CharLimit = 0

	m := chatModel{input: ti, app: app}
	m.lines = append(m.lines,
		formatter.Header("cimforge chat"),
		formatter.Dim("Stage: "+string(app.Session.State().Stage())),
	)
	return m
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.lines = append(m.lines, formatter.StyleRed.Render("error: "+msg.err.Error()))
			return m, nil
		}
		m.history = append(m.history, llm.Message{Role: llm.RoleAssistant, Content: msg.text})
		m.lines = append(m.lines, formatter.StyleFg.Render(msg.text), "")
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if strings.HasPrefix(line, "/") {
				return m.handleSlash(line)
			}
			return m.sendTurn(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSlash dispatches local commands that touch session state directly
// instead of going through the model.
func (m chatModel) handleSlash(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/q":
		m.quit = true
		return m, tea.Quit

	case "/help":
		m.lines = append(m.lines, formatter.Dim(
			"/status  workflow position\n/advance  move to the next stage\n/back <stage>  navigate backward\n/prompt  cache split sizes\n/quit  leave"))
		return m, nil

	case "/status":
		m.lines = append(m.lines, formatter.RenderWorkflow(m.app.Session.State().Progress))
		return m, nil

	case "/advance":
		if err := m.app.Session.Advance(); err != nil {
			m.lines = append(m.lines, formatter.StyleRed.Render(err.Error()))
			return m, nil
		}
		m.lines = append(m.lines, formatter.StyleGreen.Render(
			"Advanced to "+string(m.app.Session.State().Stage())))
		return m, nil

	case "/back":
		if len(fields) < 2 {
			m.lines = append(m.lines, formatter.StyleRed.Render("usage: /back <stage>"))
			return m, nil
		}
		target := domain.WorkflowStage(fields[1])
		if err := m.app.Session.NavigateTo(target); err != nil {
			m.lines = append(m.lines, formatter.StyleRed.Render(err.Error()))
			return m, nil
		}
		m.lines = append(m.lines, formatter.StyleYellow.Render(
			"Back to "+string(target)+"; prior work is preserved"))
		return m, nil

	case "/prompt":
		p := m.app.Compiler.SystemPromptForCaching(m.app.Session.State())
		m.lines = append(m.lines, formatter.RenderCachedPromptSummary(p))
		return m, nil

	default:
		m.lines = append(m.lines, formatter.StyleRed.Render("unknown command "+fields[0]))
		return m, nil
	}
}

// sendTurn records the user message and fires the LLM call as a tea.Cmd.
func (m chatModel) sendTurn(line string) (tea.Model, tea.Cmd) {
	m.history = append(m.history, llm.Message{Role: llm.RoleUser, Content: line})
	m.lines = append(m.lines, formatter.StyleBlue.Render("you: ")+line)
	m.waiting = true

	p := m.app.Compiler.SystemPromptForCaching(m.app.Session.State())
	req := llm.ChatRequest{
		StaticSystem:  p.Static,
		DynamicSystem: p.Dynamic,
		Messages:      append([]llm.Message(nil), m.history...),
	}
	client := m.app.Chat

	return m, func() tea.Msg {
		resp, err := client.Chat(context.Background(), req)
		if err != nil {
			return replyMsg{err: err}
		}
		return replyMsg{text: resp.Text}
	}
}

func (m chatModel) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Join(m.lines, "\n"))
	b.WriteString("\n\n")
	if m.waiting {
		b.WriteString(formatter.Dim("thinking...") + "\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
