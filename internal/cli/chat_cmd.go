package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwhelan/solace/internal/analysis"
	"github.com/mwhelan/solace/internal/cli/formatter"
	"github.com/mwhelan/solace/internal/intelligence"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var once string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk with the companion",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if once != "" {
				reply := chatReply(ctx, app, nil, once)
				fmt.Println(reply)
				return nil
			}

			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("chat needs a terminal; use --once TEXT otherwise")
			}

			model := newChatModel(app)
			program := tea.NewProgram(model)
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&once, "once", "", "Send a single message and print the reply")

	return cmd
}

// chatReply resolves one reply, through the companion when wired, otherwise
// straight from the analyzer.
func chatReply(ctx context.Context, app *App, conv *intelligence.Conversation, message string) string {
	if app.Companion != nil {
		if reply, err := app.Companion.Reply(ctx, conv, message); err == nil {
			return reply.Text
		}
	}
	return app.Analyzer.Respond(message)
}

// isFarewell reports whether the message closes the conversation.
func isFarewell(app *App, message string) bool {
	for _, cat := range app.Analyzer.DetectPatterns(message) {
		if cat == analysis.CategoryFarewell {
			return true
		}
	}
	return false
}

type chatReplyMsg struct {
	text     string
	farewell bool
}

// chatModel is the bubbletea Model for the interactive chat loop.
type chatModel struct {
	input textinput.Model
	app   *App
	conv  *intelligence.Conversation

	lines   []string
	waiting bool
	width   int
}

func newChatModel(app *App) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Type how you're feeling, or \"bye\" to leave"
	ti.Focus()
	ti.CharLimit = 500

	greeting := intelligence.DeterministicGreeting(buildGreetingContext(context.Background(), app))
	if app.Companion != nil {
		if reply, err := app.Companion.Greeting(context.Background(), buildGreetingContext(context.Background(), app)); err == nil {
			greeting = reply.Text
		}
	}

	return chatModel{
		input: ti,
		app:   app,
		conv:  &intelligence.Conversation{},
		lines: []string{formatter.StyleBlue.Render("Solace: " + greeting)},
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case chatReplyMsg:
		m.waiting = false
		m.lines = append(m.lines, formatter.StyleBlue.Render("Solace: "+msg.text))
		if msg.farewell {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.lines = append(m.lines, formatter.StyleFg.Render("You: "+text))
			m.waiting = true
			return m, m.requestReply(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) requestReply(text string) tea.Cmd {
	app, conv := m.app, m.conv
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return chatReplyMsg{
			text:     chatReply(ctx, app, conv, text),
			farewell: isFarewell(app, text),
		}
	}
}

func (m chatModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.waiting {
		b.WriteString(formatter.Dim("Solace is thinking..."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("enter to send · esc to leave"))
	b.WriteString("\n")
	return b.String()
}
