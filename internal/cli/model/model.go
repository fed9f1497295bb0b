package model

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// NewBaseModel sets up the shared program shell: a logger writing JSON to
// stdout, or debug-level text to logFilePath when given, and a spinner
// shared with the nested models.
func NewBaseModel(logFilePath string) (*BaseModel, error) {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, nil)
	if logFilePath != "" {
		f, err := tea.LogToFile(logFilePath, "activepieces")
		if err != nil {
			return nil, err
		}

		handler = slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	return &BaseModel{
		Logger:  slog.New(handler),
		Spinner: &spin,
	}, nil
}

// BaseModel wraps the active model and handles quitting, errors, and
// spinner ticks in one place.
type BaseModel struct {
	Current tea.Model
	Logger  *slog.Logger
	Spinner *spinner.Model
}

func (m *BaseModel) Init() tea.Cmd {
	return tea.Batch(m.Current.Init(), m.Spinner.Tick)
}

func (m *BaseModel) View() string {
	return m.Current.View()
}

func (m *BaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			next := &Quit{Logger: m.Logger}
			return next, next.Init()
		}

		// Other keys belong to whichever model is active.
		next, cmd := m.Current.Update(msg)
		m.Current = next
		return m, cmd
	case ErrorMsg:
		next := &ErrorModel{Logger: m.Logger, Error: msg.Error}
		return next, next.Init()
	case spinner.TickMsg:
		spin, cmd := m.Spinner.Update(msg)
		*m.Spinner = spin
		return m, cmd
	default:
		next, cmd := m.Current.Update(msg)
		m.Current = next
		return m, cmd
	}
}

type Quit struct {
	Logger *slog.Logger
}

func (q *Quit) Init() tea.Cmd {
	return tea.Quit
}

func (q *Quit) View() string {
	return "quitting...\n"
}

func (q *Quit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
