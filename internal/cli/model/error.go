package model

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

type ErrorModel struct {
	Logger *slog.Logger
	Error  error
}

func (e *ErrorModel) Init() tea.Cmd {
	e.Logger.Error("command failed", "error", e.Error)
	return tea.Quit
}

func (e *ErrorModel) View() string {
	return errorStyle.Render("error:") + " " + e.Error.Error() + "\n"
}

func (e *ErrorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

type ErrorMsg struct {
	Error error
}
