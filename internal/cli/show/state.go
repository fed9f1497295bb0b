package show

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/balwant1707/activepieces/internal/cli/model"
	"github.com/balwant1707/activepieces/internal/config"
)

func NewStateCommand() *cli.Command {
	return &cli.Command{
		Name:      "state",
		Usage:     "show the contents of a project state",
		ArgsUsage: "<ref>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "path to file to write logs to",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config file",
			},
		},
		Action: StateAction,
	}
}

func StateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	logFilePath := cmd.String("log-file")
	if logFilePath == "" {
		logFilePath = cfg.LogFile
	}

	m, err := model.NewBaseModel(logFilePath)
	if err != nil {
		return err
	}

	m.Current = &StateInit{
		logger:  m.Logger,
		spinner: m.Spinner,
		context: ctx,
		ref:     cfg.Resolve(cmd.Args().First()),
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

type StateInit struct {
	logger  *slog.Logger
	spinner *spinner.Model
	context context.Context
	ref     string
}

func (m *StateInit) Init() tea.Cmd {
	return func() tea.Msg {
		state, err := loadState(m.context, m.ref)
		if err != nil {
			return model.ErrorMsg{Error: err}
		}

		return currentStateMsg{state: state}
	}
}

func (m *StateInit) View() string {
	return m.spinner.View() + " loading state..."
}

func (m *StateInit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case currentStateMsg:
		next := &DiffResult{output: renderState(msg.state)}
		return next, next.Init()
	default:
		return m, nil
	}
}
