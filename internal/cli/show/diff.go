package show

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/balwant1707/activepieces/internal/cli/model"
	"github.com/balwant1707/activepieces/internal/config"
	"github.com/balwant1707/activepieces/internal/diff"
	"github.com/balwant1707/activepieces/internal/registry"
	"github.com/balwant1707/activepieces/internal/source"
	"github.com/balwant1707/activepieces/project"
)

func NewDiffCommand() *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "show the operations that converge the current state onto the target state",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "current",
				Usage:    "reference to the current state",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "target",
				Usage:    "reference to the target state",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "path to file to write logs to",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the raw diff result as JSON",
			},
		},
		Action: DiffAction,
	}
}

func DiffAction(ctx context.Context, cmd *cli.Command) error {
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

	reg, closeRegistry, err := registry.FromConfig(cfg.Registry)
	if err != nil {
		return err
	}
	if closeRegistry != nil {
		defer closeRegistry()
	}

	var upgrader diff.Upgrader
	if reg != nil {
		upgrader = &registry.Upgrader{Registry: reg, Logger: m.Logger}
	}

	differ := diff.New(upgrader, m.Logger)
	currentRef := cfg.Resolve(cmd.String("current"))
	targetRef := cfg.Resolve(cmd.String("target"))

	if cmd.Bool("json") {
		current, target, err := loadStates(ctx, currentRef, targetRef)
		if err != nil {
			return err
		}

		res, err := differ.Diff(ctx, current, target)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	m.Current = &DiffInit{
		logger:     m.Logger,
		spinner:    m.Spinner,
		context:    ctx,
		differ:     differ,
		currentRef: currentRef,
		targetRef:  targetRef,
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

func loadStates(ctx context.Context, currentRef, targetRef string) (project.State, project.State, error) {
	var current, target project.State
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = loadState(gctx, currentRef)
		return err
	})
	g.Go(func() error {
		var err error
		target, err = loadState(gctx, targetRef)
		return err
	})
	if err := g.Wait(); err != nil {
		return project.State{}, project.State{}, err
	}

	return current, target, nil
}

func loadState(ctx context.Context, ref string) (project.State, error) {
	src, err := source.New(ref)
	if err != nil {
		return project.State{}, err
	}

	return src.State(ctx)
}

type currentStateMsg struct {
	state project.State
}

type targetStateMsg struct {
	state project.State
}

type DiffInit struct {
	logger     *slog.Logger
	spinner    *spinner.Model
	context    context.Context
	differ     *diff.Differ
	currentRef string
	targetRef  string

	current *project.State
	target  *project.State
}

func (m *DiffInit) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			state, err := loadState(m.context, m.currentRef)
			if err != nil {
				return model.ErrorMsg{Error: err}
			}

			return currentStateMsg{state: state}
		},
		func() tea.Msg {
			state, err := loadState(m.context, m.targetRef)
			if err != nil {
				return model.ErrorMsg{Error: err}
			}

			return targetStateMsg{state: state}
		},
	)
}

func (m *DiffInit) View() string {
	return m.spinner.View() + " loading states..."
}

func (m *DiffInit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case currentStateMsg:
		m.current = &msg.state
	case targetStateMsg:
		m.target = &msg.state
	default:
		return m, nil
	}

	if m.current == nil || m.target == nil {
		return m, nil
	}

	next := &DiffEval{
		logger:  m.logger,
		spinner: m.spinner,
		context: m.context,
		differ:  m.differ,
		current: *m.current,
		target:  *m.target,
	}
	return next, next.Init()
}

type resultMsg struct {
	result diff.Result
}

type DiffEval struct {
	logger  *slog.Logger
	spinner *spinner.Model
	context context.Context
	differ  *diff.Differ
	current project.State
	target  project.State
}

func (m *DiffEval) Init() tea.Cmd {
	return func() tea.Msg {
		res, err := m.differ.Diff(m.context, m.current, m.target)
		if err != nil {
			return model.ErrorMsg{Error: err}
		}

		return resultMsg{result: res}
	}
}

func (m *DiffEval) View() string {
	return m.spinner.View() + " comparing states..."
}

func (m *DiffEval) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		next := &DiffResult{output: renderResult(msg.result)}
		return next, next.Init()
	default:
		return m, nil
	}
}

type DiffResult struct {
	output string
}

func (m *DiffResult) Init() tea.Cmd {
	return tea.Quit
}

func (m *DiffResult) View() string {
	return m.output
}

func (m *DiffResult) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
