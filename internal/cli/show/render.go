package show

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/xlab/treeprint"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/balwant1707/activepieces/flow"
	"github.com/balwant1707/activepieces/internal/diff"
	"github.com/balwant1707/activepieces/project"
)

var (
	createStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	updateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	titleCaser = cases.Title(language.English)
)

func operationLabel(t diff.OperationType) string {
	label := titleCaser.String(string(t))
	switch t {
	case diff.OperationTypeCreate:
		return createStyle.Render(label)
	case diff.OperationTypeUpdate:
		return updateStyle.Render(label)
	case diff.OperationTypeDelete:
		return deleteStyle.Render(label)
	default:
		return label
	}
}

func renderResult(res diff.Result) string {
	if len(res.Operations) == 0 && len(res.Connections) == 0 && len(res.Tables) == 0 {
		return "no changes\n"
	}

	tree := treeprint.NewWithRoot("project")

	if len(res.Operations) > 0 {
		flows := tree.AddBranch(fmt.Sprintf("flows (%d)", len(res.Operations)))
		for _, op := range res.Operations {
			name := op.Flow.Version.DisplayName
			if op.NewFlow != nil {
				name = op.NewFlow.Version.DisplayName
			}
			flows.AddNode(fmt.Sprintf("%s %s %q", operationLabel(op.Type), op.Flow.ExternalID, name))
		}
	}

	if len(res.Connections) > 0 {
		connections := tree.AddBranch(fmt.Sprintf("connections (%d)", len(res.Connections)))
		for _, op := range res.Connections {
			piece := op.Connection.PieceName
			if op.NewConnection != nil {
				piece = op.Connection.PieceName + " -> " + op.NewConnection.PieceName
			}
			connections.AddNode(fmt.Sprintf("%s %s (%s)", operationLabel(op.Type), op.Connection.ExternalID, piece))
		}
	}

	if len(res.Tables) > 0 {
		tables := tree.AddBranch(fmt.Sprintf("tables (%d)", len(res.Tables)))
		for _, op := range res.Tables {
			name := op.Table.Name
			if op.NewTable != nil {
				name = op.NewTable.Name
			}
			tables.AddNode(fmt.Sprintf("%s %s %q", operationLabel(op.Type), op.Table.ExternalID, name))
		}
	}

	return tree.String()
}

func renderState(state project.State) string {
	tree := treeprint.NewWithRoot("project")

	flows := tree.AddBranch(fmt.Sprintf("flows (%d)", len(state.Flows)))
	for _, f := range state.Flows {
		branch := flows.AddBranch(fmt.Sprintf("%s %q", f.ExternalID, f.Version.DisplayName))
		for _, step := range flow.AllSteps(f.Version.Trigger) {
			branch.AddNode(fmt.Sprintf("%s (%s)", step.Name, step.Type))
		}
	}

	if len(state.Connections) > 0 {
		connections := tree.AddBranch(fmt.Sprintf("connections (%d)", len(state.Connections)))
		for _, c := range state.Connections {
			connections.AddNode(fmt.Sprintf("%s (%s)", c.ExternalID, c.PieceName))
		}
	}

	if len(state.Tables) > 0 {
		tables := tree.AddBranch(fmt.Sprintf("tables (%d)", len(state.Tables)))
		for _, t := range state.Tables {
			branch := tables.AddBranch(fmt.Sprintf("%s %q", t.ExternalID, t.Name))
			for _, field := range t.Fields {
				branch.AddNode(fmt.Sprintf("%s: %s", field.Name, field.Type))
			}
		}
	}

	return tree.String()
}
