package flowgraph

import (
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/balwant1707/activepieces/flow"
)

// Build maps a flow's step graph onto a directed graph keyed by step
// name. Router children and loop bodies hang off their parent step with
// labeled edges. Duplicate step names and cycles are build errors.
func Build(version *flow.Version) (graph.Graph[string, string], error) {
	if version == nil || version.Trigger == nil {
		return nil, errors.New("flow version has no trigger")
	}

	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	trigger := version.Trigger
	if err := addVertex(g, trigger.Name, "ellipse"); err != nil {
		return nil, err
	}
	if err := addAction(g, trigger.Name, trigger.NextAction, "next"); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate checks a flow's step graph for structural problems: a missing
// trigger, unnamed or duplicate steps, and piece steps without a piece
// name or version.
func Validate(version *flow.Version) error {
	if _, err := Build(version); err != nil {
		return err
	}

	for _, step := range flow.AllSteps(version.Trigger) {
		settings, ok := step.Settings.(*flow.PieceSettings)
		if !ok {
			continue
		}

		if settings.PieceName == "" {
			return fmt.Errorf("step %q has no piece name", step.Name)
		}
		if settings.PieceVersion == "" {
			return fmt.Errorf("step %q has no piece version", step.Name)
		}
	}

	return nil
}

// WriteDOT renders the step graph in Graphviz DOT format.
func WriteDOT(w io.Writer, version *flow.Version) error {
	g, err := Build(version)
	if err != nil {
		return err
	}

	return draw.DOT(g, w)
}

func addAction(g graph.Graph[string, string], from string, a *flow.Action, label string) error {
	if a == nil {
		return nil
	}

	if err := addVertex(g, a.Name, shapeFor(a.Type)); err != nil {
		return err
	}
	if err := addEdge(g, from, a.Name, label); err != nil {
		return err
	}

	for i, child := range a.Children {
		if err := addAction(g, a.Name, child, branchLabel(a, i)); err != nil {
			return err
		}
	}

	if err := addAction(g, a.Name, a.FirstLoopAction, "loop"); err != nil {
		return err
	}

	return addAction(g, a.Name, a.NextAction, "next")
}

func addVertex(g graph.Graph[string, string], name, shape string) error {
	if name == "" {
		return errors.New("step name is empty")
	}

	err := g.AddVertex(name, graph.VertexAttribute("shape", shape))
	if errors.Is(err, graph.ErrVertexAlreadyExists) {
		return fmt.Errorf("duplicate step name: %q", name)
	}

	return err
}

func addEdge(g graph.Graph[string, string], from, to, label string) error {
	if err := g.AddEdge(from, to, graph.EdgeAttribute("label", label)); err != nil {
		return fmt.Errorf("connecting %q to %q: %w", from, to, err)
	}

	return nil
}

func branchLabel(a *flow.Action, i int) string {
	settings, ok := a.Settings.(*flow.RouterSettings)
	if !ok || i >= len(settings.Branches) || settings.Branches[i].Name == "" {
		return fmt.Sprintf("branch %d", i+1)
	}

	return settings.Branches[i].Name
}

func shapeFor(t flow.ActionType) string {
	switch t {
	case flow.ActionTypeRouter:
		return "diamond"
	case flow.ActionTypeLoopOnItems:
		return "hexagon"
	default:
		return "box"
	}
}
