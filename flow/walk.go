package flow

// Step is a view over a trigger or action. Settings is shared with the
// underlying step, so mutating it through a Step mutates the flow.
type Step struct {
	Type        string
	Name        string
	DisplayName string
	Settings    Settings
}

// AllSteps returns every step reachable from the trigger in a fixed order:
// each step before its router children, loop body, and successor.
func AllSteps(t *Trigger) []Step {
	if t == nil {
		return nil
	}

	steps := []Step{
		{
			Type:        string(t.Type),
			Name:        t.Name,
			DisplayName: t.DisplayName,
			Settings:    t.Settings,
		},
	}

	return appendActionSteps(steps, t.NextAction)
}

func appendActionSteps(steps []Step, a *Action) []Step {
	if a == nil {
		return steps
	}

	steps = append(steps, Step{
		Type:        string(a.Type),
		Name:        a.Name,
		DisplayName: a.DisplayName,
		Settings:    a.Settings,
	})

	for _, child := range a.Children {
		steps = appendActionSteps(steps, child)
	}

	steps = appendActionSteps(steps, a.FirstLoopAction)

	return appendActionSteps(steps, a.NextAction)
}
