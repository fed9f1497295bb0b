package diff

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/balwant1707/activepieces/flow"
	"github.com/balwant1707/activepieces/internal/semver"
	"github.com/balwant1707/activepieces/project"
)

func (d *Differ) diffFlows(ctx context.Context, current, target project.State) ([]FlowOperation, error) {
	currentByID := indexFlows(current.Flows)
	targetByID := indexFlows(target.Flows)

	var ops []FlowOperation
	for _, f := range current.Flows {
		if _, ok := targetByID[f.ExternalID]; !ok {
			ops = append(ops, FlowOperation{Type: OperationTypeDelete, Flow: f})
		}
	}

	var candidates []flow.Flow
	for _, f := range target.Flows {
		if _, ok := currentByID[f.ExternalID]; ok {
			candidates = append(candidates, f)
			continue
		}

		ops = append(ops, FlowOperation{Type: OperationTypeCreate, Flow: f})
	}

	// Pairs are compared concurrently. Results keep the slot of their
	// candidate so the target order survives.
	updates := make([]*FlowOperation, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	for i, targetFlow := range candidates {
		i, targetFlow := i, targetFlow
		g.Go(func() error {
			currentFlow, ok := currentByID[targetFlow.ExternalID]
			if !ok {
				return fmt.Errorf("flow %q missing from current state index", targetFlow.ExternalID)
			}

			changed, err := d.flowChanged(gctx, currentFlow, targetFlow)
			if err != nil {
				return err
			}
			if !changed {
				return nil
			}

			newFlow := targetFlow
			updates[i] = &FlowOperation{Type: OperationTypeUpdate, Flow: currentFlow, NewFlow: &newFlow}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, op := range updates {
		if op != nil {
			ops = append(ops, *op)
		}
	}

	return ops, nil
}

func (d *Differ) flowChanged(ctx context.Context, currentFlow, targetFlow flow.Flow) (bool, error) {
	normCurrent, currentVersions, err := d.Normalize(ctx, currentFlow.Version)
	if err != nil {
		return false, err
	}

	normTarget, targetVersions, err := d.Normalize(ctx, targetFlow.Version)
	if err != nil {
		return false, err
	}

	if normCurrent.DisplayName != normTarget.DisplayName {
		return true, nil
	}

	if !pieceVersionsMatch(currentVersions, targetVersions) {
		return true, nil
	}

	return !normCurrent.Trigger.Equal(normTarget.Trigger), nil
}

// pieceVersionsMatch checks every piece step recorded in the current flow
// against the step of the same name in the target flow. Steps recorded
// only in the target are not examined here; those differences surface
// through the structural comparison.
func pieceVersionsMatch(current, target map[string]string) bool {
	for name, currentVersion := range current {
		targetVersion, ok := target[name]
		if !ok || currentVersion == "" || targetVersion == "" {
			return false
		}
		if !semver.Same(currentVersion, targetVersion) {
			return false
		}
	}

	return true
}

func indexFlows(flows []flow.Flow) map[string]flow.Flow {
	byID := make(map[string]flow.Flow, len(flows))
	for _, f := range flows {
		if _, ok := byID[f.ExternalID]; ok {
			continue
		}
		byID[f.ExternalID] = f
	}

	return byID
}
