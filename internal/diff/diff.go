package diff

import (
	"context"
	"io"
	"log/slog"

	"github.com/balwant1707/activepieces/flow"
	"github.com/balwant1707/activepieces/project"
)

type OperationType string

const (
	OperationTypeCreate OperationType = "create"
	OperationTypeUpdate OperationType = "update"
	OperationTypeDelete OperationType = "delete"
)

// Result lists the operations needed to converge the current state of a
// project onto a target state. Flow operations are ordered deletes first,
// then creates, then updates; within a category the input order is kept.
type Result struct {
	Operations  []FlowOperation       `json:"operations"`
	Connections []ConnectionOperation `json:"connections"`
	Tables      []TableOperation      `json:"tables"`
}

type FlowOperation struct {
	Type OperationType `json:"type"`

	// Flow is the incoming flow for create operations and the current
	// flow otherwise. NewFlow is the incoming flow of an update.
	Flow    flow.Flow  `json:"flow"`
	NewFlow *flow.Flow `json:"newFlow,omitempty"`
}

type ConnectionOperation struct {
	Type          OperationType       `json:"type"`
	Connection    project.Connection  `json:"connection"`
	NewConnection *project.Connection `json:"newConnection,omitempty"`
}

type TableOperation struct {
	Type     OperationType  `json:"type"`
	Table    project.Table  `json:"table"`
	NewTable *project.Table `json:"newTable,omitempty"`
}

// Upgrader prepares a flow version for comparison, typically by upgrading
// piece version specifiers against a registry.
type Upgrader interface {
	AutoUpgrade(ctx context.Context, version flow.Version) (flow.Version, error)
}

type Differ struct {
	upgrader Upgrader
	logger   *slog.Logger
}

// New returns a Differ. upgrader may be nil, in which case piece versions
// are compared as stored. logger may be nil.
func New(upgrader Upgrader, logger *slog.Logger) *Differ {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Differ{upgrader: upgrader, logger: logger}
}

// Diff computes the operations needed to converge current onto target.
// Neither input state is modified.
func (d *Differ) Diff(ctx context.Context, current, target project.State) (Result, error) {
	operations, err := d.diffFlows(ctx, current, target)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Operations:  operations,
		Connections: diffConnections(current, target),
		Tables:      diffTables(current, target),
	}

	d.logger.Debug("computed project diff",
		"flow_operations", len(res.Operations),
		"connection_operations", len(res.Connections),
		"table_operations", len(res.Tables),
	)

	return res, nil
}
