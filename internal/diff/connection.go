package diff

import (
	"github.com/balwant1707/activepieces/project"
)

// Connections are never deleted: removing one from the target state only
// stops it from being managed.
func diffConnections(current, target project.State) []ConnectionOperation {
	currentByID := indexConnections(current.Connections)
	targetByID := indexConnections(target.Connections)

	var ops []ConnectionOperation
	for _, c := range target.Connections {
		if _, ok := currentByID[c.ExternalID]; !ok {
			ops = append(ops, ConnectionOperation{Type: OperationTypeCreate, Connection: c})
		}
	}

	for _, c := range current.Connections {
		targetConnection, ok := targetByID[c.ExternalID]
		if !ok {
			continue
		}
		if c.PieceName == targetConnection.PieceName {
			continue
		}

		newConnection := targetConnection
		ops = append(ops, ConnectionOperation{
			Type:          OperationTypeUpdate,
			Connection:    c,
			NewConnection: &newConnection,
		})
	}

	return ops
}

func indexConnections(connections []project.Connection) map[string]project.Connection {
	byID := make(map[string]project.Connection, len(connections))
	for _, c := range connections {
		if _, ok := byID[c.ExternalID]; ok {
			continue
		}
		byID[c.ExternalID] = c
	}

	return byID
}
