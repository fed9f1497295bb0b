package diff

import (
	"github.com/balwant1707/activepieces/project"
)

// Tables are never deleted, same as connections.
func diffTables(current, target project.State) []TableOperation {
	currentByID := indexTables(current.Tables)
	targetByID := indexTables(target.Tables)

	var ops []TableOperation
	for _, tbl := range target.Tables {
		if _, ok := currentByID[tbl.ExternalID]; !ok {
			ops = append(ops, TableOperation{Type: OperationTypeCreate, Table: tbl})
		}
	}

	for _, tbl := range current.Tables {
		targetTable, ok := targetByID[tbl.ExternalID]
		if !ok {
			continue
		}
		if !tableChanged(tbl, targetTable) {
			continue
		}

		newTable := targetTable
		ops = append(ops, TableOperation{Type: OperationTypeUpdate, Table: tbl, NewTable: &newTable})
	}

	return ops
}

// Fields are compared positionally; reordering them counts as a change.
func tableChanged(current, target project.Table) bool {
	if current.Name != target.Name {
		return true
	}
	if len(current.Fields) != len(target.Fields) {
		return true
	}
	for i := range current.Fields {
		if !fieldEqual(current.Fields[i], target.Fields[i]) {
			return true
		}
	}

	return false
}

func fieldEqual(a, b project.Field) bool {
	if a.Name != b.Name || a.Type != b.Type {
		return false
	}
	if a.Type != project.FieldTypeStaticDropdown {
		return true
	}

	return dropdownEqual(a.Data, b.Data)
}

func dropdownEqual(a, b *project.DropdownData) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if a.Options[i] != b.Options[i] {
			return false
		}
	}

	return true
}

func indexTables(tables []project.Table) map[string]project.Table {
	byID := make(map[string]project.Table, len(tables))
	for _, t := range tables {
		if _, ok := byID[t.ExternalID]; ok {
			continue
		}
		byID[t.ExternalID] = t
	}

	return byID
}
