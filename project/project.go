package project

import (
	"github.com/balwant1707/activepieces/flow"
)

// State is a snapshot of everything in a project: its flows plus the
// connections and tables they depend on. Connections and tables are
// optional; absent collections decode as nil and mean "none".
type State struct {
	Flows       []flow.Flow  `json:"flows"`
	Connections []Connection `json:"connections,omitempty"`
	Tables      []Table      `json:"tables,omitempty"`
}

// Connection is a stored credential for a piece. The secret itself never
// appears in a state document.
type Connection struct {
	ExternalID  string `json:"externalId"`
	DisplayName string `json:"displayName,omitempty"`
	PieceName   string `json:"pieceName"`
}

type Table struct {
	ExternalID string  `json:"externalId"`
	Name       string  `json:"name"`
	Fields     []Field `json:"fields,omitempty"`
}

type FieldType string

const (
	FieldTypeText           FieldType = "TEXT"
	FieldTypeNumber         FieldType = "NUMBER"
	FieldTypeDate           FieldType = "DATE"
	FieldTypeStaticDropdown FieldType = "STATIC_DROPDOWN"
)

type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`

	// Data holds the options of a STATIC_DROPDOWN field. Other field
	// types ignore it.
	Data *DropdownData `json:"data,omitempty"`
}

type DropdownData struct {
	Options []DropdownOption `json:"options"`
}

type DropdownOption struct {
	Value string `json:"value"`
}
