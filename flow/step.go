package flow

import (
	"encoding/json"
	"errors"
	"fmt"
)

type TriggerType string

const (
	TriggerTypeEmpty TriggerType = "EMPTY"
	TriggerTypePiece TriggerType = "PIECE_TRIGGER"
)

type ActionType string

const (
	ActionTypeCode        ActionType = "CODE"
	ActionTypePiece       ActionType = "PIECE"
	ActionTypeLoopOnItems ActionType = "LOOP_ON_ITEMS"
	ActionTypeRouter      ActionType = "ROUTER"
)

type Trigger struct {
	Type        TriggerType `json:"type"`
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Settings    Settings    `json:"settings"`
	NextAction  *Action     `json:"nextAction,omitempty"`
}

type Action struct {
	Type        ActionType `json:"type"`
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	Settings    Settings   `json:"settings"`
	NextAction  *Action    `json:"nextAction,omitempty"`

	// FirstLoopAction is the body of a LOOP_ON_ITEMS action. Children are
	// the branch bodies of a ROUTER action, aligned with the branches in
	// its settings.
	FirstLoopAction *Action   `json:"firstLoopAction,omitempty"`
	Children        []*Action `json:"children,omitempty"`
}

func (t *Trigger) UnmarshalJSON(data []byte) error {
	var inner struct {
		Type        TriggerType     `json:"type"`
		Name        string          `json:"name"`
		DisplayName string          `json:"displayName"`
		Settings    json.RawMessage `json:"settings"`
		NextAction  *Action         `json:"nextAction"`
	}

	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}

	switch inner.Type {
	case "":
		return errors.New("must specify trigger type")
	case TriggerTypeEmpty:
		value := &EmptySettings{}
		if err := unmarshalSettings(inner.Settings, value); err != nil {
			return err
		}
		t.Settings = value
	case TriggerTypePiece:
		value := &PieceSettings{}
		if err := unmarshalSettings(inner.Settings, value); err != nil {
			return err
		}
		t.Settings = value
	default:
		return fmt.Errorf("unsupported trigger type: %q", inner.Type)
	}

	t.Type = inner.Type
	t.Name = inner.Name
	t.DisplayName = inner.DisplayName
	t.NextAction = inner.NextAction

	return nil
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var inner struct {
		Type            ActionType      `json:"type"`
		Name            string          `json:"name"`
		DisplayName     string          `json:"displayName"`
		Settings        json.RawMessage `json:"settings"`
		NextAction      *Action         `json:"nextAction"`
		FirstLoopAction *Action         `json:"firstLoopAction"`
		Children        []*Action       `json:"children"`
	}

	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}

	switch inner.Type {
	case "":
		return errors.New("must specify action type")
	case ActionTypeCode:
		value := &CodeSettings{}
		if err := unmarshalSettings(inner.Settings, value); err != nil {
			return err
		}
		a.Settings = value
	case ActionTypePiece:
		value := &PieceSettings{}
		if err := unmarshalSettings(inner.Settings, value); err != nil {
			return err
		}
		a.Settings = value
	case ActionTypeLoopOnItems:
		value := &LoopSettings{}
		if err := unmarshalSettings(inner.Settings, value); err != nil {
			return err
		}
		a.Settings = value
	case ActionTypeRouter:
		value := &RouterSettings{}
		if err := unmarshalSettings(inner.Settings, value); err != nil {
			return err
		}
		a.Settings = value
	default:
		return fmt.Errorf("unsupported action type: %q", inner.Type)
	}

	a.Type = inner.Type
	a.Name = inner.Name
	a.DisplayName = inner.DisplayName
	a.NextAction = inner.NextAction
	a.FirstLoopAction = inner.FirstLoopAction
	a.Children = inner.Children

	return nil
}

func unmarshalSettings(data json.RawMessage, value any) error {
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, value)
}

func (t *Trigger) Clone() *Trigger {
	if t == nil {
		return nil
	}

	out := *t
	if t.Settings != nil {
		out.Settings = t.Settings.Clone()
	}
	out.NextAction = t.NextAction.Clone()
	return &out
}

func (a *Action) Clone() *Action {
	if a == nil {
		return nil
	}

	out := *a
	if a.Settings != nil {
		out.Settings = a.Settings.Clone()
	}
	out.NextAction = a.NextAction.Clone()
	out.FirstLoopAction = a.FirstLoopAction.Clone()
	if a.Children != nil {
		out.Children = make([]*Action, len(a.Children))
		for i, child := range a.Children {
			out.Children[i] = child.Clone()
		}
	}
	return &out
}

func (t *Trigger) Equal(other *Trigger) bool {
	if t == nil || other == nil {
		return t == other
	}

	if t.Type != other.Type || t.Name != other.Name || t.DisplayName != other.DisplayName {
		return false
	}

	if !settingsEqual(t.Settings, other.Settings) {
		return false
	}

	return t.NextAction.Equal(other.NextAction)
}

func (a *Action) Equal(other *Action) bool {
	if a == nil || other == nil {
		return a == other
	}

	if a.Type != other.Type || a.Name != other.Name || a.DisplayName != other.DisplayName {
		return false
	}

	if !settingsEqual(a.Settings, other.Settings) {
		return false
	}

	if len(a.Children) != len(other.Children) {
		return false
	}

	for i := range a.Children {
		if !a.Children[i].Equal(other.Children[i]) {
			return false
		}
	}

	return a.FirstLoopAction.Equal(other.FirstLoopAction) && a.NextAction.Equal(other.NextAction)
}

func settingsEqual(a, b Settings) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b)
}
