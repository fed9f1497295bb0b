package flow

import (
	"reflect"
)

// Settings is the step configuration. The set of implementations is fixed:
// one per trigger and action type.
type Settings interface {
	Clone() Settings
	Equal(Settings) bool

	settings()
}

func (*PieceSettings) settings()  {}
func (*CodeSettings) settings()   {}
func (*LoopSettings) settings()   {}
func (*RouterSettings) settings() {}
func (*EmptySettings) settings()  {}

// SampleData caches the result of the last step test run in the editor. It
// never affects how a step executes.
type SampleData struct {
	SampleDataFileID      string         `json:"sampleDataFileId,omitempty"`
	SampleDataInputFileID string         `json:"sampleDataInputFileId,omitempty"`
	LastTestDate          string         `json:"lastTestDate,omitempty"`
	CustomizedInputs      map[string]any `json:"customizedInputs,omitempty"`
}

// DefaultSampleData is the sentinel value normalization assigns to every
// step so that sample-data churn never shows up as a flow change.
func DefaultSampleData() *SampleData {
	return &SampleData{}
}

func (s *SampleData) Clone() *SampleData {
	if s == nil {
		return nil
	}

	out := *s
	if s.CustomizedInputs != nil {
		out.CustomizedInputs = cloneJSON(s.CustomizedInputs).(map[string]any)
	}
	return &out
}

func (s *SampleData) Equal(other *SampleData) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.SampleDataFileID == other.SampleDataFileID &&
		s.SampleDataInputFileID == other.SampleDataInputFileID &&
		s.LastTestDate == other.LastTestDate &&
		reflect.DeepEqual(s.CustomizedInputs, other.CustomizedInputs)
}

type PieceSettings struct {
	PieceName    string         `json:"pieceName"`
	PieceVersion string         `json:"pieceVersion"`
	ActionName   string         `json:"actionName,omitempty"`
	TriggerName  string         `json:"triggerName,omitempty"`
	Input        map[string]any `json:"input,omitempty"`
	InputUIInfo  *SampleData    `json:"inputUiInfo,omitempty"`
}

func (s *PieceSettings) Clone() Settings {
	out := *s
	if s.Input != nil {
		out.Input = cloneJSON(s.Input).(map[string]any)
	}
	out.InputUIInfo = s.InputUIInfo.Clone()
	return &out
}

func (s *PieceSettings) Equal(other Settings) bool {
	o, ok := other.(*PieceSettings)
	if !ok {
		return false
	}

	return s.PieceName == o.PieceName &&
		s.PieceVersion == o.PieceVersion &&
		s.ActionName == o.ActionName &&
		s.TriggerName == o.TriggerName &&
		reflect.DeepEqual(s.Input, o.Input) &&
		s.InputUIInfo.Equal(o.InputUIInfo)
}

type SourceCode struct {
	Code        string `json:"code"`
	PackageJSON string `json:"packageJson"`
}

type CodeSettings struct {
	SourceCode  SourceCode     `json:"sourceCode"`
	Input       map[string]any `json:"input,omitempty"`
	InputUIInfo *SampleData    `json:"inputUiInfo,omitempty"`
}

func (s *CodeSettings) Clone() Settings {
	out := *s
	if s.Input != nil {
		out.Input = cloneJSON(s.Input).(map[string]any)
	}
	out.InputUIInfo = s.InputUIInfo.Clone()
	return &out
}

func (s *CodeSettings) Equal(other Settings) bool {
	o, ok := other.(*CodeSettings)
	if !ok {
		return false
	}

	return s.SourceCode == o.SourceCode &&
		reflect.DeepEqual(s.Input, o.Input) &&
		s.InputUIInfo.Equal(o.InputUIInfo)
}

type LoopSettings struct {
	Items       string      `json:"items"`
	InputUIInfo *SampleData `json:"inputUiInfo,omitempty"`
}

func (s *LoopSettings) Clone() Settings {
	out := *s
	out.InputUIInfo = s.InputUIInfo.Clone()
	return &out
}

func (s *LoopSettings) Equal(other Settings) bool {
	o, ok := other.(*LoopSettings)
	if !ok {
		return false
	}

	return s.Items == o.Items && s.InputUIInfo.Equal(o.InputUIInfo)
}

type Branch struct {
	Name       string `json:"branchName,omitempty"`
	Type       string `json:"branchType,omitempty"`
	Conditions any    `json:"conditions,omitempty"`
}

type RouterSettings struct {
	Branches      []Branch    `json:"branches"`
	ExecutionType string      `json:"executionType,omitempty"`
	InputUIInfo   *SampleData `json:"inputUiInfo,omitempty"`
}

func (s *RouterSettings) Clone() Settings {
	out := *s
	if s.Branches != nil {
		out.Branches = make([]Branch, len(s.Branches))
		for i, b := range s.Branches {
			b.Conditions = cloneJSON(b.Conditions)
			out.Branches[i] = b
		}
	}
	out.InputUIInfo = s.InputUIInfo.Clone()
	return &out
}

func (s *RouterSettings) Equal(other Settings) bool {
	o, ok := other.(*RouterSettings)
	if !ok {
		return false
	}

	if s.ExecutionType != o.ExecutionType || len(s.Branches) != len(o.Branches) {
		return false
	}

	for i := range s.Branches {
		a, b := s.Branches[i], o.Branches[i]
		if a.Name != b.Name || a.Type != b.Type || !reflect.DeepEqual(a.Conditions, b.Conditions) {
			return false
		}
	}

	return s.InputUIInfo.Equal(o.InputUIInfo)
}

type EmptySettings struct{}

func (s *EmptySettings) Clone() Settings {
	out := *s
	return &out
}

func (s *EmptySettings) Equal(other Settings) bool {
	_, ok := other.(*EmptySettings)
	return ok
}

// cloneJSON copies a JSON-shaped value. Scalars are returned as is.
func cloneJSON(val any) any {
	switch val := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[k] = cloneJSON(v)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = cloneJSON(v)
		}
		return out
	default:
		return val
	}
}
