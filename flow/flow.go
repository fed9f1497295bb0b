package flow

type Status string

const (
	StatusEnabled  Status = "ENABLED"
	StatusDisabled Status = "DISABLED"
)

type Flow struct {
	ID         string `json:"id,omitempty"`
	ExternalID string `json:"externalId"`
	Status     Status `json:"status,omitempty"`

	Version Version `json:"version"`
}

// Version is a single revision of a flow. The trigger is the root of the
// step graph.
type Version struct {
	DisplayName string   `json:"displayName"`
	Trigger     *Trigger `json:"trigger"`
	Valid       bool     `json:"valid,omitempty"`
}

func (v Version) Clone() Version {
	v.Trigger = v.Trigger.Clone()
	return v
}

func (v Version) Equal(other Version) bool {
	return v.DisplayName == other.DisplayName && v.Trigger.Equal(other.Trigger)
}
