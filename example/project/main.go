package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/balwant1707/activepieces/flow"
	"github.com/balwant1707/activepieces/project"
)

func main() {
	f, err := os.Create("state.json")
	if err != nil {
		log.Fatalf("error creating file: %s", err)
	}

	state := project.State{
		Flows: []flow.Flow{
			{
				ExternalID: "welcome-email",
				Status:     flow.StatusEnabled,
				Version: flow.Version{
					DisplayName: "Welcome Email",
					Valid:       true,
					Trigger: &flow.Trigger{
						Type:        flow.TriggerTypePiece,
						Name:        "trigger",
						DisplayName: "New Signup",
						Settings: &flow.PieceSettings{
							PieceName:    "webhook",
							PieceVersion: "~0.1.1",
							TriggerName:  "catch_webhook",
						},
						NextAction: &flow.Action{
							Type:        flow.ActionTypeCode,
							Name:        "step_1",
							DisplayName: "Build Greeting",
							Settings: &flow.CodeSettings{
								SourceCode: flow.SourceCode{
									Code:        "export const code = async (inputs) => `Hello ${inputs.name}!`;",
									PackageJSON: "{}",
								},
								Input: map[string]any{
									"name": "{{trigger.body.name}}",
								},
							},
							NextAction: &flow.Action{
								Type:        flow.ActionTypePiece,
								Name:        "step_2",
								DisplayName: "Send Message",
								Settings: &flow.PieceSettings{
									PieceName:    "slack",
									PieceVersion: "~0.6.1",
									ActionName:   "send_channel_message",
									Input: map[string]any{
										"auth":    "{{connections['slack-bot']}}",
										"channel": "#signups",
										"text":    "{{step_1}}",
									},
								},
							},
						},
					},
				},
			},
		},
		Connections: []project.Connection{
			{
				ExternalID:  "slack-bot",
				DisplayName: "Slack Bot",
				PieceName:   "slack",
			},
		},
		Tables: []project.Table{
			{
				ExternalID: "signups",
				Name:       "Signups",
				Fields: []project.Field{
					{Name: "email", Type: project.FieldTypeText},
					{Name: "signed_up_at", Type: project.FieldTypeDate},
					{
						Name: "plan",
						Type: project.FieldTypeStaticDropdown,
						Data: &project.DropdownData{
							Options: []project.DropdownOption{
								{Value: "free"},
								{Value: "pro"},
							},
						},
					},
				},
			},
		},
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		log.Fatalf("error writing state: %s", err)
	}

	if err := f.Close(); err != nil {
		log.Fatalf("error closing file: %s", err)
	}
}
