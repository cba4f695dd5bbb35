package model

import "fmt"

// StateUpdate is the parsed body of a PUT /api/<user>/lights/<id>/state
// request. Pointer fields distinguish "absent" from a zero value.
type StateUpdate struct {
	On  *bool `json:"on,omitempty"`
	Bri *int  `json:"bri,omitempty"`
	Hue *int  `json:"hue,omitempty"`
	Sat *int  `json:"sat,omitempty"`
	Ct  *int  `json:"ct,omitempty"`
}

// CommandResult is one entry of the Hue per-field response array.
type CommandResult struct {
	Success map[string]interface{} `json:"success,omitempty"`
	Error   *CommandError          `json:"error,omitempty"`
}

type CommandError struct {
	Description string `json:"description"`
}

// FieldSuccess echoes one mutated field the way the Hue protocol expects.
func FieldSuccess(lightID, field string, value interface{}) CommandResult {
	return CommandResult{
		Success: map[string]interface{}{
			fmt.Sprintf("/lights/%s/state/%s", lightID, field): value,
		},
	}
}

func ErrorResult(description string) CommandResult {
	return CommandResult{Error: &CommandError{Description: description}}
}
