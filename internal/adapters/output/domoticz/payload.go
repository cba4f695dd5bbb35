package domoticz

import (
	"bytes"
	"encoding/json"
)

type deviceResult struct {
	Status string       `json:"Status"`
	Level  int          `json:"Level"`
	Color  colorPayload `json:"Color"`
}

type sceneResult struct {
	Idx    flexID `json:"idx"`
	Status string `json:"Status"`
}

// flexID tolerates Domoticz emitting idx as either a JSON string or a number.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	*f = flexID(bytes.Trim(data, `"`))
	return nil
}

func (f flexID) String() string {
	return string(f)
}

// colorPayload decodes the Color field, which Domoticz reports either as a
// structured object or as a JSON-encoded string. An undecodable payload is a
// valid outcome, reported through RGB's ok result, never an error.
type colorPayload struct {
	r, g, b int
	decoded bool
}

type colorFields struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (p *colorPayload) UnmarshalJSON(data []byte) error {
	var fields colorFields
	if err := json.Unmarshal(data, &fields); err == nil {
		p.r, p.g, p.b, p.decoded = fields.R, fields.G, fields.B, true
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if err := json.Unmarshal([]byte(text), &fields); err == nil {
			p.r, p.g, p.b, p.decoded = fields.R, fields.G, fields.B, true
		}
	}
	return nil
}

func (p colorPayload) RGB() (r, g, b int, ok bool) {
	return p.r, p.g, p.b, p.decoded
}
