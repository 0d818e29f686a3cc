package protocol

import (
	"encoding/json"
	"fmt"
)

// Cmd names a websocket command
type Cmd int

const (
	Null Cmd = iota
	Start
	Validate
	Hint
	State
	Error
)

var CmdNames = map[Cmd]string{
	Null:     "Null",
	Start:    "Start",
	Validate: "Validate",
	Hint:     "Hint",
	State:    "State",
	Error:    "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":     Null,
	"Start":    Start,
	"Validate": Validate,
	"Hint":     Hint,
	"State":    State,
	"Error":    Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// MarshalJSON writes a Cmd by name
func (c Cmd) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON reads a Cmd by name
func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	cmd, ok := NameToCmd[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	*c = cmd
	return nil
}
