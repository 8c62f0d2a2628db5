package server

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/jjoak3/dumptrick/pkg/hearts"
)

var ErrUnknownAction = errors.New("unknown action")

// inbound is the wire shape of a client frame. Which extra fields
// matter depends on the action name.
type inbound struct {
	Action string      `json:"action"`
	Name   string      `json:"name"`
	Card   hearts.Card `json:"card"`
}

// decodeAction turns a raw frame into one of the engine's closed
// action types. Anything undecodable is rejected here, at the
// boundary; the engine never sees action names.
func decodeAction(data []byte) (hearts.Action, error) {
	var in inbound
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	switch in.Action {
	case "update_name":
		return hearts.UpdateName{Name: in.Name}, nil
	case "start_game":
		return hearts.StartGame{}, nil
	case "play_card":
		return hearts.PlayCard{Card: in.Card}, nil
	case "reset_game":
		return hearts.ResetGame{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, in.Action)
	}
}
