package dbconn

import "fmt"

// State is the lifecycle state of the managed connection.
type State string

const (
	Disconnected  State = "Disconnected"
	Connecting    State = "Connecting"
	Connected     State = "Connected"
	Disconnecting State = "Disconnecting"
)

func (s State) String() string { return string(s) }

// transition names the trigger of a state change.
type transition string

const (
	transConnect     transition = "connect"
	transEstablished transition = "established"
	transFailed      transition = "failed"
	transLost        transition = "lost"
	transRestored    transition = "restored"
	transClose       transition = "close"
	transClosed      transition = "closed"
)

// transitions is the lookup table [from][trigger] -> to.
var transitions = map[State]map[transition]State{
	Disconnected: {
		transConnect:  Connecting,
		transRestored: Connected,
		transClose:    Disconnecting,
	},
	Connecting: {
		transEstablished: Connected,
		transFailed:      Disconnected,
		transClose:       Disconnecting,
	},
	Connected: {
		transLost:  Disconnected,
		transClose: Disconnecting,
	},
	Disconnecting: {
		transClosed: Disconnected,
	},
}

// next resolves the state reached from s by t.
func next(s State, t transition) (State, error) {
	if to, ok := transitions[s][t]; ok {
		return to, nil
	}
	return s, fmt.Errorf("%w: %s on %q", ErrNoTransition, s, t)
}
