package system

// CommandKind is a player action queued by the host.
type CommandKind int

const (
	CmdFire CommandKind = iota + 1
	CmdAimLeft
	CmdAimRight
	CmdAim // absolute, uses Command.Angle
	CmdRestart
)

func (k CommandKind) String() string {
	switch k {
	case CmdFire:
		return "fire"
	case CmdAimLeft:
		return "aim-left"
	case CmdAimRight:
		return "aim-right"
	case CmdAim:
		return "aim"
	case CmdRestart:
		return "restart"
	}
	return "unknown"
}

// Command is produced on input goroutines and applied on the game loop.
type Command struct {
	Kind  CommandKind
	Angle float64
}
