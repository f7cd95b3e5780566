package terminal

import (
	"github.com/bounceshot/shooter/internal/system"
	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the host to do.
type Action int

const (
	ActionNone Action = iota
	ActionCommand
	ActionQuit
)

// CommandFor maps a key event to a game command.
func CommandFor(ev *tcell.EventKey) (system.Command, Action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return system.Command{}, ActionQuit
	case tcell.KeyLeft:
		return system.Command{Kind: system.CmdAimLeft}, ActionCommand
	case tcell.KeyRight:
		return system.Command{Kind: system.CmdAimRight}, ActionCommand
	case tcell.KeyEnter:
		return system.Command{Kind: system.CmdFire}, ActionCommand
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return system.Command{Kind: system.CmdFire}, ActionCommand
		case 'a', 'h':
			return system.Command{Kind: system.CmdAimLeft}, ActionCommand
		case 'd', 'l':
			return system.Command{Kind: system.CmdAimRight}, ActionCommand
		case 'r', 'R':
			return system.Command{Kind: system.CmdRestart}, ActionCommand
		case 'q', 'Q':
			return system.Command{}, ActionQuit
		}
	}
	return system.Command{}, ActionNone
}

// PollInput forwards terminal events until the screen is finalized or a quit
// key is pressed. Commands are dropped when the queue is full. It runs on its
// own goroutine and never touches the game directly.
func PollInput(screen tcell.Screen, cmds chan<- system.Command, quit chan<- struct{}, resized chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd, action := CommandFor(ev)
			switch action {
			case ActionQuit:
				close(quit)
				return
			case ActionCommand:
				select {
				case cmds <- cmd:
				default:
				}
			}
		case *tcell.EventResize:
			screen.Sync()
			select {
			case resized <- struct{}{}:
			default:
			}
		}
	}
}
