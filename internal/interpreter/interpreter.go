package interpreter

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Interpreter owns the robot state and applies one line at a time. Commands
// other than PLACE are gated until a placement succeeds.
type Interpreter struct {
	robot *Robot
	log   *slog.Logger
}

// NewInterpreter returns an interpreter with a fresh unplaced robot. A nil
// logger disables diagnostics.
func NewInterpreter(log *slog.Logger) *Interpreter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Interpreter{robot: NewRobot(), log: log}
}

// Robot exposes the state for read-only collaborators such as the renderer.
func (it *Interpreter) Robot() *Robot { return it.robot }

// Eval processes one input line. ok reports whether the line produced output,
// which only REPORT ever does. Invalid and premature commands are dropped
// without surfacing an error; the stream simply continues. Dropped lines go
// to the debug log so stdout stays clean.
func (it *Interpreter) Eval(line string) (out string, ok bool) {
	cmd := ParseLine(line)

	switch cmd.Kind {
	case CmdUnknown:
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			it.log.Debug("ignoring line", "line", trimmed)
		}
		return "", false
	case CmdPlace:
		// PLACE is attempted regardless of placement state; it is the
		// only way to become placed.
		it.robot.Place(cmd.X, cmd.Y, cmd.Facing)
		return "", false
	}

	if !it.robot.Placed {
		it.log.Debug("ignoring command before placement", "line", strings.TrimSpace(line))
		return "", false
	}

	switch cmd.Kind {
	case CmdMove:
		it.robot.Move()
	case CmdLeft:
		it.robot.Left()
	case CmdRight:
		it.robot.Right()
	case CmdReport:
		if x, y, f, placed := it.robot.Report(); placed {
			return fmt.Sprintf("%d,%d,%s", x, y, f), true
		}
	}
	return "", false
}
