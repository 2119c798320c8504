// Package game holds the maze state and turns camera commands into rigid
// motions of the map. The camera never moves; the world does.
package game

import "hypermaze/internal/maze"

// Default input steps, per frame a key is held.
const (
	MovementSpeed = 0.01
	RotationSpeed = 0.05
)

// Game is the state of the virtual world.
type Game struct {
	Map *maze.Map
	// Step and Turn are the per-command movement and rotation steps.
	Step float64
	Turn float64
}

// New wraps a map with the default steps.
func New(m *maze.Map) *Game {
	return &Game{Map: m, Step: MovementSpeed, Turn: RotationSpeed}
}

// RotatePlayer turns the view by step radians.
func (g *Game) RotatePlayer(step float64) {
	g.Map.Rotate(step)
}

// MovePlayer translates the world along the viewing axis (+x). The sign
// convention belongs to the input layer.
func (g *Game) MovePlayer(distance float64) {
	g.Map.Translate(distance, 0)
}

// StrafePlayer translates the world across the viewing axis.
func (g *Game) StrafePlayer(distance float64) {
	g.Map.Translate(0, distance)
}

// Command is one discrete camera action.
type Command uint8

// String names the command for logs.
func (c Command) String() string {
	switch c {
	case CommandForward:
		return "forward"
	case CommandBackward:
		return "backward"
	case CommandStrafeLeft:
		return "strafe-left"
	case CommandStrafeRight:
		return "strafe-right"
	case CommandTurnLeft:
		return "turn-left"
	case CommandTurnRight:
		return "turn-right"
	}
	return "none"
}

const (
	CommandNone Command = iota
	CommandForward
	CommandBackward
	CommandStrafeLeft
	CommandStrafeRight
	CommandTurnLeft
	CommandTurnRight
)

// Apply runs cmd and reports whether the map moved. Forward motion pulls the
// world toward the camera, so it is a negative translation.
func (g *Game) Apply(cmd Command) bool {
	switch cmd {
	case CommandForward:
		g.MovePlayer(-g.Step)
	case CommandBackward:
		g.MovePlayer(g.Step)
	case CommandStrafeRight:
		g.StrafePlayer(g.Step)
	case CommandStrafeLeft:
		g.StrafePlayer(-g.Step)
	case CommandTurnRight:
		g.RotatePlayer(-g.Turn)
	case CommandTurnLeft:
		g.RotatePlayer(g.Turn)
	default:
		return false
	}
	return true
}
