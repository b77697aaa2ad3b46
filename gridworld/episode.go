package gridworld

import (
	"errors"

	"github.com/gridforge/labyrinth-api/maze"
)

// Episode errors.
var (
	ErrEpisodeOver   = errors.New("episode already terminated")
	ErrUnknownAction = errors.New("unknown action")
)

// stepBudgetFactor scales the step budget with the arena area.
const stepBudgetFactor = 10

// Action is a control input for one episode step.
type Action byte

const (
	ActionTurnLeft Action = iota
	ActionTurnRight
	ActionForward
)

// Direction is the agent's facing, clockwise from east.
type Direction byte

const (
	DirEast Direction = iota
	DirSouth
	DirWest
	DirNorth
)

var directionDeltas = [4]maze.CellPosition{
	DirEast:  {X: 1, Y: 0},
	DirSouth: {X: 0, Y: 1},
	DirWest:  {X: -1, Y: 0},
	DirNorth: {X: 0, Y: -1},
}

// Snapshot is the serializable state of an episode, enough to resume it on
// top of the same arena.
type Snapshot struct {
	Agent      maze.CellPosition `json:"agent"`
	Dir        Direction         `json:"dir"`
	Steps      int               `json:"steps"`
	Terminated bool              `json:"terminated"`
	Reward     float64           `json:"reward"`
}

// Episode drives a single agent through an arena until it reaches the goal
// or exhausts its step budget. The budget is ten times the arena area, and
// reaching the goal yields 1 - 0.9*(steps/budget); running out yields zero.
type Episode struct {
	arena      *Arena
	agent      maze.CellPosition
	dir        Direction
	steps      int
	maxSteps   int
	terminated bool
	reward     float64
}

// NewEpisode starts an episode with the agent at start, facing east.
func NewEpisode(a *Arena, start maze.CellPosition) (*Episode, error) {
	if !a.walkableAt(start.X, start.Y) {
		return nil, ErrInvalidStart
	}

	return &Episode{
		arena:    a,
		agent:    start,
		dir:      DirEast,
		maxSteps: stepBudgetFactor * a.Width() * a.Height(),
	}, nil
}

// ResumeEpisode rebuilds an episode from a snapshot taken on the same arena.
func ResumeEpisode(a *Arena, s Snapshot) (*Episode, error) {
	if !a.walkableAt(s.Agent.X, s.Agent.Y) {
		return nil, ErrInvalidStart
	}

	return &Episode{
		arena:      a,
		agent:      s.Agent,
		dir:        s.Dir % 4,
		steps:      s.Steps,
		maxSteps:   stepBudgetFactor * a.Width() * a.Height(),
		terminated: s.Terminated,
		reward:     s.Reward,
	}, nil
}

// Step applies one action and reports the reward earned by it and whether
// the episode has terminated.
func (e *Episode) Step(action Action) (float64, bool, error) {
	if e.terminated {
		return 0, true, ErrEpisodeOver
	}

	e.steps++

	switch action {
	case ActionTurnLeft:
		e.dir = (e.dir + 3) % 4
	case ActionTurnRight:
		e.dir = (e.dir + 1) % 4
	case ActionForward:
		delta := directionDeltas[e.dir]
		target := maze.CellPosition{X: e.agent.X + delta.X, Y: e.agent.Y + delta.Y}
		// Walking into a wall or the border burns a step without moving.
		if e.arena.walkableAt(target.X, target.Y) {
			e.agent = target
		}
		if tile, err := e.arena.At(e.agent.X, e.agent.Y); err == nil && tile == TileGoal {
			e.terminated = true
			e.reward = 1 - 0.9*float64(e.steps)/float64(e.maxSteps)
		}
	default:
		e.steps--
		return 0, false, ErrUnknownAction
	}

	if !e.terminated && e.steps >= e.maxSteps {
		e.terminated = true
	}

	return e.reward, e.terminated, nil
}

// Agent returns the agent's current position.
func (e *Episode) Agent() maze.CellPosition {
	return e.agent
}

// Facing returns the agent's current direction.
func (e *Episode) Facing() Direction {
	return e.dir
}

// Steps returns the number of actions applied so far.
func (e *Episode) Steps() int {
	return e.steps
}

// MaxSteps returns the episode's step budget.
func (e *Episode) MaxSteps() int {
	return e.maxSteps
}

// Terminated reports whether the episode has ended.
func (e *Episode) Terminated() bool {
	return e.terminated
}

// Snapshot captures the episode state for persistence.
func (e *Episode) Snapshot() Snapshot {
	return Snapshot{
		Agent:      e.agent,
		Dir:        e.dir,
		Steps:      e.steps,
		Terminated: e.terminated,
		Reward:     e.reward,
	}
}
