// Package arenaapi exposes maze creation and episode control over HTTP.
package arenaapi

import (
	"github.com/gridforge/labyrinth-api/gridworld"
	"github.com/gridforge/labyrinth-api/maze"
)

// CreateMazeRequest asks for a new maze. Width and height are required; a
// missing seed draws a random one, and the empty placement selects the
// default strategy.
type CreateMazeRequest struct {
	Width     int    `json:"width" binding:"required"`
	Height    int    `json:"height" binding:"required"`
	Seed      *int64 `json:"seed"`
	Strict    bool   `json:"strict"`
	Placement string `json:"placement"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID        string            `json:"id"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Seed      int64             `json:"seed"`
	Strict    bool              `json:"strict"`
	Placement string            `json:"placement"`
	Rows      []string          `json:"rows"`
	Goal      maze.CellPosition `json:"goal"`
}

// EpisodeResponse describes the current state of an episode.
type EpisodeResponse struct {
	ID         string            `json:"id"`
	Agent      maze.CellPosition `json:"agent"`
	Dir        string            `json:"dir"`
	Steps      int               `json:"steps"`
	Terminated bool              `json:"terminated"`
	Reward     float64           `json:"reward"`
}

// ActionRequest applies one action to an episode.
type ActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// ActionResponse reports the outcome of one action.
type ActionResponse struct {
	Reward     float64           `json:"reward"`
	Terminated bool              `json:"terminated"`
	Agent      maze.CellPosition `json:"agent"`
	Dir        string            `json:"dir"`
	Steps      int               `json:"steps"`
}

var directionNames = map[gridworld.Direction]string{
	gridworld.DirEast:  "east",
	gridworld.DirSouth: "south",
	gridworld.DirWest:  "west",
	gridworld.DirNorth: "north",
}

// actionsByName maps wire-level action names to episode actions.
var actionsByName = map[string]gridworld.Action{
	"left":    gridworld.ActionTurnLeft,
	"right":   gridworld.ActionTurnRight,
	"forward": gridworld.ActionForward,
}
