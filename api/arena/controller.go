package arenaapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	dmn "github.com/gridforge/labyrinth-api/domain"
	"github.com/gridforge/labyrinth-api/gridworld"
	"github.com/gridforge/labyrinth-api/maze"
	"github.com/gridforge/labyrinth-api/service"
	"github.com/gridforge/labyrinth-api/service/i"
)

// ArenaController manages maze creation and episode control endpoints.
type ArenaController struct {
	arenas i.ArenaManager
}

// NewArenaController initializes an ArenaController.
func NewArenaController(arenas i.ArenaManager) (*ArenaController, error) {
	if arenas == nil {
		return nil, errors.New("arena controller requires an arena manager")
	}
	return &ArenaController{arenas: arenas}, nil
}

// RegisterPublic registers public routes.
func (ac *ArenaController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (ac *ArenaController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", ac.createMaze)
		mazes.GET("/:ID", ac.mazeByID)
		mazes.POST("/:ID/episodes", ac.startEpisode)
	}

	episodes := route.Group("/episodes")
	{
		episodes.GET("/:ID", ac.episodeState)
		episodes.POST("/:ID/actions", ac.applyAction)
	}
}

// createMaze handles maze generation requests.
func (ac *ArenaController) createMaze(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := ac.arenas.CreateMaze(ctx, i.CreateMazeParams{
		Width:     request.Width,
		Height:    request.Height,
		Seed:      request.Seed,
		Strict:    request.Strict,
		Placement: request.Placement,
	})
	if err != nil {
		switch {
		case errors.Is(err, maze.ErrInvalidDimensions),
			errors.Is(err, service.ErrDimensionTooLarge),
			errors.Is(err, service.ErrUnknownPlacement):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, mazeResponse(record))
}

// mazeByID returns a stored maze.
func (ac *ArenaController) mazeByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	record, err := ac.arenas.MazeByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		return
	}

	ctx.JSON(http.StatusOK, mazeResponse(record))
}

// startEpisode opens a new episode on a stored maze.
func (ac *ArenaController) startEpisode(ctx *gin.Context) {
	mazeID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	episodeID, snap, err := ac.arenas.StartEpisode(ctx, mazeID)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while starting episode"})
		return
	}

	ctx.JSON(http.StatusCreated, episodeResponse(episodeID, snap))
}

// episodeState returns the current state of an episode.
func (ac *ArenaController) episodeState(ctx *gin.Context) {
	episodeID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}

	snap, err := ac.arenas.EpisodeState(ctx, episodeID)
	if err != nil {
		if errors.Is(err, i.ErrEpisodeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading episode"})
		return
	}

	ctx.JSON(http.StatusOK, episodeResponse(episodeID, snap))
}

// applyAction applies one action to a running episode.
func (ac *ArenaController) applyAction(ctx *gin.Context) {
	episodeID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}

	var request ActionRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, known := actionsByName[request.Action]
	if !known {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}

	snap, reward, err := ac.arenas.ApplyAction(ctx, episodeID, action)
	if err != nil {
		switch {
		case errors.Is(err, i.ErrEpisodeNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
		case errors.Is(err, gridworld.ErrEpisodeOver):
			ctx.JSON(http.StatusConflict, gin.H{"error": "episode already terminated"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while applying action"})
		}
		return
	}

	ctx.JSON(http.StatusOK, &ActionResponse{
		Reward:     reward,
		Terminated: snap.Terminated,
		Agent:      snap.Agent,
		Dir:        directionNames[snap.Dir],
		Steps:      snap.Steps,
	})
}

func mazeResponse(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID.String(),
		Width:     record.Width,
		Height:    record.Height,
		Seed:      record.Seed,
		Strict:    record.Strict,
		Placement: record.Placement,
		Rows:      record.Rows,
		Goal:      record.Goal,
	}
}

func episodeResponse(id uuid.UUID, snap gridworld.Snapshot) *EpisodeResponse {
	return &EpisodeResponse{
		ID:         id.String(),
		Agent:      snap.Agent,
		Dir:        directionNames[snap.Dir],
		Steps:      snap.Steps,
		Terminated: snap.Terminated,
		Reward:     snap.Reward,
	}
}
