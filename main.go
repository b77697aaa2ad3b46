package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gridforge/labyrinth-api/api"
	arenaapi "github.com/gridforge/labyrinth-api/api/arena"
	api_i "github.com/gridforge/labyrinth-api/api/i"
	"github.com/gridforge/labyrinth-api/api/identity"
	"github.com/gridforge/labyrinth-api/config"
	"github.com/gridforge/labyrinth-api/infrastructure/episodestore"
	logger "github.com/gridforge/labyrinth-api/infrastructure/log"
	"github.com/gridforge/labyrinth-api/infrastructure/repo"
	"github.com/gridforge/labyrinth-api/infrastructure/token"
	"github.com/gridforge/labyrinth-api/service"
	"github.com/gridforge/labyrinth-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        i.UserRepo
	mazeRepo        i.MazeRepo
	episodeStore    i.EpisodeStore
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	arenaManager    i.ArenaManager
	authController  api_i.Controller
	arenaController api_i.Controller
	router          *api.Router
	appLogger       i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos() {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	appLogger.Info("Repositories initialized")
}

func initEpisodeStore() {
	var err error
	episodeStore, err = episodestore.NewRedisEpisodeStore(redisClient, config.Envs.EpisodeTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating episode store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Episode store initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initArenaManager() {
	arenaLogger, err := logger.New("ARENA", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating arena logger: %v", err))
		os.Exit(1)
	}

	arenaManager, err = service.NewArenaManager(&service.ArenaManagerConfig{
		MazeRepo:     mazeRepo,
		EpisodeStore: episodeStore,
		Logger:       arenaLogger,
		MaxDimension: config.Envs.MazeMaxDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating arena manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Arena manager initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	arenaController, err = arenaapi.NewArenaController(arenaManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating arena controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, arenaController},
		AuthorizationMiddleware: identity.Authorize(jwtTokenizer),
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorBlue, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()
	initRedis(ctx)
	initRepos()
	initEpisodeStore()
	initJWTTokenizer()
	initAuthService()
	initArenaManager()
	initControllers()
	initRouter()

	appLogger.Info(fmt.Sprintf("Starting REST server on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("REST server stopped: %v", err))
		os.Exit(1)
	}
}
