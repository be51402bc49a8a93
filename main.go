package main

import (
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-words/api"
	api_i "github.com/beka-birhanu/maze-words/api/i"
	"github.com/beka-birhanu/maze-words/api/identity"
	"github.com/beka-birhanu/maze-words/api/mazeapi"
	"github.com/beka-birhanu/maze-words/api/wordsapi"
	"github.com/beka-birhanu/maze-words/config"
	logger "github.com/beka-birhanu/maze-words/infrastruture/log"
	"github.com/beka-birhanu/maze-words/infrastruture/token"
	"github.com/beka-birhanu/maze-words/service"
	"github.com/beka-birhanu/maze-words/service/i"
	"github.com/gin-gonic/gin"
)

const cliTokenLifetime = 24 * time.Hour

// Global variables for dependencies
var (
	mazeGenerator   i.MazeGenerator
	wordExtractor   i.WordExtractor
	mazeController  api_i.Controller
	wordsController api_i.Controller
	jwtTokenizer    i.Tokenizer
	router          *api.Router
	appLogger       *logger.Logger
)

func initServices() {
	mazeGenerator = service.NewMazes()
	wordExtractor = service.NewWords()
	appLogger.Info("Services initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeGenerator)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initWordsController() {
	var err error
	wordsController, err = wordsapi.NewWordsController(wordExtractor)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating words controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Words controller initialized")
}

func initJWTTokenizer() {
	if config.Envs.JWTSecret == "" {
		appLogger.Warning("JWT_SECRET is not set, protected routes are open")
		return
	}
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter() {
	var authorization gin.HandlerFunc
	if jwtTokenizer != nil {
		authorization = identity.Authoriz(jwtTokenizer)
	}

	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{mazeController, wordsController},
		AuthorizationMiddleware: authorization,
	})
	appLogger.Info("Router initialized")
}

// printToken prints a token accepted by the protected routes.
func printToken() {
	if jwtTokenizer == nil {
		appLogger.Error("JWT_SECRET must be set to issue tokens")
		os.Exit(1)
	}
	signed, err := jwtTokenizer.Generate(map[string]interface{}{"sub": "cli"}, cliTokenLifetime)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Signing token: %v", err))
		os.Exit(1)
	}
	fmt.Println(signed)
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	initJWTTokenizer()
	if len(os.Args) > 1 && os.Args[1] == "token" {
		printToken()
		return
	}

	initServices()
	initMazeController()
	initWordsController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
