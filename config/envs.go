package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret  string // Secret key for JWT signing; empty disables protected route checks
	JWTIssuer  string // Issuer claim for JWTs
	MazeWidth  int    // Default maze width for the maze command
	MazeHeight int    // Default maze height for the maze command
	WordsFile  string // Default input file for the unique words command
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:     getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:   getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:  getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:  getEnvWithDefault("JWT_ISSUER", "maze-words"),
		MazeWidth:  getEnvAsIntWithDefault("MAZE_WIDTH", 20),
		MazeHeight: getEnvAsIntWithDefault("MAZE_HEIGHT", 20),
		WordsFile:  getEnvWithDefault("WORDS_FILE", "sample.txt"),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer.
// It logs a fatal error if the value is set but cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
