package main

import (
	"fmt"

	_ "github.com/asanchezr/gin-menu-api/docs" // Import generated docs
	"github.com/asanchezr/gin-menu-api/internal/config"
	"github.com/asanchezr/gin-menu-api/internal/controllers"
	"github.com/asanchezr/gin-menu-api/internal/router"
	"github.com/asanchezr/gin-menu-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// @title Restaurant Menu API
// @version 1.0
// @description A simple restaurant menu CRUD API
// @host localhost:3000
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Initialize the menu service with seed data and wire up the controller
	menuService := services.NewMenuService()
	menuController := controllers.NewMenuController(menuService)

	// Initialize Gin router
	engine := router.SetupRouter(menuController)

	// Start the server
	log.Infof("Menu API listening on %s:%d", configuration.Host, configuration.Port)
	if err := engine.Run(fmt.Sprintf("%s:%d", configuration.Host, configuration.Port)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It panics if the configuration is invalid, since the server cannot start without it
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}
