package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/aleph-alpha/aleph-alpha-go/internal/cli"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/config"
	infraLogger "github.com/aleph-alpha/aleph-alpha-go/pkg/infra/logger"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	cfg, err := config.Load(os.Getenv("AA_CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	rootCmd := cli.NewRootCmd(cli.NewFactory(cfg, logger))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
