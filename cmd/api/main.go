// @title SkillSwap API
// @version 1.0
// @description Peer skill-exchange platform: courses, study groups, and session trading between students.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/skillswap/skillswap/internal/bootstrap"
	"github.com/skillswap/skillswap/internal/config"
	"github.com/skillswap/skillswap/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	app, err := bootstrap.InitializeApplication(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := server.New(app).Run(); err != nil {
		log.Fatal().Err(err).Msg("Server exited with error")
	}
}
