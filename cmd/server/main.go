package main

import (
	"fmt"

	"github.com/MKhiriev/iros-gateway/internal/adapter"
	"github.com/MKhiriev/iros-gateway/internal/config"
	"github.com/MKhiriev/iros-gateway/internal/handler"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/server"
	"github.com/MKhiriev/iros-gateway/internal/service"
	"github.com/MKhiriev/iros-gateway/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("iros-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the build version stands in when none is configured
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("address", cfg.Server.HTTPAddress).
		Str("mail_url", cfg.Services.Mail.URL).
		Str("user_url", cfg.Services.User.URL).
		Strs("sections", cfg.Services.User.Sections).
		Msg("received configs")

	mailAdapter, err := adapter.NewHTTPMailAdapter(cfg.Services.Mail, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail service client")
	}

	userAdapter, err := adapter.NewHTTPUserAdapter(cfg.Services.User, cfg.App.Name, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating user service client")
	}

	registration := workers.NewRegistrationWorker(userAdapter, log)

	services, err := service.NewServices(service.Adapters{Mail: mailAdapter, User: userAdapter}, registration, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(registration), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
