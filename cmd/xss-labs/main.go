package main

import (
	"log"
	"strings"
	"xss-labs/internal/api"
	"xss-labs/internal/config"
	"xss-labs/internal/repository"
	"xss-labs/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"
)

func logLevel(name string) glog.Lvl {
	switch strings.ToLower(name) {
	case "debug":
		return glog.DEBUG
	case "warn":
		return glog.WARN
	case "error":
		return glog.ERROR
	default:
		return glog.INFO
	}
}

func main() {
	cfg, err := config.Load(config.GetEnv("CONFIG_PATH", "./config.yaml"))
	if err != nil {
		log.Fatalf("ERRO [Main]: Falha ao carregar configuração: %v", err)
	}

	// 1. Infraestrutura
	repo, err := repository.NewSQLiteRepository(cfg.DBPath, cfg.MigrationsPath)
	if err != nil {
		log.Fatalf("ERRO [Main]: Falha ao iniciar o repositório SQLite: %v", err)
	}

	// 2. Serviços
	renderer, err := api.NewRenderer()
	if err != nil {
		log.Fatalf("ERRO [Main]: %v", err)
	}

	labSvc := service.NewLabService(repo)
	templates := renderer.HealthCheck(api.TemplateNames(labSvc.Dashboard().Labs)...)
	// O multipart do echo despeja uploads grandes em os.TempDir().
	healthSvc := service.NewHealthService(repo, "", templates)

	// 3. Handlers
	handler := api.NewHandler(labSvc, healthSvc, api.NewHub())

	// 4. Servidor Echo
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Logger.SetLevel(logLevel(cfg.LogLevel))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.MaxUpload))

	api.RegisterRoutes(e, handler)

	log.Printf("INFO [Main]: Servidor dos XSS labs na porta %s", cfg.ServerPort)
	if err := e.Start(cfg.ServerPort); err != nil {
		log.Fatalf("ERRO [Main]: Falha ao iniciar o servidor Echo: %v", err)
	}
}
