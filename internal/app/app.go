package app

import (
	"net/http"

	"exercise-app-go/internal/config"
	"exercise-app-go/internal/db"
	badgedomain "exercise-app-go/internal/domain/badge"
	groupdomain "exercise-app-go/internal/domain/group"
	participantdomain "exercise-app-go/internal/domain/participant"
	rankingdomain "exercise-app-go/internal/domain/ranking"
	recorddomain "exercise-app-go/internal/domain/record"
	badgerepo "exercise-app-go/internal/repository/postgres/badge"
	grouprepo "exercise-app-go/internal/repository/postgres/group"
	participantrepo "exercise-app-go/internal/repository/postgres/participant"
	rankingrepo "exercise-app-go/internal/repository/postgres/ranking"
	recordrepo "exercise-app-go/internal/repository/postgres/record"
	"exercise-app-go/internal/transport/httpserver"
	"exercise-app-go/internal/transport/httpserver/handler"
	"exercise-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	badges := badgedomain.NewService(badgerepo.NewPostgres(dbConn), log)
	groups := groupdomain.NewService(grouprepo.NewPostgres(dbConn), badges)
	participants := participantdomain.NewService(participantrepo.NewPostgres(dbConn), badges)
	records := recorddomain.NewService(recordrepo.NewPostgres(dbConn), badges)
	rankings := rankingdomain.NewServiceWithConfig(rankingrepo.NewPostgres(dbConn), rankingdomain.Config{
		TopN: cfg.Ranking.TopN,
	})

	handlers := handler.New(groups, participants, records, rankings, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
