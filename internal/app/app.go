package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goaltracker/internal/config"
	"github.com/templui/goaltracker/internal/db"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/service"
)

type App struct {
	Cfg                   *config.Config
	DB                    *sqlx.DB
	GoalIntentDataService *service.GoalIntentDataService
}

// New connects to the database and wires the services. Migrations are run
// separately through db.RunMigrations.
func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection, db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Repositories
	goalIntentRepository := repository.NewGoalIntentRepository(nil)
	goalIntentDataRepository := repository.NewGoalIntentDataRepository(nil)

	// Services
	goalIntentDataService := service.NewGoalIntentDataService(
		database,
		goalIntentRepository,
		goalIntentDataRepository,
		cfg.QueryDefaultCount,
		cfg.QueryMaxCount,
	)

	return &App{
		Cfg:                   cfg,
		DB:                    database,
		GoalIntentDataService: goalIntentDataService,
	}, nil
}

func (a *App) Migrate() error {
	return db.RunMigrations(a.DB.DB, a.Cfg.DBDriver)
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
