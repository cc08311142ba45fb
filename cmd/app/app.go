package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vietanh2810/canteen-api/internal/api"
	"github.com/vietanh2810/canteen-api/internal/config"
	"github.com/vietanh2810/canteen-api/internal/db"
	"github.com/vietanh2810/canteen-api/internal/logger"
	"github.com/vietanh2810/canteen-api/internal/repository"
	"github.com/vietanh2810/canteen-api/internal/repository/dao"
	"github.com/vietanh2810/canteen-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	loc, err := conf.Canteen.Location()
	if err != nil {
		return fmt.Errorf("failed to load canteen time zone -> %w", err)
	}

	gormDB, err := db.Open(conf, os.Getenv("DATABASE_URL"))
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(gormDB); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	users := repository.NewUserRepository(dao.NewUserDAO(gormDB))
	err = service.NewAuthService(users).EnsureSuperadmin(
		context.Background(), conf.Canteen.SuperadminUsername, conf.Canteen.SuperadminPassword)
	if err != nil {
		return fmt.Errorf("failed to bootstrap superadmin -> %w", err)
	}

	s := api.NewServer(conf, gormDB, loc)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr),
		zap.String("driver", conf.API.DatabaseDriver), zap.String("timezone", loc.String()))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
