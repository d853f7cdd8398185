package cmd

import (
	"go.uber.org/zap"

	"pouringat.com/PouringAt/configs"
	"pouringat.com/PouringAt/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".PouringAt.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}

	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("error closing database", zap.Error(err))
		}
	}()

	if err := repo.Migrate(); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	logger.Info("database migrated")

	return nil
}
