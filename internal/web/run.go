package web

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"calcweb/internal/config"
	zlog "calcweb/pkg/log"
)

func Run(configPath string) error {
	cfg, err := config.ParseConfig(configPath)
	if err != nil {
		return err
	}

	var logger *zap.Logger
	switch {
	case cfg.LogFile != "":
		logger = zlog.InitProdFile(cfg.LogFile)
	case cfg.Debug:
		logger = zlog.InitDev()
	default:
		logger = zlog.InitProd()
	}
	defer zlog.Sync()

	logger.Info("Parsed config", zap.Any("config", cfg))

	s, err := newServer(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "Failed to start server")
	}

	return errors.Wrap(s.run(), "Server failed")
}
