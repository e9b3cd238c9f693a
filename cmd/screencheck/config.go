package main

import (
	"fmt"
	"time"

	"screencheck/internal/history"
	"screencheck/internal/recordstore"
	"screencheck/pkg/types"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.RecordStoreURL == "" {
		return nil, fmt.Errorf("set RECORD_STORE_URL")
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.HistoryFetchLimit <= 0 {
		c.HistoryFetchLimit = 100
	}

	return c, nil
}

func buildHistoryService(config *types.Config, logger *logrus.Logger) *history.Service {
	store := recordstore.New(
		config.RecordStoreURL,
		time.Duration(config.RecordStoreTimeoutSec)*time.Second,
	)
	window := time.Duration(config.CorrelationWindowMin) * time.Minute
	return history.NewService(store, logger, window, config.HistoryFetchLimit)
}
