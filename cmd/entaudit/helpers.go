package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/config"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/storage"
)

// initStorage opens the run database and brings the schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	if dbPath == "" {
		return nil, common.NewUserError("no database path configured",
			fmt.Errorf("%w: database.path", common.ErrMissingConfig))
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
