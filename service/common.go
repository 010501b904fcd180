package service

import (
	"context"
	"fmt"
	"io"

	"estatehub/app/config"
	"estatehub/app/logger"
	"estatehub/app/repositories"
	"estatehub/app/repositories/postgres"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X estatehub/service.Version=...".
var Version = "dev"

// setup loads the configuration and builds a logger writing to w.
func setup(w io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger.NewWithWriter(cfg.Logging, cfg.Primary.Env, w), nil
}

// openStores opens the backend selected by database.driver. The returned
// func releases it.
func openStores(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (repositories.Stores, func() error, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgres.Open(ctx, cfg.Database.URL, cfg.Database.MaxConns, log)
		if err != nil {
			return repositories.Stores{}, nil, err
		}
		return db.Stores(), db.Close, nil
	case "badger":
		store, err := repositories.OpenBadger(cfg.Database.Path)
		if err != nil {
			return repositories.Stores{}, nil, err
		}
		log.Info().Str("path", cfg.Database.Path).Msg("opened badger database")
		return store.Stores(), store.Close, nil
	default:
		return repositories.Stores{}, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// confirm asks a yes/no question on the command's input.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	var response string
	fmt.Fscanln(cmd.InOrStdin(), &response)
	return response == "y" || response == "Y"
}
