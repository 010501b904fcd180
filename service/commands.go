package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"estatehub/app/config"
	"estatehub/app/repositories"
	"estatehub/app/repositories/postgres"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const (
	outputFlag = "output"
	yesFlag    = "yes"
)

// DefaultBackupDir receives backups written without --output.
const DefaultBackupDir = "data/backups"

var errNotBadger = errors.New("this command needs database.driver=badger")

func newDBCommand() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the data store",
	}
	dbCmd.AddCommand(
		newInitCommand(),
		newCleanCommand(),
		newBackupCommand(),
		newRestoreCommand(),
		newMigrateCommand(),
	)
	return dbCmd
}

// badgerPath loads the configuration and returns the Badger data directory.
func badgerPath() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.Database.Driver != "badger" {
		return "", errNotBadger
	}
	return cfg.Database.Path, nil
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := badgerPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Database already exists. Use 'db clean' first if you want to reinitialize.")
				return nil
			}

			store, err := repositories.OpenBadger(path)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			if err := store.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database initialized successfully")
			return nil
		},
	}
}

func newCleanCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := badgerPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is already clean (does not exist)")
				return nil
			}

			if !yes && !confirm(cmd, "Are you sure you want to clean the database? This cannot be undone.") {
				fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled")
				return nil
			}
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf("failed to clean database: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database cleaned successfully")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, yesFlag, "y", false, "Skip the confirmation prompt")
	return cmd
}

func newBackupCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		outputFlag: &cobraflags.StringFlag{
			Name:  outputFlag,
			Value: "",
			Usage: "Backup file to write (default data/backups/backup_<unix time>.db)",
		},
	}

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a backup of the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := badgerPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("no database exists to backup at %s", path)
			}

			backupFile := flags[outputFlag].GetString()
			if backupFile == "" {
				backupFile = filepath.Join(DefaultBackupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
			}
			if err := os.MkdirAll(filepath.Dir(backupFile), 0o755); err != nil {
				return fmt.Errorf("failed to create backup directory: %w", err)
			}

			store, err := repositories.OpenBadger(path)
			if err != nil {
				return err
			}
			defer store.Close()

			f, err := os.Create(backupFile)
			if err != nil {
				return fmt.Errorf("failed to create backup file: %w", err)
			}
			defer f.Close()

			if err := store.Backup(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database backed up successfully to %s\n", backupFile)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func newRestoreCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the database from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := badgerPath()
			if err != nil {
				return err
			}
			return restore(cmd, path, args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, yesFlag, "y", false, "Replace an existing database without asking")
	return cmd
}

func restore(cmd *cobra.Command, path, backupFile string, yes bool) (err error) {
	fi, err := os.Stat(backupFile)
	if os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupFile)
	} else if err != nil {
		return err
	}
	if fi.Size() == 0 {
		return fmt.Errorf("backup file is empty: %s", backupFile)
	}

	_, statErr := os.Stat(path)
	existing := statErr == nil
	if existing && !yes && !confirm(cmd, "Existing database found. Do you want to replace it?") {
		fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled")
		return nil
	}

	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	store, err := repositories.OpenBadger(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if existing {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear existing database: %w", err)
		}
	}

	// Badger can panic on a corrupt stream.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic occurred during restore: %v", r)
		}
	}()
	if err := store.Restore(f); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Database restored successfully")
	return nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return errors.New("database.url is required to migrate (set ESTATE_DATABASE__URL)")
			}
			if err := postgres.Migrate(cmd.Context(), cfg.Database.URL, &log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied successfully")
			return nil
		},
	}
}
