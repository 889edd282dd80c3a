package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/remark/internal/server"
	"github.com/goto/remark/internal/store"
	"github.com/goto/remark/internal/store/postgres"
	"github.com/goto/remark/pkg/log"
)

func ServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the comment server",
		Example: heredoc.Doc(`
			$ remark server start
			$ remark server migrate -c ./config.yaml
		`),
	}

	cmd.AddCommand(
		startServerCmd(),
		migrateCmd(),
	)
	addConfigFlag(cmd)

	return cmd
}

func startServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return server.RunServer(&cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DB.Driver != store.DriverPostgres {
				return fmt.Errorf("migrations only apply to the %s driver, configured driver is %q", store.DriverPostgres, cfg.DB.Driver)
			}

			logger := log.NewCtxLogger(cfg.LogLevel, cfg.LogFormat)
			pg, err := postgres.NewStore(cfg.DB.Postgres)
			if err != nil {
				return fmt.Errorf("connecting to postgres: %w", err)
			}
			defer pg.Close()

			if err := pg.Migrate(); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			logger.Info(context.Background(), "migrations applied")
			return nil
		},
	}
}

func loadConfig(cmd *cobra.Command) (server.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return server.Config{}, fmt.Errorf("getting config flag value: %w", err)
	}
	cfg, err := server.LoadConfig(configFile)
	if err != nil {
		return server.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
