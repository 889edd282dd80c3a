package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/remark/domain"
	"github.com/goto/remark/internal/server"
	"github.com/goto/remark/pkg/log"
)

func CommentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment"},
		Short:   "Manage comment threads",
		Example: heredoc.Doc(`
			$ remark comments purge --parent-type question --parent-id 68bfac12249e8b4fc045b596
		`),
	}

	cmd.AddCommand(
		purgeCommentsCmd(),
	)
	addConfigFlag(cmd)

	return cmd
}

func purgeCommentsCmd() *cobra.Command {
	var parent domain.ParentReference

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every comment of a parent",
		Long: heredoc.Doc(`
			Delete the whole comment thread of a parent. Meant to be called when
			the parent itself is deleted.
		`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()
			logger := log.NewCtxLogger(cfg.LogLevel, cfg.LogFormat)
			services, cleanup, err := server.InitServices(ctx, server.ServiceDeps{
				Config: &cfg,
				Logger: logger,
			})
			if err != nil {
				return fmt.Errorf("initializing services: %w", err)
			}
			defer cleanup()

			if err := services.CommentService.DeleteThread(ctx, parent); err != nil {
				return fmt.Errorf("purging comments of %s: %w", parent, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged comments of %s\n", parent)
			return nil
		},
	}

	cmd.Flags().StringVar(&parent.Type, "parent-type", "", "Parent type, e.g. question")
	cmd.Flags().StringVar(&parent.ID, "parent-id", "", "Parent id")
	cmd.MarkFlagRequired("parent-type")
	cmd.MarkFlagRequired("parent-id")

	return cmd
}
