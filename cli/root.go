package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "remark <command> <subcommand> [flags]",
		Short:         "Comment threads for any entity",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: heredoc.Doc(`
			Remark stores ordered comment threads attached to parent entities
			such as questions or projects.
		`),
		Example: heredoc.Doc(`
			$ remark server start -c ./config.yaml
			$ remark comments purge --parent-type question --parent-id 68bfac12
			$ remark config init > config.yaml
		`),
	}

	cmd.AddCommand(
		ServerCmd(),
		CommentsCmd(),
		ConfigCmd(),
	)

	return cmd
}

func addConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")
}
