package cli

import (
	"io"

	"github.com/spf13/cobra"

	"redmine-plugin-setup/src/rewriter"
)

func newRestoreCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup>",
		Short: "Replace the manifest with one of its backups",
		Long: `Replace the manifest with the content of a backup. The current manifest is
backed up first, so a restore can itself be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, stderr)
			if err != nil {
				return err
			}
			rw := rewriter.New(rewriter.Config{
				Path:     s.path,
				Messages: s.catalog.Messages,
				Safety:   s.safety,
			}, cmd.InOrStdin(), stdout, s.log)
			_, err = rw.Restore(args[0])
			return s.explain(err)
		},
	}
}
