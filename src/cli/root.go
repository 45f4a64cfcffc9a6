package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the root cobra command for the redmine-plugin-setup CLI.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redmine-plugin-setup",
		Short: "Rewrite the registration metadata of a Redmine plugin's init.rb",
		Long: `redmine-plugin-setup reads the Redmine::Plugin.register block of init.rb,
asks for a new value for each metadata field (Enter keeps the current one),
shows the result for confirmation, keeps a timestamped backup of the old file
and writes the new one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	cmd.AddCommand(newSetupCmd(stdout, stderr))
	cmd.AddCommand(newUpdateCmd(stdout, stderr))
	cmd.AddCommand(newShowCmd(stdout, stderr))
	cmd.AddCommand(newBackupsCmd(stdout, stderr))
	cmd.AddCommand(newRestoreCmd(stdout, stderr))
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

// Execute runs the CLI with the process stdio.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetIn(os.Stdin)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
