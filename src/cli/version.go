package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"redmine-plugin-setup/src/version"
)

func newVersionCmd(stdout io.Writer) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of redmine-plugin-setup",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(stdout, version.Version)
				return
			}
			fmt.Fprintf(stdout, "redmine-plugin-setup %s (%s %s/%s)\n", version.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
