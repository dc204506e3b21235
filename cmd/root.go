package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli/user"
	"github.com/thenoetrevino/roster/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Roster - add, list and delete users from the terminal",
	Long: `Roster keeps a list of first and last names in a local SQLite store.

Run without a subcommand to open the interactive screen, or use
"roster user" for scripting.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		return launcher.Launch(dataDir)
	},
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding the user store and logs (default ~/.roster)")
	rootCmd.AddCommand(user.UserCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
