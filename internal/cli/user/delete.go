package user

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/styles"
)

// DeleteLastCmd returns the user delete-last subcommand
func DeleteLastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-last",
		Short: "Delete the most recently added user",
		Long: `Delete the user with the highest ID.

Deleting from an empty store is not an error; nothing happens.`,
		RunE: runDeleteLast,
	}

	addOutputFlags(cmd, "No output; use the exit code")

	return cmd
}

func runDeleteLast(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx, cmd)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	deleted, err := cliInstance.App.UserService.DeleteMostRecentUser(ctx)
	if err != nil {
		if fmtErr := formatter.Error("USER_DELETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	return formatter.Success(deleted, func() {
		if !deleted {
			fmt.Println("No users to delete")
			return
		}
		fmt.Printf("%s Last user deleted\n", styles.SuccessStyle.Render("✓"))
	})
}
