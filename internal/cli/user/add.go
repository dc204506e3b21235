package user

import (
	"errors"
	"fmt"
	"log"
	"os"

	"charm.land/huh/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	userservice "github.com/thenoetrevino/roster/internal/services/user"
)

var (
	// errMissingName is returned when a name is blank after flags and prompt
	errMissingName = errors.New("first and last name are required")

	// stdinIsTerminal decides whether missing names are prompted for
	stdinIsTerminal = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
)

// AddCmd returns the user add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		Long: `Add a user with a first and last name.

When a name flag is missing and stdin is a terminal, a form asks for it.

Examples:
  # Human-readable output
  roster user add --first="Ana" --last="Gomez"

  # JSON output for agents
  roster user add --first="Ana" --last="Gomez" --json

  # Quiet mode for bash capture
  USER_ID=$(roster user add --first="Ana" --last="Gomez" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("first", "", "First name")
	cmd.Flags().String("last", "", "Last name")
	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	firstName, _ := cmd.Flags().GetString("first")
	lastName, _ := cmd.Flags().GetString("last")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	missing := userservice.IsBlank(firstName) || userservice.IsBlank(lastName)
	if missing && !jsonOutput && !quietMode && stdinIsTerminal() {
		if err := promptNames(&firstName, &lastName); err != nil {
			if fmtErr := formatter.Error("PROMPT_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return cli.WithExitCode(cli.ExitUsage, err)
		}
	}

	// Validate before the store is opened so a blank name never reaches it
	if userservice.IsBlank(firstName) || userservice.IsBlank(lastName) {
		if fmtErr := formatter.ErrorWithSuggestion("VALIDATION_ERROR", errMissingName.Error(),
			`pass both --first and --last, e.g. --first="Ana" --last="Gomez"`); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.WithExitCode(cli.ExitValidation, errMissingName)
	}

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

	user, err := cliInstance.App.UserService.CreateUser(ctx, userservice.CreateUserRequest{
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		if fmtErr := formatter.Error("USER_ADD_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	return formatter.Success(user, func() {
		fmt.Printf("%s User added: %s %s (ID: %d)\n",
			styles.SuccessStyle.Render("✓"), user.FirstName, user.LastName, user.ID)
	})
}

// promptNames asks for whichever names are still blank
func promptNames(firstName, lastName *string) error {
	required := func(s string) error {
		if userservice.IsBlank(s) {
			return errors.New("required")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("first").
				Title("First Name").
				Placeholder("Enter first name...").
				Validate(required).
				Value(firstName),
			huh.NewInput().
				Key("last").
				Title("Last Name").
				Placeholder("Enter last name...").
				Validate(required).
				Value(lastName),
		),
	)
	return form.Run()
}
