package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/app"
	rostercli "github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// It lives in its own package so service tests can import testutil without
// pulling in app.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// ExecuteCLICommand runs cmd against testApp instead of opening a store on disk
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetContext(rostercli.WithApp(context.Background(), testApp))
	return testutil.ExecuteCommand(t, cmd, args...)
}
