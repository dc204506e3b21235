package user

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rostercli "github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/database"
	userservice "github.com/thenoetrevino/roster/internal/services/user"
	"github.com/thenoetrevino/roster/internal/testutil"
	"github.com/thenoetrevino/roster/internal/testutil/cli"
)

func init() {
	// Tests never prompt, even when run from a terminal
	stdinIsTerminal = func() bool { return false }
}

// ============================================================================
// ADD
// ============================================================================

func TestAddUser_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("quiet prints the new ID", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--first", "Ana",
			"--last", "Gomez",
			"--quiet",
		})
		require.NoError(t, err)

		idStr := strings.TrimSpace(output)
		assert.Regexp(t, `^\d+$`, idStr)

		var first, last string
		err = db.QueryRowContext(context.Background(),
			"SELECT firstName, lastName FROM users WHERE id = ?", idStr).Scan(&first, &last)
		require.NoError(t, err)
		assert.Equal(t, "Ana", first)
		assert.Equal(t, "Gomez", last)
	})

	t.Run("json output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--first", "Luis",
			"--last", "Perez",
			"--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		user := result["data"].(map[string]interface{})
		assert.Equal(t, "Luis", user["first_name"])
		assert.Equal(t, "Perez", user["last_name"])
	})

	t.Run("human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--first", "Eva",
			"--last", "Diaz",
		})
		require.NoError(t, err)
		assert.Contains(t, output, "User added: Eva Diaz")
	})

	assert.Equal(t, 3, testutil.CountTestUsers(t, db))
}

func TestAddUser_LongNameStoredInFull(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	longFirst := strings.Repeat("a", 150)

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
		"--first", longFirst, "--last", "B", "--quiet",
	})
	require.NoError(t, err)

	var stored string
	err = db.QueryRowContext(context.Background(),
		"SELECT firstName FROM users WHERE id = ?", strings.TrimSpace(output)).Scan(&stored)
	require.NoError(t, err)
	assert.Equal(t, longFirst, stored)
}

func TestAddUser_BlankNames(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no flags", []string{}},
		{"missing last", []string{"--first", "Ana"}},
		{"whitespace first", []string{"--first", "   ", "--last", "Gomez"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, app := cli.SetupCLITest(t)

			_, err := cli.ExecuteCLICommand(t, app, AddCmd(), append(tt.args, "--quiet"))

			require.Error(t, err)
			assert.Equal(t, rostercli.ExitValidation, rostercli.ExitCode(err))
			assert.Equal(t, 0, testutil.CountTestUsers(t, db))
		})
	}
}

func TestAddUser_StorageFailure(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	require.NoError(t, db.Close())

	_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
		"--first", "Ana", "--last", "Gomez", "--quiet",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, userservice.ErrStorage))
	assert.Equal(t, rostercli.ExitError, rostercli.ExitCode(err))
}

// ============================================================================
// LIST
// ============================================================================

func TestListUsers(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("empty store", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "No users found")
	})

	firstID := testutil.CreateTestUser(t, db, "Ana", "Gomez")
	secondID := testutil.CreateTestUser(t, db, "Luis", "Perez")

	t.Run("quiet prints IDs in insertion order", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)

		lines := strings.Fields(output)
		require.Len(t, lines, 2)
		assert.Equal(t, []string{strconv.Itoa(firstID), strconv.Itoa(secondID)}, lines)
	})

	t.Run("json", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		users := result["data"].([]interface{})
		require.Len(t, users, 2)
		assert.Equal(t, "Ana", users[0].(map[string]interface{})["first_name"])
		assert.Equal(t, "Luis", users[1].(map[string]interface{})["first_name"])
	})

	t.Run("human", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "Ana - Gomez")
		assert.Contains(t, output, "Luis - Perez")
	})
}

// ============================================================================
// DELETE-LAST / COUNT
// ============================================================================

func TestDeleteLast(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	testutil.CreateTestUser(t, db, "A", "One")
	testutil.CreateTestUser(t, db, "B", "Two")
	testutil.CreateTestUser(t, db, "C", "Three")

	output, err := cli.ExecuteCLICommand(t, app, DeleteLastCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Equal(t, true, testutil.ParseJSON(t, output)["data"])

	var remaining []string
	rows, err := db.QueryContext(context.Background(), "SELECT firstName FROM users ORDER BY id")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		remaining = append(remaining, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"A", "B"}, remaining)
}

func TestDeleteLast_EmptyStore(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, DeleteLastCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Equal(t, false, testutil.ParseJSON(t, output)["data"])

	output, err = cli.ExecuteCLICommand(t, app, DeleteLastCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "No users to delete")
}

func TestDeleteLast_QuietPrintsNothing(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	testutil.CreateTestUser(t, db, "A", "One")

	output, err := cli.ExecuteCLICommand(t, app, DeleteLastCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Empty(t, output)
	assert.Equal(t, 0, testutil.CountTestUsers(t, db))
}

func TestCount(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	testutil.CreateTestUser(t, db, "A", "One")
	testutil.CreateTestUser(t, db, "B", "Two")

	output, err := cli.ExecuteCLICommand(t, app, CountCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(output))

	output, err = cli.ExecuteCLICommand(t, app, CountCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Equal(t, float64(2), testutil.ParseJSON(t, output)["data"])
}

// ============================================================================
// DATA DIRECTORY
// ============================================================================

// TestDataDirFlag runs the commands the way main does, through a parent
// command carrying --data-dir, against a store file on disk.
func TestDataDirFlag(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "roster")

	newRoot := func() *cobra.Command {
		root := &cobra.Command{Use: "roster"}
		root.PersistentFlags().String("data-dir", "", "data directory")
		root.AddCommand(UserCmd())
		return root
	}

	_, err := testutil.ExecuteCommand(t, newRoot(),
		"user", "add", "--first", "Ana", "--last", "Gomez", "--quiet", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dataDir, database.DBName))

	// A fresh command reopens the same file
	output, err := testutil.ExecuteCommand(t, newRoot(),
		"user", "list", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Ana - Gomez")
}

