package user

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/roster/internal/testutil"
)

// ============================================================================
// CREATE
// ============================================================================

func TestCreateUser(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(db, nil)

	result, err := svc.CreateUser(context.Background(), CreateUserRequest{FirstName: "Ana", LastName: "Gomez"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.ID == 0 {
		t.Error("Expected user ID to be set")
	}
	if result.FirstName != "Ana" || result.LastName != "Gomez" {
		t.Errorf("Expected Ana Gomez, got %s %s", result.FirstName, result.LastName)
	}
}

func TestCreateUser_BlankNames(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(db, nil)

	testCases := []struct {
		name    string
		req     CreateUserRequest
		wantErr error
	}{
		{"empty first", CreateUserRequest{FirstName: "", LastName: "Gomez"}, ErrEmptyFirstName},
		{"whitespace first", CreateUserRequest{FirstName: " \t ", LastName: "Gomez"}, ErrEmptyFirstName},
		{"empty last", CreateUserRequest{FirstName: "Ana", LastName: ""}, ErrEmptyLastName},
		{"whitespace last", CreateUserRequest{FirstName: "Ana", LastName: "   "}, ErrEmptyLastName},
		{"both empty", CreateUserRequest{}, ErrEmptyFirstName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if n := testutil.CountTestUsers(t, db); n != 0 {
		t.Errorf("Expected no inserts for blank input, got %d rows", n)
	}
}

// ============================================================================
// LIST
// ============================================================================

func TestListUsers_RoundTrip(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(db, nil)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, CreateUserRequest{FirstName: "Ana", LastName: "Gomez"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	users, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("Expected 1 user, got %d", len(users))
	}
	if users[0].DisplayLine() != "Ana - Gomez" {
		t.Errorf("Expected 'Ana - Gomez', got %q", users[0].DisplayLine())
	}
}

func TestListUsers_Empty(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(db, nil)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if users == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(users) != 0 {
		t.Errorf("Expected 0 users, got %d", len(users))
	}
}

func TestListUsers_Idempotent(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, db, "Ana", "Gomez")
	testutil.CreateTestUser(t, db, "Luis", "Perez")
	testutil.CreateTestUser(t, db, "Eva", "Ruiz")
	svc := NewService(db, nil)
	ctx := context.Background()

	first, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("first ListUsers failed: %v", err)
	}
	second, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("second ListUsers failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Expected same length, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if *first[i] != *second[i] {
			t.Errorf("Row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestListUsers_InsertionOrder(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	a := testutil.CreateTestUser(t, db, "A", "One")
	b := testutil.CreateTestUser(t, db, "B", "Two")
	c := testutil.CreateTestUser(t, db, "C", "Three")
	svc := NewService(db, nil)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	want := []int{a, b, c}
	if len(users) != len(want) {
		t.Fatalf("Expected %d users, got %d", len(want), len(users))
	}
	for i, id := range want {
		if users[i].ID != id {
			t.Errorf("Position %d: expected ID %d, got %d", i, id, users[i].ID)
		}
	}
}

// ============================================================================
// DELETE MOST RECENT
// ============================================================================

func TestDeleteMostRecentUser_RemovesNewest(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	a := testutil.CreateTestUser(t, db, "A", "One")
	b := testutil.CreateTestUser(t, db, "B", "Two")
	testutil.CreateTestUser(t, db, "C", "Three")
	svc := NewService(db, nil)
	ctx := context.Background()

	deleted, err := svc.DeleteMostRecentUser(ctx)
	if err != nil {
		t.Fatalf("DeleteMostRecentUser failed: %v", err)
	}
	if !deleted {
		t.Error("Expected a row to be deleted")
	}

	users, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 || users[0].ID != a || users[1].ID != b {
		t.Fatalf("Expected exactly {A, B} to remain, got %+v", users)
	}
}

func TestDeleteMostRecentUser_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(db, nil)

	deleted, err := svc.DeleteMostRecentUser(context.Background())
	if err != nil {
		t.Fatalf("Expected no error on empty table, got %v", err)
	}
	if deleted {
		t.Error("Expected nothing to be deleted")
	}
	if n := testutil.CountTestUsers(t, db); n != 0 {
		t.Errorf("Expected table to stay empty, got %d rows", n)
	}
}

func TestDeleteMostRecentUser_Repeated(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, db, "A", "One")
	testutil.CreateTestUser(t, db, "B", "Two")
	svc := NewService(db, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.DeleteMostRecentUser(ctx); err != nil {
			t.Fatalf("delete %d failed: %v", i, err)
		}
	}

	count, err := svc.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 users, got %d", count)
	}
}

// ============================================================================
// STORAGE FAILURES
// ============================================================================

func TestStorageErrors(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(db, nil)
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{FirstName: "Ana", LastName: "Gomez"})
	assertStorageErr(t, "CreateUser", err)

	_, err = svc.ListUsers(ctx)
	assertStorageErr(t, "ListUsers", err)

	_, err = svc.DeleteMostRecentUser(ctx)
	assertStorageErr(t, "DeleteMostRecentUser", err)

	_, err = svc.CountUsers(ctx)
	assertStorageErr(t, "CountUsers", err)
}

func assertStorageErr(t *testing.T, op string, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error on closed database", op)
	}
	if !errors.Is(err, ErrStorage) {
		t.Errorf("%s: expected ErrStorage, got %v", op, err)
	}
	var se *StorageError
	if !errors.As(err, &se) || se.Err == nil {
		t.Errorf("%s: expected *StorageError wrapping the driver error, got %T", op, err)
	}
}
