package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/roster/internal/converters"
	"github.com/thenoetrevino/roster/internal/database/generated"
	"github.com/thenoetrevino/roster/internal/models"
)

// Service defines the user store operations the screen and CLI rely on
type Service interface {
	// Read operations
	ListUsers(ctx context.Context) ([]*models.User, error)
	CountUsers(ctx context.Context) (int, error)

	// Write operations
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	DeleteMostRecentUser(ctx context.Context) (bool, error)
}

// CreateUserRequest encapsulates data for creating a user
type CreateUserRequest struct {
	FirstName string
	LastName  string
}

// service implements Service interface using SQLC directly
type service struct {
	queries generated.Querier
	logger  *slog.Logger
}

// NewService creates a new user service on top of db.
// A nil logger falls back to slog.Default().
func NewService(db generated.DBTX, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		queries: generated.New(db),
		logger:  logger,
	}
}

// ListUsers returns every user in insertion order
func (s *service) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.queries.ListUsers(ctx)
	if err != nil {
		return nil, storageErr("list users", err)
	}
	return converters.UsersToModels(rows), nil
}

// CountUsers returns the number of stored users
func (s *service) CountUsers(ctx context.Context) (int, error) {
	count, err := s.queries.CountUsers(ctx)
	if err != nil {
		return 0, storageErr("count users", err)
	}
	return int(count), nil
}

// CreateUser validates and inserts a new user. The store assigns the ID.
func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := validateCreateUser(req); err != nil {
		return nil, err
	}

	row, err := s.queries.CreateUser(ctx, generated.CreateUserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, storageErr("create user", err)
	}

	s.logger.Debug("user created", "id", row.ID)
	return converters.UserToModel(row), nil
}

// DeleteMostRecentUser removes the user with the highest ID.
// It reports false, with no error, when there was nothing to delete.
func (s *service) DeleteMostRecentUser(ctx context.Context) (bool, error) {
	affected, err := s.queries.DeleteMostRecentUser(ctx)
	if err != nil {
		return false, storageErr("delete most recent user", err)
	}

	if affected == 0 {
		s.logger.Debug("delete most recent user: table empty")
		return false, nil
	}
	return true, nil
}

func validateCreateUser(req CreateUserRequest) error {
	if IsBlank(req.FirstName) {
		return ErrEmptyFirstName
	}
	if IsBlank(req.LastName) {
		return ErrEmptyLastName
	}
	return nil
}

// IsBlank reports whether s is empty or whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
