package converters

import (
	"github.com/thenoetrevino/roster/internal/database/generated"
	"github.com/thenoetrevino/roster/internal/models"
)

// UserToModel converts a generated.User to models.User
func UserToModel(u generated.User) *models.User {
	return &models.User{
		ID:        int(u.ID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UsersToModels converts a slice of generated.User to a slice of models.User.
// A nil input yields an empty, non-nil slice.
func UsersToModels(users []generated.User) []*models.User {
	result := make([]*models.User, len(users))
	for i, u := range users {
		result[i] = UserToModel(u)
	}
	return result
}
