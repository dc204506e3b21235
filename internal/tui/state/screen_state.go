package state

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/roster/internal/models"
)

// Status messages shown under the form
const (
	MsgIncompleteFields = "Please complete all fields."
	MsgUserAddedFmt     = "User added: %s %s"
	MsgAddFailed        = "Error adding user"
	MsgLastUserDeleted  = "Last user deleted"
	MsgDeleteFailed     = "Error deleting user"
	MsgListFailed       = "Error listing users"
)

// StatusLevel tells the view how to color the status message
type StatusLevel int

const (
	// LevelInfo is used for validation hints
	LevelInfo StatusLevel = iota
	// LevelSuccess is used after a store operation succeeds
	LevelSuccess
	// LevelError is used after a store operation fails
	LevelError
)

// ScreenState is the display state of the user screen.
// It is never persisted. Every field is changed only through the
// transition methods below so each user action has one well-defined effect.
type ScreenState struct {
	firstNameInput string
	lastNameInput  string
	statusMessage  string
	statusLevel    StatusLevel
	listingText    string
}

// NewScreenState creates a ScreenState with every field empty.
func NewScreenState() *ScreenState {
	return &ScreenState{}
}

// FirstNameInput returns the current first name field contents.
func (s *ScreenState) FirstNameInput() string { return s.firstNameInput }

// LastNameInput returns the current last name field contents.
func (s *ScreenState) LastNameInput() string { return s.lastNameInput }

// StatusMessage returns the outcome of the last action.
func (s *ScreenState) StatusMessage() string { return s.statusMessage }

// StatusLevel returns the severity of StatusMessage.
func (s *ScreenState) StatusLevel() StatusLevel { return s.statusLevel }

// ListingText returns the last rendered listing.
func (s *ScreenState) ListingText() string { return s.listingText }

// SetInputs records what the user has typed so far.
func (s *ScreenState) SetInputs(firstName, lastName string) {
	s.firstNameInput = firstName
	s.lastNameInput = lastName
}

// Submit runs the validation gate for the add action.
// When either input is blank it sets the incomplete-fields status and
// returns ok=false. Otherwise it clears both inputs and returns the
// submitted values; the insert itself has not happened yet.
func (s *ScreenState) Submit() (firstName, lastName string, ok bool) {
	if isBlank(s.firstNameInput) || isBlank(s.lastNameInput) {
		s.setStatus(LevelInfo, MsgIncompleteFields)
		return "", "", false
	}

	firstName, lastName = s.firstNameInput, s.lastNameInput
	s.firstNameInput = ""
	s.lastNameInput = ""
	return firstName, lastName, true
}

// UserAdded records a completed insert of the submitted names.
func (s *ScreenState) UserAdded(firstName, lastName string) {
	s.setStatus(LevelSuccess, fmt.Sprintf(MsgUserAddedFmt, firstName, lastName))
}

// AddFailed records a failed insert.
func (s *ScreenState) AddFailed() {
	s.setStatus(LevelError, MsgAddFailed)
}

// LastUserDeleted records a completed delete-most-recent, including the
// case where the table was already empty.
func (s *ScreenState) LastUserDeleted() {
	s.setStatus(LevelSuccess, MsgLastUserDeleted)
}

// DeleteFailed records a failed delete-most-recent.
func (s *ScreenState) DeleteFailed() {
	s.setStatus(LevelError, MsgDeleteFailed)
}

// UsersListed replaces the listing with users.
func (s *ScreenState) UsersListed(users []*models.User) {
	s.listingText = FormatListing(users)
}

// ListFailed records a failed listing. The previous listing stays visible.
func (s *ScreenState) ListFailed() {
	s.setStatus(LevelError, MsgListFailed)
}

func (s *ScreenState) setStatus(level StatusLevel, msg string) {
	s.statusLevel = level
	s.statusMessage = msg
}

// FormatListing renders one "first - last" line per user
func FormatListing(users []*models.User) string {
	lines := make([]string, len(users))
	for i, u := range users {
		lines[i] = u.DisplayLine()
	}
	return strings.Join(lines, "\n")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
