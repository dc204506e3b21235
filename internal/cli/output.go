package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success writes a command result.
// Quiet mode prints IDs or counts only, JSON mode wraps data in a success
// envelope, and human mode calls human (or prints data when human is nil).
func (f *OutputFormatter) Success(data any, human func()) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetID() int }:
			fmt.Printf("%d\n", v.GetID())
			return nil
		case []*models.User:
			for _, u := range v {
				fmt.Printf("%d\n", u.ID)
			}
			return nil
		case int:
			fmt.Printf("%d\n", v)
			return nil
		case bool:
			// the exit code says it all
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human != nil {
		human()
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion.
// Quiet mode prints nothing; the exit code carries the failure.
func (f *OutputFormatter) ErrorWithSuggestion(code, message, suggestion string) error {
	switch {
	case f.JSON:
		body := map[string]any{"code": code, "message": message}
		if suggestion != "" {
			body["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   body,
		})
	case f.Quiet:
		return nil
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", styles.SubtitleStyle.Render("Suggestion:"), suggestion)
	}
	return nil
}
