package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/chaz8081/moodlog/internal/mood"
)

// promptEntry asks for a rating (and a note, unless one was passed with -m)
// on an interactive terminal.
var promptEntry = runPromptForm

func runPromptForm(presetNote string) (float64, string, error) {
	var raw string
	note := presetNote

	fields := []huh.Field{
		huh.NewInput().
			Title(fmt.Sprintf("How are you feeling? (%g-%g)", mood.MinValue, mood.MaxValue)).
			Placeholder("5").
			Validate(validateRatingInput).
			Value(&raw),
	}
	if presetNote == "" {
		fields = append(fields, huh.NewInput().
			Title("Anything to add?").
			Description("Optional, leave empty to skip").
			Value(&note))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return 0, "", fmt.Errorf("prompt: %w", err)
	}

	return promptResult(raw, note)
}

// promptResult turns the form answers into a rating and note. The note is
// kept as typed, the same as a note passed with -m.
func promptResult(raw, note string) (float64, string, error) {
	v, err := mood.ParseValue(strings.TrimSpace(raw))
	if err != nil {
		return 0, "", err
	}
	return v, note, nil
}

func validateRatingInput(s string) error {
	_, err := mood.ParseValue(strings.TrimSpace(s))
	return err
}
