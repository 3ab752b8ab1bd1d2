package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

// ErrAborted is returned when the user cancels a prompt
var ErrAborted = huh.ErrUserAborted

// Choice is one entry of a Select prompt
type Choice struct {
	Label string
	Value string
}

// Confirm asks a yes/no question
func Confirm(title string, def bool) (bool, error) {
	answer := def
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	).Run()
	return answer, err
}

// Select asks the user to pick one of the choices and returns its value
func Select(title string, choices []Choice) (string, error) {
	options := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label, c.Value))
	}

	var selected string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	).Run()
	return selected, err
}

// Input asks for a line of text, falling back to def when left empty
func Input(title, def string) (string, error) {
	var value string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(def).
				Value(&value),
		),
	).Run()
	if err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		value = def
	}
	return value, nil
}

// Password asks for a secret that must not be empty
func Password(title string) (string, error) {
	var value string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a value is required")
					}
					return nil
				}).
				Value(&value),
		),
	).Run()
	return strings.TrimSpace(value), err
}
