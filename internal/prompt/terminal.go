package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Compile-time check that Terminal implements Prompter.
var _ Prompter = (*Terminal)(nil)

// Terminal prompts on the controlling terminal using huh forms.
type Terminal struct{}

func (Terminal) Choose(title string, options []string, def string) (string, error) {
	selected := def

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(&selected),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return selected, nil
}

func (Terminal) Input(title, def string) (string, error) {
	value := def

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Value(&value),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return value, nil
}
