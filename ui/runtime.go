package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func StartStepper(items []string, repeat int) error {
	stepper := CreateStepper(items, repeat)
	if _, err := tea.NewProgram(stepper).Run(); err != nil {
		return errors.Wrap(err, "StartStepper error")
	}
	return nil
}
