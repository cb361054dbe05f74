package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"product-with-repeat/ds"
	"product-with-repeat/product"
)

const (
	StepperStateFresh     = "fresh"
	StepperStateStepping  = "stepping"
	StepperStateExhausted = "exhausted"
)

// Stepper pulls one tuple from the iterator per key press.
type Stepper struct {
	it      *product.Iter[string]
	items   []string
	repeat  int
	current []string
	indices []int
	steps   int
	state   string
}

func CreateStepper(items []string, repeat int) Stepper {
	return Stepper{
		it:     product.New(items, repeat),
		items:  items,
		repeat: repeat,
		state:  StepperStateFresh,
	}
}

func (s Stepper) Step() Stepper {
	if s.state == StepperStateExhausted {
		return s
	}
	indices := s.it.Indices()
	tuple, ok := s.it.Next()
	if !ok {
		s.state = StepperStateExhausted
		s.current = nil
		s.indices = nil
		return s
	}
	s.current = product.Values(tuple)
	s.indices = indices
	s.steps++
	s.state = StepperStateStepping
	return s
}

func (s Stepper) State() string {
	return s.state
}

func (s Stepper) Current() []string {
	return s.current
}

func (s Stepper) View() string {
	output := "PRODUCT WITH REPEAT\n\n"
	output += fmt.Sprintf("Items: [%s], repeat: %d\n", strings.Join(s.items, " "), s.repeat)

	remaining, ok := s.it.Remaining()
	remainingStr := fmt.Sprint(remaining)
	if !ok {
		remainingStr = "more than 2^64"
	}

	switch s.state {
	case StepperStateFresh:
		output += fmt.Sprintf("%s tuples to go. Press enter to start.\n", remainingStr)
	case StepperStateStepping:
		output += fmt.Sprintf("#%d: (%s) at %v\n", s.steps, strings.Join(s.current, ", "), s.indices)
		output += fmt.Sprintf("%s remaining.\n", remainingStr)
	case StepperStateExhausted:
		output += fmt.Sprintf("Exhausted after %d tuples.\n", s.steps)
	default:
		log.Panic(ds.ErrUnreachableCode{Caller: fmt.Sprintf(`Stepper.View with state "%s"`, s.state)})
	}
	output += "\nenter/space: next, q: quit\n"

	return output
}

func (s Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return s, tea.Quit
	case "enter", " ", "j":
		return s.Step(), nil
	}
	return s, nil
}

func (s Stepper) Init() tea.Cmd {
	return nil
}
