// Package tui fills a form model interactively from the terminal. Prompting
// goes through the Driver interface so sessions can be scripted in tests; the
// default driver wraps survey.
package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formdata/pkg/form"
	"github.com/goliatone/go-formdata/pkg/render"
)

// Driver abstracts the prompt primitives a fill session needs.
type Driver interface {
	Input(prompt, defaultValue string) (string, error)
	Password(prompt string) (string, error)
	Confirm(prompt string, defaultValue bool) (bool, error)
	Select(prompt string, options []string, defaultValue string) (string, error)
	MultiSelect(prompt string, options []string) ([]string, error)
}

// Submission holds the collected values keyed by element name. Multi-value
// elements (checkbox groups, multi-selects) carry one entry per selection.
type Submission map[string][]string

// Option configures a Session.
type Option func(*Session)

// WithDriver replaces the default survey-backed driver.
func WithDriver(driver Driver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session walks a form element by element and collects a submission.
type Session struct {
	driver Driver
}

// NewSession constructs a fill session.
func NewSession(options ...Option) *Session {
	s := &Session{driver: surveyDriver{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Fill prompts for every element in order. Required text elements are
// re-prompted until they yield a value; unsupported kinds are skipped.
func (s *Session) Fill(ctx context.Context, f *form.Form) (Submission, error) {
	submission := make(Submission, f.Len())

	for _, element := range f.Elements() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
		values, ok, err := s.ask(element)
		if err != nil {
			return nil, fmt.Errorf("tui: prompt %q: %w", element.Name, err)
		}
		if ok {
			submission[element.Name] = values
		}
	}
	return submission, nil
}

func (s *Session) ask(el form.Element) ([]string, bool, error) {
	prompt := promptFor(el)

	switch el.Kind {
	case form.KindInput:
		if el.InputType == form.InputCheckbox {
			return s.askConfirm(prompt, el.Checked)
		}
		if el.InputType == form.InputPassword {
			return s.askPassword(prompt, el.Required)
		}
		return s.askInput(prompt, el.Value, el.Required)

	case form.KindCheckbox:
		return s.askConfirm(prompt, el.Checked)

	case form.KindTextarea, form.KindDatalist:
		return s.askInput(prompt, el.Value, el.Required)

	case form.KindRadioGroup:
		value, err := s.driver.Select(prompt, optionValues(el.Options), el.DefaultValue)
		if err != nil {
			return nil, false, err
		}
		return []string{value}, true, nil

	case form.KindSelect:
		if el.Multiple {
			values, err := s.driver.MultiSelect(prompt, optionValues(el.Options))
			if err != nil {
				return nil, false, err
			}
			return values, len(values) > 0, nil
		}
		value, err := s.driver.Select(prompt, optionValues(el.Options), "")
		if err != nil {
			return nil, false, err
		}
		return []string{value}, true, nil

	case form.KindCheckboxGroup:
		values, err := s.driver.MultiSelect(prompt, optionValues(el.Options))
		if err != nil {
			return nil, false, err
		}
		return values, len(values) > 0, nil

	default:
		return nil, false, nil
	}
}

func (s *Session) askInput(prompt, defaultValue string, required bool) ([]string, bool, error) {
	for {
		value, err := s.driver.Input(prompt, defaultValue)
		if err != nil {
			return nil, false, err
		}
		if value == "" {
			if required {
				continue
			}
			return nil, false, nil
		}
		return []string{value}, true, nil
	}
}

func (s *Session) askPassword(prompt string, required bool) ([]string, bool, error) {
	for {
		value, err := s.driver.Password(prompt)
		if err != nil {
			return nil, false, err
		}
		if value == "" {
			if required {
				continue
			}
			return nil, false, nil
		}
		return []string{value}, true, nil
	}
}

func (s *Session) askConfirm(prompt string, defaultValue bool) ([]string, bool, error) {
	checked, err := s.driver.Confirm(prompt, defaultValue)
	if err != nil {
		return nil, false, err
	}
	if !checked {
		return nil, false, nil
	}
	return []string{"on"}, true, nil
}

// promptFor strips label markup down to plain text and falls back to the
// element name when no label is set.
func promptFor(el form.Element) string {
	if label := render.PlainLabel(el.Label); label != "" {
		return label
	}
	return el.Name
}

func optionValues(options []form.Option) []string {
	values := make([]string, 0, len(options))
	for _, option := range options {
		values = append(values, option.Value)
	}
	return values
}
