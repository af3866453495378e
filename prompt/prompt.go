// Package prompt wraps the survey library behind the small set of
// interactions the wizard needs, so the orchestration logic stays testable.
package prompt

import (
	"github.com/AlecAivazis/survey/v2"
)

// Provider is the capability the wizard depends on for user interaction.
// The survey-backed implementation is the default; tests substitute a
// scripted double.
type Provider interface {
	Select(message string, options []string) (string, error)
	Confirm(message string, def bool) (bool, error)
	Input(message string, suggestions []string) (string, error)
}

// Survey is the interactive terminal-backed Provider.
type Survey struct{}

// Select displays a list of options and returns the user's choice.
// Survey re-prompts on malformed input by itself.
func (Survey) Select(message string, options []string) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}

	return choice, nil
}

// Confirm asks a yes/no question.
func (Survey) Confirm(message string, def bool) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}

	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}

	return answer, nil
}

// Input asks for a free-text value, offering completion suggestions when
// provided. Empty answers are rejected and re-prompted.
func (Survey) Input(message string, suggestions []string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
	}

	if len(suggestions) > 0 {
		prompt.Suggest = func(string) []string {
			return suggestions
		}
	}

	if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return answer, nil
}
