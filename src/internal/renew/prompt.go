// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package renew

import (
	"github.com/AlecAivazis/survey/v2"
)

// Prompter collects interactive answers. The orchestrator depends on this
// interface so tests can script the whole workflow.
type Prompter interface {
	// Input asks for a free-form line, returning def when the answer is empty.
	Input(msg, def string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(msg string, def bool) (bool, error)
	// Select asks the user to pick one of options, returning its index.
	Select(msg string, options []string) (int, error)
}

// SurveyPrompter implements Prompter on the user's terminal.
type SurveyPrompter struct{}

// Input asks for a free-form line.
func (SurveyPrompter) Input(msg, def string) (string, error) {
	var answer string
	p := &survey.Input{
		Message: msg,
		Default: def,
	}
	if err := survey.AskOne(p, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func (SurveyPrompter) Confirm(msg string, def bool) (bool, error) {
	var answer bool
	p := &survey.Confirm{
		Message: msg,
		Default: def,
	}
	if err := survey.AskOne(p, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// Select asks the user to pick one option.
func (SurveyPrompter) Select(msg string, options []string) (int, error) {
	var index int
	p := &survey.Select{
		Message: msg,
		Options: options,
	}
	if err := survey.AskOne(p, &index); err != nil {
		return 0, err
	}
	return index, nil
}
