package tui

import "github.com/AlecAivazis/survey/v2"

// surveyDriver is the default Driver, prompting on the controlling terminal.
type surveyDriver struct{}

var _ Driver = surveyDriver{}

func (surveyDriver) Input(prompt, defaultValue string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Input{Message: prompt, Default: defaultValue}, &value)
	return value, err
}

func (surveyDriver) Password(prompt string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Password{Message: prompt}, &value)
	return value, err
}

func (surveyDriver) Confirm(prompt string, defaultValue bool) (bool, error) {
	value := defaultValue
	err := survey.AskOne(&survey.Confirm{Message: prompt, Default: defaultValue}, &value)
	return value, err
}

func (surveyDriver) Select(prompt string, options []string, defaultValue string) (string, error) {
	var value string
	question := &survey.Select{Message: prompt, Options: options}
	if defaultValue != "" {
		question.Default = defaultValue
	}
	err := survey.AskOne(question, &value)
	return value, err
}

func (surveyDriver) MultiSelect(prompt string, options []string) ([]string, error) {
	var values []string
	err := survey.AskOne(&survey.MultiSelect{Message: prompt, Options: options}, &values)
	return values, err
}
