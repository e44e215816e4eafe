package ui

import (
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
)

// PromptYesNo prompts the user for a yes/no answer. In non-interactive mode
// it answers with the default without prompting.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		u.Infof("%s (non-interactive: %s)", prompt, lo.Ternary(defaultYes, "yes", "no"))
		return defaultYes, nil
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptLine reads one raw line after a shell-style prompt. The question
// icon is blanked so the prompt reads like a terminal, and surrounding
// whitespace is preserved for the line editor. In non-interactive mode there
// is no input to read and it returns io.EOF.
func (u *UI) PromptLine(prompt string) (string, error) {
	if u.nonInteractive {
		return "", io.EOF
	}

	var result string
	p := &survey.Input{
		Message: prompt,
	}

	err := survey.AskOne(p, &result,
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = ""
			icons.Question.Format = "green"
		}),
		survey.WithShowCursor(true),
	)
	return result, err
}
