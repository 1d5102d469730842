package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/c2platform/ssoctl/models"
)

type Prompter interface {
	SelectAccount(label string, accounts []models.AccountRecord) (models.AccountRecord, error)
	Confirm(prompt string) bool
}

type RealPrompter struct{}

var ErrInterrupted = errors.New("operation interrupted")

func NewPrompt() Prompter {
	return &RealPrompter{}
}

// SelectAccount lets the user pick one account from the inventory snapshot.
// Decommissioned accounts stay selectable and are marked as such.
func (p *RealPrompter) SelectAccount(label string, accounts []models.AccountRecord) (models.AccountRecord, error) {
	items := make([]string, len(accounts))
	for i, account := range accounts {
		item := fmt.Sprintf("%s (%s)", account.AccountName, account.AccountID)
		if account.Decommissioned() {
			item += " [decommissioned]"
		}
		items[i] = item
	}

	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  12,
	}
	index, _, err := prompt.Run()
	if err != nil {
		return models.AccountRecord{}, handlePromptError(err)
	}
	return accounts[index], nil
}

func (p *RealPrompter) Confirm(prompt string) bool {
	promptInstance := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	result, err := promptInstance.Run()
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(result), "y")
}

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nReceived termination signal. Exiting.")
		return ErrInterrupted
	}
	return fmt.Errorf("failed to select an option: %w", err)
}
