package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PromptForConfirmation asks the user to confirm before a task is run.
// If autoApprove is true, it returns true without prompting. The action
// parameter describes what is about to happen (e.g. "run install task"),
// details names the resource.
func PromptForConfirmation(autoApprove bool, action, details string) (bool, error) {
	if autoApprove {
		return true, nil
	}

	fmt.Printf("\nAbout to %s\n  %s\n\nContinue? (yes/no): ", action, details)

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user confirmation: %w", err)
	}

	input = strings.ToLower(strings.TrimSpace(input))
	return input == "yes" || input == "y", nil
}
