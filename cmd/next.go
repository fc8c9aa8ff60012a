package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the task the current install operation will run next",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadComponents()
		if err != nil {
			return err
		}

		task, err := c.installer.NextTask()
		if err != nil {
			return err
		}
		if task == nil {
			fmt.Println("Nothing to install.")
			return nil
		}

		fmt.Printf("Next: %s\n", task)
		if task.Description != "" {
			fmt.Printf("  %s\n", task.Description)
		}
		return nil
	},
}
