package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postinst/postinst/internal/progress"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize install task progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadComponents()
		if err != nil {
			return err
		}

		op, err := c.ops.Read()
		if err != nil {
			return err
		}

		summary := progress.Summarize(c.registry.Tasks(), op)
		fmt.Print(summary.Render())
		return nil
	},
}
