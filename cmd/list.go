package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/postinst/postinst/internal/utils"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all declared install tasks and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadComponents()
		if err != nil {
			return err
		}

		list := c.registry.Tasks()
		if len(list) == 0 {
			fmt.Println("No install tasks declared.")
			return nil
		}

		table := utils.NewTableFormatter([]string{"#", "PACKAGE", "TYPE", "LOCATOR", "SCOPE", "STATUS"})
		for i, t := range list {
			table.AddRow([]string{
				strconv.Itoa(i + 1),
				t.Package.String(),
				string(t.Type),
				t.Locator,
				string(t.EffectiveScope()),
				string(t.Status),
			})
		}
		fmt.Print(table.String())
		return nil
	},
}
