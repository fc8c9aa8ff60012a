package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postinst/postinst/internal/installer"
	"github.com/postinst/postinst/internal/logger"
)

var installAll bool

var installCmd = &cobra.Command{
	Use:   "install [task-number]",
	Short: "Trigger an install of one task or of all remaining tasks",
	Long: `Trigger an install operation. With --all, every remaining task runs one
at a time, each step confirmed with 'validate'. With a task number (as shown
by 'list'), only that task is installed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadComponents()
		if err != nil {
			return err
		}

		var redirect *installer.Redirect
		if installAll {
			if len(args) != 0 {
				return fmt.Errorf("a task number and --all are mutually exclusive")
			}
			redirect, err = c.installer.InstallAll()
		} else {
			if len(args) == 0 {
				return fmt.Errorf("specify a task number from 'list', or use --all")
			}
			task, resolveErr := resolveTaskNumber(args[0], c.registry.Tasks())
			if resolveErr != nil {
				return resolveErr
			}
			redirect, err = c.installer.Install(task)
		}
		if err != nil {
			return err
		}

		if installAll {
			todo, _ := c.registry.Counts()
			logger.User.Startingf("Install of %d remaining task(s) triggered", todo)
		} else {
			logger.User.Starting("Install triggered")
		}
		if redirect.SelfUpdate {
			logger.User.Warn("This install updates postinst itself")
		}
		logger.User.Infof("Continue on the %q screen: run 'postinst validate' after each step", redirect.Target)
		return nil
	},
}

func init() {
	installCmd.Flags().BoolVar(&installAll, "all", false, "Install every remaining task")
}
