package cmd

import (
	"github.com/spf13/cobra"

	"github.com/postinst/postinst/internal/logger"
	"github.com/postinst/postinst/internal/utils"
)

var (
	autoApprove bool
	skipExecute bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the current install step and mark it as done",
	Long: `Run the next task of the install operation in flight, then record its
completion in the status files. For an install-all operation, repeat until
'Nothing to install.' is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadComponents()
		if err != nil {
			return err
		}

		task, err := c.installer.NextTask()
		if err != nil {
			return err
		}

		if task != nil && !skipExecute {
			ok, err := utils.PromptForConfirmation(autoApprove, "run install task", task.String())
			if err != nil {
				return err
			}
			if !ok {
				logger.User.Warn("Install step not confirmed, nothing done")
				return nil
			}

			execs := newExecutorRegistry(c.cfg)
			if err := execs.Execute(cmd.Context(), task); err != nil {
				return err
			}
			logger.User.Successf("Ran %s", task)
		}

		if err := c.installer.Validate(); err != nil {
			return err
		}
		if task != nil {
			logger.User.Savef("Recorded %s as done", task)
		} else {
			logger.User.Save("Install status recorded")
		}

		if next, err := c.installer.NextTask(); err == nil && next != nil {
			logger.User.Infof("Next up: %s", next)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&autoApprove, "auto-approve", false, "Do not prompt before running the task")
	validateCmd.Flags().BoolVar(&skipExecute, "skip-execute", false, "Only record completion, do not run the task")
}
