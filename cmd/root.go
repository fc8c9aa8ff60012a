package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/postinst/postinst/internal/config"
	"github.com/postinst/postinst/internal/logger"
)

var (
	cfgFile  string
	debug    bool
	verbose  bool
	jsonLogs bool
	quiet    bool
	version  = "v0.1.0"

	rootCmd = &cobra.Command{
		Use:           "postinst",
		SilenceErrors: true,
		Short:         "Track and run post-install setup tasks declared by packages",
		Long: `postinst reads the dependency-ordered package list produced by the
package manager, collects the install tasks each package declares, and runs
them one at a time, remembering what has already been done across runs.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(verbose || debug, jsonLogs, quiet)
			return initConfig()
		},
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() error {
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("postinst")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("POSTINST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./postinst.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statusCmd)
}
