package cmd

import (
	"github.com/spf13/cobra"

	"github.com/guidekit/guidekit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize guidekit configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure guidekit for your help center and generates a .guidekit.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
