package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "guidekit",
	Short: "Server-side widgets for help-center themes",
	Long: `Guidekit serves the dynamic widgets of a help-center theme: a video
gallery backed by an embed provider and a related-articles navigation
computed from the help-center content API. Widgets are rendered as HTML
fragments or JSON and emit lifecycle events over a websocket stream.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	exitOnError(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".guidekit.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
