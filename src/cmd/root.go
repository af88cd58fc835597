package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Tech career advisor",
	Long:  "Predicts a tech career from 15 self-rated skill answers using a classifier trained on a CSV dataset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Directory holding config.yaml (defaults to ./configs)")
	rootCmd.PersistentFlags().String("dataset", "", "Training CSV path (overrides dataset.path)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}
