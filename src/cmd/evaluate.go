package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Train with a hold-out split and report accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd, nil)
		if err != nil {
			return err
		}
		m, err := rt.registry.Current()
		if err != nil {
			return err
		}
		info := m.Info()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Algorithm:    %s\n", info.Algorithm)
		fmt.Fprintf(out, "Dataset:      %s\n", info.DatasetPath)
		fmt.Fprintf(out, "Rows:         %d train, %d test, %d dropped\n", info.TrainRows, info.TestRows, info.DroppedRows)
		fmt.Fprintf(out, "Classes:      %d\n", len(info.Classes))
		if info.Accuracy != nil {
			fmt.Fprintf(out, "Accuracy:     %.4f\n", *info.Accuracy)
		} else {
			fmt.Fprintln(out, "Accuracy:     n/a (model.test_size is 0)")
		}
		return nil
	},
}
