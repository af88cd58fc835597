package cmd

import (
	"fmt"

	"Backend-Career-Advisor/src/services/assessment"
	"Backend-Career-Advisor/src/services/submission"

	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict a career from 15 answers",
	Example: `  advisor predict --answer Professional --answer Beginner ... (15 times, in question order)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetStringArray("answer")

		rt, err := bootstrap(cmd, nil)
		if err != nil {
			return err
		}

		svc := assessment.NewService(rt.encoder, rt.registry, submission.NewMemoryStore(), nil, rt.log)
		p, err := svc.Assess(cmdContext(cmd), answers)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Predicted role: %s\n", p.Role)
		fmt.Fprintf(out, "Class id: %d\n", p.ClassID)
		fmt.Fprintf(out, "Feature vector: %v\n", p.Vector)
		return nil
	},
}

func init() {
	predictCmd.Flags().StringArray("answer", nil, "Answer label, repeated once per question in order")
}
