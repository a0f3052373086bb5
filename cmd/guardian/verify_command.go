package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"guardian/internal/fingerprint"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "verify <fingerprint>",
		Short: "Check a fingerprint against the verification records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp := fingerprint.Normalize(args[0])
			return ctx.withClient(func(client *apiClient) error {
				event, err := client.Verify(fp)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, event)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Fingerprint: %s\n", event.Fingerprint)
				fmt.Fprintf(out, "Authentic:   %s\n", yesNo(event.IsAuthentic))
				fmt.Fprintf(out, "Confidence:  %s\n", formatConfidence(event.ConfidenceScore))
				fmt.Fprintf(out, "Anchored:    %s\n", yesNo(event.Anchored))
				if event.Details.Error != "" {
					fmt.Fprintf(out, "Note:        %s\n", event.Details.Error)
				}
				if verdict := event.Details.Verdict; verdict != nil {
					fmt.Fprintf(out, "Risk:        %s\n", formatStatusLabel(verdict.RiskLevel))
					if len(verdict.DetectedArtifacts) > 0 {
						fmt.Fprintf(out, "Artifacts:   %s\n", strings.Join(verdict.DetectedArtifacts, ", "))
					}
					if verdict.AnalysisSummary != "" {
						fmt.Fprintf(out, "Summary:     %s\n", verdict.AnalysisSummary)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text output")
	return cmd
}
