package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerificationsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "verifications",
		Short: "List verification query history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *apiClient) error {
				events, err := client.Verifications(limit)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, events)
				}

				out := cmd.OutOrStdout()
				if len(events) == 0 {
					fmt.Fprintln(out, "No verification events")
					return nil
				}

				rows := make([][]string, 0, len(events))
				for _, event := range events {
					note := event.Details.Error
					if note == "" && event.Details.Verdict != nil {
						note = formatStatusLabel(event.Details.Verdict.RiskLevel) + " risk"
					}
					rows = append(rows, []string{
						event.CheckedAt,
						shortFingerprint(event.Fingerprint),
						yesNo(event.IsAuthentic),
						formatConfidence(event.ConfidenceScore),
						yesNo(event.Anchored),
						truncate(note, 40),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Checked At", "Fingerprint", "Authentic", "Confidence", "Anchored", "Note"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of events to list")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
