package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMediaCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "media",
		Short: "List ingested media records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *apiClient) error {
				records, err := client.Media(limit)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, records)
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No media records")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, record := range records {
					deepfake := "-"
					confidence := "-"
					if record.Verdict != nil {
						deepfake = yesNo(record.Verdict.IsDeepfake)
						confidence = formatConfidence(record.Verdict.ConfidenceScore)
					}
					rows = append(rows, []string{
						shortFingerprint(record.Fingerprint),
						truncate(record.Filename, 40),
						formatBytes(record.FileSize),
						formatStatusLabel(record.Status),
						deepfake,
						confidence,
						yesNo(record.AnchorReference != ""),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Fingerprint", "Filename", "Size", "Status", "Deepfake", "Confidence", "Anchored"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of records to list")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
