package main

import (
	"fmt"
	"mime"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newUploadCommand(ctx *commandContext) *cobra.Command {
	var mediaKind string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Submit media files for authenticity analysis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *apiClient) error {
				out := cmd.OutOrStdout()
				for _, path := range args {
					kind := mediaKind
					if kind == "" {
						kind = mime.TypeByExtension(filepath.Ext(path))
					}
					record, err := client.Upload(path, kind)
					if err != nil {
						return fmt.Errorf("upload %s: %w", path, err)
					}
					if jsonOut {
						if err := writeJSON(cmd, record); err != nil {
							return err
						}
						continue
					}
					fmt.Fprintf(out, "%s  %s  %s\n",
						record.Fingerprint, formatStatusLabel(record.Status), record.Filename)
					if record.Verdict != nil {
						fmt.Fprintf(out, "  deepfake: %s  confidence: %s  risk: %s\n",
							yesNo(record.Verdict.IsDeepfake),
							formatConfidence(record.Verdict.ConfidenceScore),
							record.Verdict.RiskLevel)
					}
					if record.AnchorReference != "" {
						fmt.Fprintf(out, "  anchored: %s\n", record.AnchorReference)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&mediaKind, "media-kind", "", "Override the detected media content type")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text output")
	return cmd
}
