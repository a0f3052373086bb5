package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon runtime status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *apiClient) error {
				status, err := client.DaemonStatus()
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, status)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				for _, line := range renderSectionHeader("Guardian Daemon", colorize) {
					fmt.Fprintln(out, line)
				}

				runningKind := statusOK
				runningMsg := fmt.Sprintf("pid %d", status.PID)
				if !status.Running {
					runningKind = statusError
					runningMsg = "not running"
				}
				fmt.Fprintln(out, renderStatusLine("Daemon", runningKind, runningMsg, colorize))
				fmt.Fprintln(out, renderStatusLine("Database", statusInfo, status.DatabasePath, colorize))
				fmt.Fprintln(out, renderStatusLine("Lock file", statusInfo, status.LockFilePath, colorize))

				if status.Disk != nil {
					diskKind := statusOK
					if status.Disk.FreeBytes < 1<<30 {
						diskKind = statusWarn
					}
					message := fmt.Sprintf("%s free of %s",
						formatBytes(int64(status.Disk.FreeBytes)),
						formatBytes(int64(status.Disk.TotalBytes)))
					fmt.Fprintln(out, renderStatusLine("Disk", diskKind, message, colorize))
				}

				if len(status.RecordCounts) > 0 {
					keys := make([]string, 0, len(status.RecordCounts))
					for key := range status.RecordCounts {
						keys = append(keys, key)
					}
					sort.Strings(keys)
					for _, key := range keys {
						label := formatStatusLabel(key)
						fmt.Fprintln(out, renderStatusLine(label, statusInfo,
							fmt.Sprintf("%d", status.RecordCounts[key]), colorize))
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text output")
	return cmd
}
