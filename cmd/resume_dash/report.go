package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkstore/resume-dashboard/internal/reports"
	"github.com/vkstore/resume-dashboard/internal/schemas"
)

var reportCmd = &cobra.Command{
	Use:   "report <id>",
	Short: "Show one report in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

var reportExportPath string

func init() {
	reportCmd.Flags().StringVar(&reportExportPath, "export", "", "Write the report as schema-validated JSON to this file")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	if !app.requireSession() {
		return nil
	}

	// The API has no single-report endpoint; the detail screen fetches the
	// collection and picks the matching entry.
	sync := reports.NewSynchronizer(app.gateway, app.session.CurrentIdentifier(), app.logger)
	sync.Load(cmd.Context())
	if sync.State() == reports.Error {
		app.render.Error(sync.Message())
		return nil
	}

	report, found := sync.Find(args[0])
	if !found {
		app.render.Error("Report " + args[0] + " not found.")
		return nil
	}

	if reportExportPath != "" {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := schemas.ValidateReportJSON(string(encoded)); err != nil {
			return fmt.Errorf("report %s does not match the export schema: %w", report.ID, err)
		}
		if err := os.WriteFile(reportExportPath, encoded, 0o600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		app.render.Success("Exported report " + report.ID.String() + " to " + reportExportPath)
		return nil
	}

	app.render.ReportDetail(report)
	return nil
}
