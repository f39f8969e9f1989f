package main

import (
	"github.com/spf13/cobra"

	"github.com/vkstore/resume-dashboard/internal/reports"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List all analysis reports, or delete one",
	RunE:  runReports,
}

var reportsDeleteID string

func init() {
	reportsCmd.Flags().StringVar(&reportsDeleteID, "delete", "", "Delete the report with this id")
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	if !app.requireSession() {
		return nil
	}

	sync := reports.NewSynchronizer(app.gateway, app.session.CurrentIdentifier(), app.logger)
	sync.Load(cmd.Context())
	if sync.State() == reports.Error {
		app.render.Error(sync.Message())
		return nil
	}

	if reportsDeleteID != "" {
		status := sync.Delete(cmd.Context(), reportsDeleteID)
		if !status.Status {
			app.render.Error(status.Message)
		} else {
			app.render.Success("Report " + reportsDeleteID + " deleted.")
		}
	}

	app.render.ReportList(sync.Reports())
	return nil
}
