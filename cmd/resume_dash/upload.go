package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vkstore/resume-dashboard/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a resume for AI analysis",
	Long:  "Upload a PDF or DOCX resume (max 5MB) together with a target role or job description. The analysis report appears on the dashboard once the server finishes.",
	RunE:  runUpload,
}

var (
	uploadFile        string
	uploadDescription string
)

func init() {
	uploadCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "Path to the resume file (.pdf, .doc or .docx)")
	uploadCmd.Flags().StringVarP(&uploadDescription, "description", "d", "", "Target role / job description")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	if !app.requireSession() {
		return nil
	}

	pipeline := upload.NewPipeline(app.gateway, app.session.CurrentIdentifier(), app.logger)
	pipeline.SetProgressFunc(app.render.UploadProgress)

	if err := pipeline.Select(uploadFile); err != nil {
		var verr *upload.ValidationError
		if errors.As(err, &verr) {
			app.render.Error(verr.Message)
			return nil
		}
		return err
	}
	pipeline.SetDescription(uploadDescription)

	outcome := pipeline.Submit(cmd.Context())
	switch {
	case outcome.RedirectToSignIn:
		app.render.Notice("Please sign in first: resume_dash login --email you@company.com --password ...")
	case outcome.OK:
		app.render.Success(outcome.Message)
		if outcome.NavigateToDashboard {
			app.showDashboard()
		}
	default:
		app.render.Error(outcome.Message)
	}
	return nil
}
