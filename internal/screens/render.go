// Package screens renders each screen of the dashboard to the terminal.
// Rendering is presentation only: screens read state assembled by the
// commands and never talk to the API themselves.
package screens

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/vkstore/resume-dashboard/internal/prefs"
	"github.com/vkstore/resume-dashboard/internal/types"
)

// summaryPreviewLength matches the dashboard card's summary truncation.
const summaryPreviewLength = 100

// Renderer writes formatted screens to one output stream.
type Renderer struct {
	out io.Writer

	success *color.Color
	failure *color.Color
	heading *color.Color
	badge   *color.Color
	muted   *color.Color
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
		heading: color.New(color.FgCyan, color.Bold),
		badge:   color.New(color.FgBlue),
		muted:   color.New(color.Faint),
	}
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	_, _ = r.success.Fprintln(r.out, msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	_, _ = r.failure.Fprintln(r.out, msg)
}

// Notice prints a neutral informational line.
func (r *Renderer) Notice(msg string) {
	_, _ = r.muted.Fprintln(r.out, msg)
}

// Dashboard shows the activity overview: stats plus the recent reports.
func (r *Renderer) Dashboard(displayName string, recent []types.Report, total int) {
	_, _ = r.heading.Fprintf(r.out, "Dashboard: %s\n", displayName)
	_, _ = r.muted.Fprintln(r.out, "Overview of your resume analysis activity.")
	fmt.Fprintln(r.out)

	accountStatus := "New"
	if total > 0 {
		accountStatus = "Active"
	}
	fmt.Fprintf(r.out, "Total Reports:  %d\n", total)
	fmt.Fprintf(r.out, "Account Status: %s\n", accountStatus)
	fmt.Fprintln(r.out)

	_, _ = r.heading.Fprintln(r.out, "Recent Reports")
	if len(recent) == 0 {
		_, _ = r.muted.Fprintln(r.out, "No reports yet. Upload your first resume.")
		return
	}
	for _, report := range recent {
		fmt.Fprintf(r.out, "  [%s] %s\n", report.ID, report.ShortSummary(summaryPreviewLength))
	}
}

// ReportList shows the full collection with scores and insight sections.
func (r *Renderer) ReportList(collection []types.Report) {
	_, _ = r.heading.Fprintln(r.out, "AI Resume Analysis Reports")
	_, _ = r.muted.Fprintln(r.out, "ATS readiness, role fit, and skill-gap insights.")
	fmt.Fprintln(r.out)

	if len(collection) == 0 {
		_, _ = r.muted.Fprintln(r.out, "No reports yet.")
		return
	}
	for i := range collection {
		r.reportCard(&collection[i])
	}
}

func (r *Renderer) reportCard(report *types.Report) {
	_, _ = r.badge.Fprintf(r.out, "Report %s  ATS %.0f%%  Job Match %.0f%%\n",
		report.ID, report.ATSScore, report.JobMatch)
	if report.Summary != "" {
		fmt.Fprintf(r.out, "  %s\n", report.Summary)
	}
	r.chipLine("Strengths", report.Strengths, "")
	r.chipLine("Missing Keywords", report.MissingKeywords, "No missing Keywords")
	r.itemList("Recommended Improvements", report.Improvements)
	r.chipLine("Better-Fit Roles", report.JobRecommendation, "")
	fmt.Fprintln(r.out)
}

// ReportDetail shows one report in full.
func (r *Renderer) ReportDetail(report types.Report) {
	_, _ = r.heading.Fprintf(r.out, "Report ID: %s\n\n", report.ID)

	fmt.Fprintf(r.out, "Summary: %s\n", report.Summary)
	fmt.Fprintf(r.out, "ATS Score: %.0f%%\n", report.ATSScore)
	fmt.Fprintf(r.out, "Job Match: %.0f%%\n", report.JobMatch)
	r.itemList("Strengths", report.Strengths)
	r.chipLine("Missing Keywords", report.MissingKeywords, "No missing keywords, great job!")
	r.itemList("Recommended Improvements", report.Improvements)
	r.chipLine("Better-Fit Roles", report.JobRecommendation, "")
	if report.GeneratedText != "" {
		fmt.Fprintln(r.out)
		_, _ = r.muted.Fprintln(r.out, report.GeneratedText)
	}
}

// Profile shows the account card with initials and activity count.
func (r *Renderer) Profile(displayName, initials, email string, profile prefs.Profile, totalReports int) {
	_, _ = r.heading.Fprintf(r.out, "(%s) %s\n", initials, displayName)
	fmt.Fprintf(r.out, "Email: %s\n", email)
	if profile.Phone != "" {
		fmt.Fprintf(r.out, "Phone: %s\n", profile.Phone)
	}
	fmt.Fprintf(r.out, "Theme: %s\n", profile.Theme)
	fmt.Fprintf(r.out, "Email Notifications: %t\n", profile.EmailNotifications)
	fmt.Fprintf(r.out, "Resumes Analyzed: %d\n", totalReports)
}

// Settings shows every preference with its effective value.
func (r *Renderer) Settings(s prefs.Settings) {
	_, _ = r.heading.Fprintln(r.out, "Account Settings")
	_, _ = r.muted.Fprintln(r.out, "Manage your preferences, security and privacy.")
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%-22s %t\n", prefs.KeyEmailNotifications, s.EmailNotifications)
	fmt.Fprintf(r.out, "%-22s %s\n", prefs.KeyTheme, s.Theme)
	fmt.Fprintf(r.out, "%-22s %s\n", prefs.KeyLanguage, s.Language)
	fmt.Fprintf(r.out, "%-22s %t\n", prefs.KeyTwoFactorAuth, s.TwoFactorAuth)
	fmt.Fprintf(r.out, "%-22s %s\n", prefs.KeyResumeDataVisibility, s.ResumeDataVisibility)
	fmt.Fprintf(r.out, "%-22s %t\n", prefs.KeyAnalysisAlerts, s.AnalysisAlerts)
	fmt.Fprintf(r.out, "%-22s %t\n", prefs.KeyWeeklySummary, s.WeeklySummary)
}

// UploadProgress rewrites the progress bar line in place.
func (r *Renderer) UploadProgress(percent int) {
	const width = 30
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Fprintf(r.out, "\r[%s] %3d%%", bar, percent)
	if percent >= 100 {
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) chipLine(title string, items []string, emptyText string) {
	if len(items) == 0 {
		if emptyText != "" {
			fmt.Fprintf(r.out, "  %s: %s\n", title, emptyText)
		}
		return
	}
	fmt.Fprintf(r.out, "  %s: %s\n", title, strings.Join(items, " · "))
}

func (r *Renderer) itemList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(r.out, "  %s:\n", title)
	for _, item := range items {
		fmt.Fprintf(r.out, "    - %s\n", item)
	}
}
