package screens

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkstore/resume-dashboard/internal/prefs"
	"github.com/vkstore/resume-dashboard/internal/types"
)

func sampleReports(n int) []types.Report {
	reports := make([]types.Report, 0, n)
	for i := 0; i < n; i++ {
		reports = append(reports, types.Report{
			ID:       types.ReportID(string(rune('1' + i))),
			Summary:  "Solid engineering resume with strong backend emphasis and clear impact metrics across roles.",
			ATSScore: 80,
			JobMatch: 70,
		})
	}
	return reports
}

func TestDashboard_ShowsStatsAndRecent(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	reports := sampleReports(5)
	r.Dashboard("Taylor", reports[:3], len(reports))

	out := buf.String()
	assert.Contains(t, out, "Total Reports:  5")
	assert.Contains(t, out, "Account Status: Active")
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "[3]")
	assert.NotContains(t, out, "[4]")
}

func TestDashboard_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Dashboard("Taylor", nil, 0)

	out := buf.String()
	assert.Contains(t, out, "Account Status: New")
	assert.Contains(t, out, "No reports yet. Upload your first resume.")
}

func TestReportList_ShowsAllInOrder(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.ReportList(sampleReports(5))

	out := buf.String()
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		assert.Contains(t, out, "Report "+id)
	}
	assert.Less(t, strings.Index(out, "Report 1"), strings.Index(out, "Report 5"))
}

func TestReportCard_MissingKeywordsPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.ReportList([]types.Report{{ID: "1", Summary: "s"}})
	assert.Contains(t, buf.String(), "No missing Keywords")
}

func TestReportDetail_FullSections(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.ReportDetail(types.Report{
		ID:                "9",
		Summary:           "Great resume.",
		ATSScore:          92,
		JobMatch:          81,
		Strengths:         []string{"Go", "Postgres"},
		MissingKeywords:   []string{"Terraform"},
		Improvements:      []string{"Quantify outcomes"},
		JobRecommendation: []string{"Platform Engineer"},
	})

	out := buf.String()
	assert.Contains(t, out, "Report ID: 9")
	assert.Contains(t, out, "ATS Score: 92%")
	assert.Contains(t, out, "Job Match: 81%")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "Terraform")
	assert.Contains(t, out, "Quantify outcomes")
	assert.Contains(t, out, "Platform Engineer")
}

func TestSettings_ListsEveryKey(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Settings(prefs.Settings{Theme: "dark", Language: "en", ResumeDataVisibility: "private"})

	out := buf.String()
	for _, key := range prefs.SettableKeys() {
		assert.Contains(t, out, key)
	}
}

func TestUploadProgress_BarBounds(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.UploadProgress(0)
	r.UploadProgress(50)
	r.UploadProgress(100)

	out := buf.String()
	assert.Contains(t, out, "  0%")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "100%")
}
