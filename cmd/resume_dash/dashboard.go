package main

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vkstore/resume-dashboard/internal/reports"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the activity overview and recent reports",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	if !app.requireSession() {
		return nil
	}
	app.showDashboard()
	return nil
}

// showDashboard is the authenticated landing screen; login and the
// public-only redirect land here too. The report collection and a refreshed
// user record are fetched concurrently; the record refresh is best-effort
// and never blocks the screen.
func (a *app) showDashboard() {
	ctx := context.Background()
	identifier := a.session.CurrentIdentifier()
	sync := reports.NewSynchronizer(a.gateway, identifier, a.logger)

	var g errgroup.Group
	g.Go(func() error {
		sync.Load(ctx)
		return nil
	})
	g.Go(func() error {
		if identifier == "" {
			return nil
		}
		user, err := a.gateway.FetchUserByIdentifier(ctx, identifier)
		if err == nil && !user.IsZero() {
			a.session.Establish(identifier, user)
		}
		return nil
	})
	_ = g.Wait()

	if sync.State() == reports.Error {
		a.render.Error(sync.Message())
		return
	}
	a.render.Dashboard(a.session.DisplayName(), sync.Recent(), len(sync.Reports()))
}
