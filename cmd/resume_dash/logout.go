package main

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the current session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(_ *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	// Terminate clears the identifier only; preferences and the cached user
	// record stay put, so signing back in restores the same workspace.
	app.session.Terminate()
	app.render.Success("Signed out.")
	return nil
}
