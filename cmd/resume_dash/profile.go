package main

import (
	"github.com/spf13/cobra"

	"github.com/vkstore/resume-dashboard/internal/reports"
	"github.com/vkstore/resume-dashboard/internal/session"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile",
	RunE:  runProfile,
}

var (
	profileName          string
	profilePhone         string
	profileTheme         string
	profileNotifications bool
)

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	profileCmd.Flags().StringVar(&profileTheme, "theme", "", "Theme (light/dark)")
	profileCmd.Flags().BoolVar(&profileNotifications, "email-notifications", true, "Enable email notifications")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	if !app.requireSession() {
		return nil
	}

	editing := cmd.Flags().Changed("name") || cmd.Flags().Changed("phone") ||
		cmd.Flags().Changed("theme") || cmd.Flags().Changed("email-notifications")
	if editing {
		current := app.prefs.LoadProfile()
		if cmd.Flags().Changed("name") {
			current.DisplayName = profileName
		} else if current.DisplayName == "" {
			current.DisplayName = app.session.DisplayName()
		}
		if cmd.Flags().Changed("phone") {
			current.Phone = profilePhone
		}
		if cmd.Flags().Changed("theme") {
			current.Theme = profileTheme
		}
		if cmd.Flags().Changed("email-notifications") {
			current.EmailNotifications = profileNotifications
		}
		if err := app.prefs.SaveProfile(current); err != nil {
			app.render.Error(err.Error())
			return nil
		}
		app.render.Success("Profile updated successfully!")
	}

	// Resume activity comes from the same collection the reports screen
	// shows; a fetch failure only hides the count.
	sync := reports.NewSynchronizer(app.gateway, app.session.CurrentIdentifier(), app.logger)
	sync.Load(cmd.Context())
	total := len(sync.Reports())

	displayName := app.session.DisplayName()
	app.render.Profile(displayName, session.Initials(displayName),
		app.session.CurrentIdentifier(), app.prefs.LoadProfile(), total)
	return nil
}
