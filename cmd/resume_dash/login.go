package main

import (
	"github.com/spf13/cobra"

	"github.com/vkstore/resume-dashboard/internal/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your workspace",
	RunE:  runLogin,
}

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Work email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	if app.redirectIfSignedIn() {
		return nil
	}

	req := types.LoginRequest{Email: loginEmail, Password: loginPassword}
	if err := req.Validate(); err != nil {
		app.render.Error("Invalid credentials: " + err.Error())
		return nil
	}

	status, err := app.gateway.Login(cmd.Context(), req)
	if err != nil {
		app.render.Error("Unable to login. Please try again.")
		return nil
	}
	if !status.Status {
		message := status.Message
		if message == "" {
			message = "Invalid credentials."
		}
		app.render.Error(message)
		return nil
	}

	// Credentials confirmed; a second round-trip fetches the full record
	// that the session persists alongside the identifier.
	user, err := app.gateway.FetchUserByIdentifier(cmd.Context(), req.Email)
	if err != nil {
		app.render.Error("Unable to login. Please try again.")
		return nil
	}
	app.session.Establish(req.Email, user)

	app.render.Success("Login successful!")
	app.showDashboard()
	return nil
}
