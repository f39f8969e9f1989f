package main

import (
	"github.com/spf13/cobra"

	"github.com/vkstore/resume-dashboard/internal/types"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

var (
	registerName     string
	registerEmail    string
	registerPassword string
)

func init() {
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Work email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (min 8 characters)")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	if app.redirectIfSignedIn() {
		return nil
	}

	req := types.RegisterRequest{
		UserName: registerName,
		Email:    registerEmail,
		Password: registerPassword,
	}
	if err := req.Validate(); err != nil {
		app.render.Error("Invalid registration details: " + err.Error())
		return nil
	}

	status, err := app.gateway.Register(cmd.Context(), req)
	if err != nil {
		app.logger.Warn("register failed")
		app.render.Error("Something went wrong. Try again.")
		return nil
	}
	if !status.Status {
		message := status.Message
		if message == "" {
			message = "Could not create account."
		}
		app.render.Error(message)
		return nil
	}

	app.render.Success("Account created! You can now login.")
	return nil
}
