package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change account settings",
	Long:  "Without flags, shows every preference with its effective value. Use --set key=value (repeatable) to change preferences.",
	RunE:  runSettings,
}

var settingsSet []string

func init() {
	settingsCmd.Flags().StringArrayVar(&settingsSet, "set", nil, "Set a preference, e.g. --set theme=dark")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(_ *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.close()

	if !app.requireSession() {
		return nil
	}

	for _, pair := range settingsSet {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, expected key=value", pair)
		}
		if err := app.prefs.SetKey(key, value); err != nil {
			app.render.Error(err.Error())
			return nil
		}
	}
	if len(settingsSet) > 0 {
		app.render.Success("Settings saved successfully!")
	}

	app.render.Settings(app.prefs.Load())
	return nil
}
