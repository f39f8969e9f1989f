package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, name string) bool {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

func TestRootCommand_RegistersEveryScreen(t *testing.T) {
	screens := []string{
		"register", "login", "logout", "dashboard",
		"reports", "report", "upload", "profile", "settings",
	}
	for _, name := range screens {
		assert.True(t, findCommand(t, name), "missing subcommand %q", name)
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "base-url", "state-dir", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag --%s", name)
	}
}

func TestUploadCommand_Flags(t *testing.T) {
	assert.NotNil(t, uploadCmd.Flags().Lookup("file"))
	assert.NotNil(t, uploadCmd.Flags().Lookup("description"))
}

func TestReportCommand_RequiresExactlyOneArg(t *testing.T) {
	require.NotNil(t, reportCmd.Args)
	assert.Error(t, reportCmd.Args(reportCmd, nil))
	assert.NoError(t, reportCmd.Args(reportCmd, []string{"42"}))
	assert.Error(t, reportCmd.Args(reportCmd, []string{"42", "43"}))
}
