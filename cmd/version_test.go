package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "version command shows version info",
			args:     []string{"version"},
			contains: "Catalog API",
		},
		{
			name:     "version command with --short flag",
			args:     []string{"version", "--short"},
			contains: "v" + Version,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.True(t, strings.Contains(buf.String(), tt.contains), "output %q should contain %q", buf.String(), tt.contains)
		})
	}
}

func TestVersionCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	versionCmd, _, err := cmd.Find([]string{"version"})
	require.NoError(t, err)

	assert.NotNil(t, versionCmd.Flags().Lookup("short"))
}
