package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func captureVersion(short bool) string {
	cmd := &cobra.Command{Use: "version"}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	printVersion(cmd, short)
	return buf.String()
}

func TestVersionOutput(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	defer func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2025-01-08T12:00:00Z")

	output := captureVersion(false)

	assert.Contains(t, output, "mqttdash v1.2.3", "should show version with v prefix")
	assert.Contains(t, output, "commit: abc1234")
	assert.Contains(t, output, "built: 2025-01-08T12:00:00Z")
	assert.Contains(t, output, "go: "+runtime.Version())
	assert.Contains(t, output, "os/arch: "+runtime.GOOS+"/"+runtime.GOARCH)
	assert.Equal(t, "1.2.3", GetVersion())
}

func TestVersionOutputShort(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	version = "1.2.3"
	assert.Equal(t, "1.2.3", strings.TrimSpace(captureVersion(true)))
}

func TestVersionOutputDev(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	version = "dev"
	assert.Contains(t, captureVersion(false), "mqttdash dev", "dev version should not have v prefix")
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"dev", "dev"},
		{"1.0.0", "v1.0.0"},
		{"v1.0.0", "v1.0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatVersion(tt.input), tt.input)
	}
}
