package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, logs.String(), "Usage:", "Expected help text to be printed")
}

func TestRun_ExpandsFleet(t *testing.T) {
	t.Parallel()

	fleetYAML := `
environments:
  - name: dev
    nodes:
      - name: sensor
        root_node: true
        publishers:
          - name: img
            msg_size: 100
            bandwidth: 50
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "fleet.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte(fleetYAML), 0600))

	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-env", "dev", filePath})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"name": "sensor"`)
	assert.Contains(t, out.String(), `"publish_topics"`)
}

func TestRun_InvalidFleetFails(t *testing.T) {
	t.Parallel()

	fleetYAML := `
environments:
  - name: dev
    nodes:
      - name: broken
        root_node: true
        terminal_node: true
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "fleet.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte(fleetYAML), 0600))

	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-env", "dev", filePath})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "broken"),
		"the error should name the offending node")
}
