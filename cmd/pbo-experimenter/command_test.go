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

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "--functions", "1,19", "--dimensions", "16", "--instances", "1-2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"PBO_f001_i01_d16\tone_max",
		"PBO_f001_i02_d16\tone_max",
		"PBO_f019_i01_d16\tising_1D",
		"PBO_f019_i02_d16\tising_1D",
	}, lines)

	_, err = execute(t, "list", "--functions", "25")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "experiment.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
apiVersion: pbo.iohprofiler.io/v1alpha1
kind: Experiment
suite:
  problemID: "1-2"
  instanceID: "1"
  dimension: "8"
logger:
  outputDirectory: `+dir+`
  resultFolder: cli
algorithm:
  name: random_search
  budgetMultiplier: 5
`), 0o644))

	out, err := execute(t, "run", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "2 runs written to "+filepath.Join(dir, "cli"))

	_, err = execute(t, "run")
	assert.Error(t, err)
}
