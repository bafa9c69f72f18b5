package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// executeCommand executes a cobra command and returns its combined output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	// Mock exit so a nonzero exit does not kill the test binary.
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				return
			}
			panic(r)
		}
	}()
	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeEstimates creates a criterion-style estimates.json under dir.
func writeEstimates(t *testing.T, dir string, mean, stdDev, median float64) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := fmt.Sprintf(`{
		"mean": {"point_estimate": %s},
		"std_dev": {"point_estimate": %s},
		"median": {"point_estimate": %s}
	}`, floatLit(mean), floatLit(stdDev), floatLit(median))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "estimates.json"), []byte(content), 0644))
}

func floatLit(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// benchDir writes one benchmark in the simple per-subdirectory layout.
func benchDir(t *testing.T, root, name string, mean float64) {
	t.Helper()
	writeEstimates(t, filepath.Join(root, name, "base"), mean, mean/100, mean)
}
