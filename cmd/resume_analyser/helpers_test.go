package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 0412 345 678 | linkedin.com/in/janedoe

Professional Summary
Civil engineer with 6 years of experience in stormwater and road design.

Work Experience
- Led a team of 10 engineers delivering $2.5 million of drainage upgrades
- Designed 15 culverts using 12d Model and AutoCAD Civil 3D
- Responsible for council approvals

Education
Bachelor of Engineering (Civil), University of Sydney 2016

Skills
AutoCAD, Civil 3D, 12d Model, communication, teamwork`

// execute runs the CLI in-process and returns what it wrote to stdout and stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

// writeFile creates name under dir with content and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
