package pty

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreackPTY_StartEcho(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty not supported")
	}
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := exec.Command("echo", "hello pty")
	r := &CreackPTY{}
	rwc, err := r.Start(ctx, cmd, Size{Rows: 10, Cols: 40})
	require.NoError(t, err)
	defer rwc.Close()

	require.NoError(t, r.Resize(rwc, Size{Rows: 20, Cols: 80}))

	var out bytes.Buffer
	_, _ = io.Copy(&out, rwc) // EIO once the child exits
	_ = cmd.Wait()
	assert.Contains(t, out.String(), "hello pty")
}

type nopRWC struct{ bytes.Buffer }

func (nopRWC) Close() error { return nil }

func TestCreackPTY_ResizeNonFile(t *testing.T) {
	r := &CreackPTY{}
	assert.NoError(t, r.Resize(&nopRWC{}, Size{Rows: 1, Cols: 1}))
}
