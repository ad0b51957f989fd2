package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

func TestRenderFailsFastWithoutLatexmk(t *testing.T) {
	// Empty PATH and an empty tex bin dir guarantee the probe cannot find
	// the binary, whatever the host has installed.
	t.Setenv("PATH", "")
	r := NewLatexRenderer(t.TempDir())

	_, _, err := r.Render(context.Background(), "user", 3, `\documentclass{article}`)
	if !errors.Is(err, utils.ErrLatexmkNotFound) {
		t.Fatalf("err = %v, want ErrLatexmkNotFound", err)
	}
	if !strings.Contains(err.Error(), "latexmk") {
		t.Errorf("error should name the missing binary: %v", err)
	}
	if !strings.Contains(err.Error(), "PATH includes") {
		t.Errorf("error should name the expected install location: %v", err)
	}
}

func TestTail(t *testing.T) {
	if got := tail([]byte("short"), 10); got != "short" {
		t.Errorf("tail = %q", got)
	}
	if got := tail([]byte("0123456789"), 4); got != "6789" {
		t.Errorf("tail = %q", got)
	}
}
