package report

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

const compileTimeout = 90 * time.Second

// Renderer compiles LaTeX source to a PDF via latexmk.
type Renderer interface {
	// Render writes src into a request-scoped work directory and compiles
	// it. The returned cleanup removes every intermediate artifact and is
	// safe to call on all exit paths; callers defer it around streaming.
	Render(ctx context.Context, userID string, month int, src string) (pdfPath string, cleanup func(), err error)
}

type latexRenderer struct {
	texBinDir string
}

// NewLatexRenderer builds a renderer that looks for latexmk on PATH plus
// texBinDir (the TeX distribution's bin directory, e.g. /Library/TeX/texbin).
func NewLatexRenderer(texBinDir string) Renderer {
	return &latexRenderer{
		texBinDir: texBinDir,
	}
}

func (r *latexRenderer) env() []string {
	if r.texBinDir == "" {
		return os.Environ()
	}
	env := make([]string, 0, len(os.Environ()))
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "PATH=") {
			kv = "PATH=" + r.texBinDir + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
		}
		env = append(env, kv)
	}
	return env
}

func (r *latexRenderer) lookPath() (string, error) {
	if path, err := exec.LookPath("latexmk"); err == nil {
		return path, nil
	}
	if r.texBinDir != "" {
		candidate := filepath.Join(r.texBinDir, "latexmk")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: ensure a TeX distribution is installed and PATH includes %s; run \"latexmk -version\" to verify",
		utils.ErrLatexmkNotFound, r.texBinDir)
}

// checkToolchain fails fast before any files are written when latexmk is
// missing or broken.
func (r *latexRenderer) checkToolchain(ctx context.Context) (string, error) {
	bin, err := r.lookPath()
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, bin, "-version")
	cmd.Env = r.env()
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: \"latexmk -version\" failed: %v", utils.ErrLatexmkNotFound, err)
	}
	return bin, nil
}

func (r *latexRenderer) Render(ctx context.Context, userID string, month int, src string) (string, func(), error) {
	noop := func() {}

	bin, err := r.checkToolchain(ctx)
	if err != nil {
		return "", noop, err
	}

	// Work dir and filenames are namespaced by user and month so concurrent
	// requests never collide on disk.
	workDir, err := os.MkdirTemp("", fmt.Sprintf("report_%s_%d_", userID, month))
	if err != nil {
		return "", noop, fmt.Errorf("%w: %v", utils.ErrRenderFailed, err)
	}

	texName := fmt.Sprintf("report_%s_%d.tex", userID, month)
	texPath := filepath.Join(workDir, texName)
	pdfPath := strings.TrimSuffix(texPath, ".tex") + ".pdf"

	cleanup := func() {
		clean := exec.Command(bin, "-c", texName)
		clean.Dir = workDir
		clean.Env = r.env()
		if out, cerr := clean.CombinedOutput(); cerr != nil {
			log.Printf("Cleanup error: latexmk -c: %v: %s", cerr, out)
		}
		if rerr := os.RemoveAll(workDir); rerr != nil {
			log.Printf("Cleanup error: %v", rerr)
		}
	}

	if err := os.WriteFile(texPath, []byte(src), 0o644); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("%w: %v", utils.ErrRenderFailed, err)
	}

	compileCtx, cancel := context.WithTimeout(ctx, compileTimeout)
	defer cancel()

	cmd := exec.CommandContext(compileCtx, bin, "-pdf", texName)
	cmd.Dir = workDir
	cmd.Env = r.env()
	if out, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("%w: latexmk -pdf: %v: %s", utils.ErrRenderFailed, err, tail(out, 2000))
	}

	return pdfPath, cleanup, nil
}

// tail keeps error payloads bounded; latexmk logs run long.
func tail(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[len(b)-n:])
}
