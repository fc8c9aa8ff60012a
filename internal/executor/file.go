package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/postinst/postinst/internal/logger"
	"github.com/postinst/postinst/internal/tasks"
)

// FileExecutor copies a file shipped with the declaring package into the
// target directory. The task's locator is the path relative to both dirs.
type FileExecutor struct {
	// SourceDir is where packages place their installable files
	SourceDir string
	// TargetDir is where the files are copied to
	TargetDir string
}

func (e *FileExecutor) Type() tasks.Type {
	return tasks.TypeFile
}

func (e *FileExecutor) Execute(ctx context.Context, task *tasks.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src := filepath.Join(e.SourceDir, task.Package.Name, task.Locator)
	dst := filepath.Join(e.TargetDir, task.Locator)

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open install file %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create target directory for %s: %w", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	logger.Debugf("copied %s to %s", src, dst)
	return nil
}
