package executor

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/postinst/postinst/internal/logger"
	"github.com/postinst/postinst/internal/tasks"
)

// URLExecutor fetches the task's locator URL. The fetch itself is the
// install step (registration pings, cache warmers and the like); the body
// is discarded.
type URLExecutor struct {
	Client *http.Client
}

func (e *URLExecutor) Type() tasks.Type {
	return tasks.TypeURL
}

func (e *URLExecutor) Execute(ctx context.Context, task *tasks.Task) error {
	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.Locator, nil)
	if err != nil {
		return fmt.Errorf("invalid install URL %s: %w", task.Locator, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", task.Locator, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("fetching %s returned status %d", task.Locator, resp.StatusCode)
	}

	logger.Debugf("fetched %s (%d)", task.Locator, resp.StatusCode)
	return nil
}
