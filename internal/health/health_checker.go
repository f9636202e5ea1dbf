package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultURL     = "http://localhost:8080" + Path
	DefaultTimeout = 5 * time.Second
)

// StatusError is returned when the endpoint answers with anything but 200.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Checker probes a health endpoint once per call. It never retries.
type Checker struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

func NewChecker(url string, timeout time.Duration, logger ...*zap.Logger) *Checker {
	l := zap.L().Named("health.checker")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.checker")
	}
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: l,
	}
}

func (c *Checker) URL() string {
	return c.url
}

// Check returns nil when the endpoint answers 200, a *StatusError for any other status,
// and the transport error when the endpoint cannot be reached in time.
func (c *Checker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("health endpoint unreachable", zap.String("url", c.url), zap.Error(err))
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("health endpoint unhealthy",
			zap.String("url", c.url),
			zap.Int("status", resp.StatusCode),
		)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	c.logger.Debug("health endpoint healthy", zap.String("url", c.url))
	return nil
}
