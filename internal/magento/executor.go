package magento

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// BackendError is returned for any non-2xx backend response.
type BackendError struct {
	Method     string
	URI        string
	StatusCode int
	Body       []byte
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("magento %s %s returned status %d", e.Method, e.URI, e.StatusCode)
}

// HTTPStatusCode returns the backend status.
func (e *BackendError) HTTPStatusCode() int {
	return e.StatusCode
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.StatusCode == http.StatusNotFound
}

// Do issues exactly one call for the request and decodes a JSON response
// into out. A nil out discards the body.
func (c *Client) Do(ctx context.Context, method string, r Request, body, out interface{}) error {
	return c.Execute(ctx, c.Descriptor(method, r, body), out)
}

// Execute issues a resolved request. Failures are never retried.
func (c *Client) Execute(ctx context.Context, d Descriptor, out interface{}) error {
	start := time.Now()
	err := c.execute(ctx, d, out)
	elapsed := time.Since(start)

	if c.observer != nil {
		c.observer.ObserveBackendCall(d.Method, elapsed, err == nil)
	}
	if c.settings.Debug {
		outcome := "PASS"
		if err != nil {
			outcome = "FAIL"
		}
		c.logger.WithFields(logrus.Fields{
			"method":      d.Method,
			"uri":         d.URI,
			"duration_ms": elapsed.Milliseconds(),
			"outcome":     outcome,
		}).Info("BACKEND-CALL")
	}
	return err
}

func (c *Client) execute(ctx context.Context, d Descriptor, out interface{}) error {
	var reader io.Reader
	if d.Body != nil {
		payload, err := json.Marshal(d.Body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, d.URI, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range d.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("magento %s %s: %w", d.Method, d.URI, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &BackendError{
			Method:     d.Method,
			URI:        d.URI,
			StatusCode: resp.StatusCode,
			Body:       data,
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
