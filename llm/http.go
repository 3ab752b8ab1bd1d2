package llm

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// StatusError is returned when the completion endpoint answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion API error (%d): %s", e.StatusCode, e.Body)
}

// statusTransport turns non-2xx responses into a StatusError carrying the raw
// body, so every provider reports failures the same way.
type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return nil, &StatusError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

// newHTTPClient returns a client without a timeout of its own
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: statusTransport{base: http.DefaultTransport},
	}
}

// completionError unwraps a StatusError from transport wrappers or annotates anything else
func completionError(err error) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	return errors.Wrap(err, "completion request failed")
}
