package download

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/glorpus-work/gifgrab/pkg/errors"
)

// StatusError reports a response whose status code is above 200.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Unwrap lets errors.Is match ErrDownloadFailed.
func (e *StatusError) Unwrap() error {
	return errors.ErrDownloadFailed
}

// transfer downloads url and returns its body once it is known to be a GIF
// within the size limit.
func (c *Coordinator) transfer(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}

	if resp.StatusCode > http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	if resp.ContentLength > c.maxFileSize {
		return nil, fmt.Errorf("declared length %d exceeds %d: %w", resp.ContentLength, c.maxFileSize, errors.ErrTooLarge)
	}

	data, err := readBody(resp.Body, c.maxFileSize)
	if err != nil {
		return nil, err
	}

	if err := c.validator.Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// readBody reads at most limit bytes from body. A body that turns out longer
// than limit yields ErrTooLarge regardless of what the headers declared.
func readBody(body io.Reader, limit int64) ([]byte, error) {
	if body == nil || body == http.NoBody {
		return nil, errors.ErrNoBody
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("body exceeds %d bytes: %w", limit, errors.ErrTooLarge)
	}
	return data, nil
}

// classifyError maps a transfer error onto exactly one outcome.
func (c *Coordinator) classifyError(err error) Result {
	var statusErr *StatusError
	switch {
	case stderrors.As(err, &statusErr):
		return Result{
			Outcome: Failed,
			Message: fmt.Sprintf("%s (status %d)", msgFailed, statusErr.Code),
			Err:     err,
		}
	case stderrors.Is(err, errors.ErrTooLarge):
		return Result{
			Outcome: TooLarge,
			Message: fmt.Sprintf("The GIF is greater than %s", humanize.IBytes(uint64(c.maxFileSize))),
			Err:     err,
		}
	case stderrors.Is(err, errors.ErrUnknownFile):
		return Result{Outcome: UnknownFile, Message: msgUnknownFile, Err: err}
	default:
		return Result{Outcome: Failed, Message: msgFailed, Err: err}
	}
}
