package webapi

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/kiryu-dev/heckmeck/pkg/utils"
	"github.com/pkg/errors"
)

const defaultClientTimeout = 5 * time.Second

// repository delivers batch summaries to an HTTP collector.
type repository struct {
	cli *http.Client
}

func New(timeout time.Duration) repository {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	return repository{
		cli: &http.Client{Timeout: timeout},
	}
}

func (r repository) Publish(ctx context.Context, addr string, summary domain.Summary) error {
	body, err := utils.MarshalJson(summary)
	if err != nil {
		return errors.WithMessage(err, "marshal json body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(body))
	if err != nil {
		return errors.WithMessage(err, "new post request")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.cli.Do(req)
	if err != nil {
		return errors.WithMessagef(err, "call collector '%s'", addr)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("unexpected response status '%s'", resp.Status)
	}
	return nil
}
