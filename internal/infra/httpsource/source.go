// Package httpsource fetches a funding data document over HTTP.
package httpsource

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/httpclient"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/jsonsource"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
)

type Source struct {
	name        string
	url         string
	recordsPath string
	exec        *httpclient.Executor
}

type Option func(*Source)

func WithExecutor(exec *httpclient.Executor) Option {
	return func(s *Source) {
		if exec != nil {
			s.exec = exec
		}
	}
}

func New(name, url, recordsPath string, opts ...Option) *Source {
	if name == "" {
		name = url
	}
	s := &Source{
		name:        name,
		url:         url,
		recordsPath: recordsPath,
		exec:        httpclient.NewExecutor(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RecordSource = (*Source)(nil)

func (s *Source) Name() string { return s.name }

func (s *Source) Fetch(ctx context.Context) (domain.RawDataset, error) {
	req, err := httpclient.BuildGet(ctx, s.url, s.exec.UserAgent())
	if err != nil {
		return domain.RawDataset{}, err
	}

	resp, err := s.exec.Do(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return domain.RawDataset{}, err
		}
		return domain.RawDataset{}, &domain.OpError{
			Op:   "httpsource.fetch",
			Kind: domain.KindSourceUnavailable,
			Path: s.url,
			Err:  fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err),
		}
	}

	if resp.Status != http.StatusOK {
		return domain.RawDataset{}, &domain.OpError{
			Op:   "httpsource.fetch",
			Kind: domain.KindSourceUnavailable,
			Path: s.url,
			Err:  fmt.Errorf("%w: unexpected status %d", domain.ErrSourceUnavailable, resp.Status),
		}
	}
	if resp.Truncated {
		return domain.RawDataset{}, &domain.OpError{
			Op:   "httpsource.fetch",
			Kind: domain.KindSourceUnavailable,
			Path: s.url,
			Err:  fmt.Errorf("%w: response body exceeds %d bytes", domain.ErrSourceUnavailable, len(resp.BodyBytes)),
		}
	}

	return jsonsource.Decode(s.url, resp.BodyBytes, s.recordsPath)
}
