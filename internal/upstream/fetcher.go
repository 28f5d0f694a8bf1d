package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const maxBodyBytes = 8 << 20

// Fetcher performs JSON GETs against one provider behind a circuit
// breaker. Provider clients embed one per upstream host so a flapping
// provider trips only its own breaker.
type Fetcher struct {
	provider string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	log      *logrus.Entry
	headers  map[string]string
}

// NewFetcher builds a Fetcher for the named provider. headers are
// attached to every request; pass nil when the provider needs none.
func NewFetcher(provider string, timeout time.Duration, logger *logrus.Logger, headers map[string]string) *Fetcher {
	settings := gobreaker.Settings{
		Name:    provider,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		// A 404 is an answer, not an outage: archived games rely on it
		// to trigger the fallback path, so it must not trip the breaker.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var ue *Error
			return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"provider":  name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &Fetcher{
		provider: provider,
		client:   &http.Client{Timeout: timeout},
		breaker:  gobreaker.NewCircuitBreaker(settings),
		log:      logger.WithField("provider", provider),
		headers:  headers,
	}
}

// GetJSON fetches url and decodes the response body into a generic JSON
// document. Non-200 statuses and transport failures both come back as
// *Error so handlers can map them to gateway responses uniformly.
func (f *Fetcher) GetJSON(ctx context.Context, operation, url string) (map[string]any, error) {
	body, err := f.get(ctx, operation, url)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &Error{
			Provider:  f.provider,
			Operation: operation,
			Err:       errors.Wrap(err, "decode response"),
		}
	}
	return doc, nil
}

// GetJSONList is GetJSON for endpoints whose top-level value is an
// array.
func (f *Fetcher) GetJSONList(ctx context.Context, operation, url string) ([]any, error) {
	body, err := f.get(ctx, operation, url)
	if err != nil {
		return nil, err
	}

	var list []any
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &Error{
			Provider:  f.provider,
			Operation: operation,
			Err:       errors.Wrap(err, "decode response"),
		}
	}
	return list, nil
}

func (f *Fetcher) get(ctx context.Context, operation, url string) ([]byte, error) {
	result, err := f.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, &Error{Provider: f.provider, Operation: operation, Err: err}
		}
		req.Header.Set("Accept", "application/json")
		for k, v := range f.headers {
			req.Header.Set(k, v)
		}

		start := time.Now()
		resp, err := f.client.Do(req)
		if err != nil {
			f.log.WithError(err).WithField("operation", operation).Warn("Upstream request failed")
			return nil, &Error{Provider: f.provider, Operation: operation, Err: err}
		}
		defer resp.Body.Close()

		f.log.WithFields(logrus.Fields{
			"operation": operation,
			"status":    resp.StatusCode,
			"duration":  time.Since(start).String(),
		}).Debug("Upstream request completed")

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
			return nil, &Error{
				Provider:   f.provider,
				Operation:  operation,
				StatusCode: resp.StatusCode,
			}
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, &Error{Provider: f.provider, Operation: operation, Err: err}
		}
		return body, nil
	})
	if err != nil {
		var ue *Error
		if errors.As(err, &ue) {
			return nil, ue
		}
		// Breaker-open and similar gobreaker errors.
		return nil, &Error{Provider: f.provider, Operation: operation, Err: err}
	}
	return result.([]byte), nil
}
