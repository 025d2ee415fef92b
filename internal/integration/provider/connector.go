package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/avkozlov/analyzer-backend/internal/config"
	"github.com/avkozlov/analyzer-backend/internal/entity"
	pkghttp "github.com/avkozlov/analyzer-backend/pkg/http"
	"go.uber.org/zap"
)

// newBaseConnector builds an HTTP connector with the shared timeout and
// logging setup. Provider-specific auth is passed through extra options.
func newBaseConnector(cfg config.HTTPClientConfig, baseURL string, logger *zap.Logger, extra ...pkghttp.HttpOpts) *pkghttp.Connector {
	connCfg := &pkghttp.ConnectorConfig{
		Logger:  logger,
		BaseURL: baseURL,
	}

	opts := []pkghttp.HttpOpts{
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
	}
	opts = append(opts, extra...)

	return pkghttp.NewConnector(connCfg, opts...)
}

// doWithRetry performs the request with a bounded retry for transient
// network failures. Provider error statuses are never retried.
func doWithRetry(
	ctx context.Context,
	conn *pkghttp.Connector,
	retryCfg *config.ProviderConfig,
	method, endpoint string,
	reqBody, respBody any,
	opts ...pkghttp.RequestOpt,
) error {
	retryOpts := append(
		retryCfg.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(isTransient),
	)

	err := retry.Do(func() error {
		return conn.DoRequest(ctx, method, endpoint, reqBody, respBody, opts...)
	}, retryOpts...)

	return mapProviderError(err)
}

func isTransient(err error) bool {
	var netErr *pkghttp.NetworkError
	return errors.As(err, &netErr)
}

// mapProviderError translates transport-level errors into domain errors:
// network failures become ErrUpstreamUnavailable, provider error statuses
// become ErrUpstream carrying the provider's message.
func mapProviderError(err error) error {
	if err == nil {
		return nil
	}

	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", entity.ErrUpstreamUnavailable, netErr.Err)
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Errorf("%w: status %d: %s", entity.ErrUpstream, httpErr.StatusCode, strings.TrimSpace(httpErr.Message))
	}

	return err
}
