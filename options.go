// ABOUTME: Defines functional options for configuring the REST client.
// ABOUTME: Follows the functional options pattern used by AWS, Google Cloud, and Stripe Go SDKs.

package mlflow

import (
	"log/slog"
	"net/http"
	"time"
)

// clientOptions holds the configuration for a RestClient.
type clientOptions struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// ClientOption configures a RestClient.
type ClientOption func(*clientOptions)

// WithHTTPClient sets a custom HTTP client.
// Use this to configure timeouts, TLS, or proxies.
// When a custom client is provided, WithTimeout is ignored;
// configure the timeout directly on the provided client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithLogger sets a structured logger for debug output.
// If not set, the client is silent.
func WithLogger(handler slog.Handler) ClientOption {
	return func(o *clientOptions) {
		if handler != nil {
			o.logger = slog.New(handler)
		}
	}
}

// WithTimeout sets the default timeout for API operations.
// Default: 30 seconds.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = d
	}
}
