package mlflow

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gavinmead/mlflow-go/internal/transport"
)

// DefaultTrackingURI is the tracking server endpoint used when no client or
// URI is configured.
const DefaultTrackingURI = "http://localhost:5000"

const (
	createExperimentPath    = "/api/2.0/mlflow/experiments/create"
	getExperimentPath       = "/api/2.0/mlflow/experiments/get"
	getExperimentByNamePath = "/api/2.0/mlflow/experiments/get-by-name"
)

// Client is the tracking-client surface the builder and loader operate
// against. RestClient is the standard implementation.
type Client interface {
	CreateExperiment(ctx context.Context, experiment *Experiment) (string, error)
	GetExperimentByID(ctx context.Context, id string) (*Experiment, error)
	GetExperimentByName(ctx context.Context, name string) (*Experiment, error)
}

// RestClient talks to an MLflow tracking server over its REST API.
// It is a cheap handle: copies share the underlying HTTP transport, and it is
// safe for concurrent use.
type RestClient struct {
	transport *transport.Client
}

// NewRestClient creates a client for the tracking server at host.
// A malformed host is not rejected here; it surfaces as an unknown error on
// the first operation.
func NewRestClient(host string, opts ...ClientOption) *RestClient {
	o := clientOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	return &RestClient{
		transport: transport.New(transport.Config{
			BaseURL:    host,
			HTTPClient: o.httpClient,
			Logger:     o.logger,
			Timeout:    o.timeout,
		}),
	}
}

// createExperimentResponse is the body of a successful creation call.
type createExperimentResponse struct {
	ExperimentID string `json:"experiment_id"`
}

// getExperimentResponse is the body of a successful retrieval call.
type getExperimentResponse struct {
	Experiment Experiment `json:"experiment"`
}

// CreateExperiment registers the experiment with the tracking server and
// returns the ID the server assigned. Creation failures are never classified
// further: any non-2xx response folds into an unknown error, and transport or
// decode failures carry the underlying error text.
func (c *RestClient) CreateExperiment(ctx context.Context, experiment *Experiment) (string, error) {
	var resp createExperimentResponse

	err := c.transport.Post(ctx, createExperimentPath, experiment, &resp)
	if err != nil {
		var statusErr *transport.StatusError
		if errors.As(err, &statusErr) {
			return "", newError(KindUnknown, "could not create experiment")
		}
		return "", newError(KindUnknown, err.Error())
	}

	return resp.ExperimentID, nil
}

// GetExperimentByID retrieves an experiment by its server-assigned ID.
func (c *RestClient) GetExperimentByID(ctx context.Context, id string) (*Experiment, error) {
	query := url.Values{
		"experiment_id": []string{id},
	}

	var resp getExperimentResponse

	err := c.transport.Get(ctx, getExperimentPath, query, &resp)
	return c.processGet(&resp, err)
}

// GetExperimentByName retrieves an experiment by name.
func (c *RestClient) GetExperimentByName(ctx context.Context, name string) (*Experiment, error) {
	query := url.Values{
		"experiment_name": []string{name},
	}

	var resp getExperimentResponse

	err := c.transport.Get(ctx, getExperimentByNamePath, query, &resp)
	return c.processGet(&resp, err)
}

// processGet applies the retrieval classification shared by both lookups:
// transport and decode failures keep their own text, a 404 is a not-found
// regardless of body content, and every other status collapses into one
// fixed unknown error.
func (c *RestClient) processGet(resp *getExperimentResponse, err error) (*Experiment, error) {
	if err != nil {
		var statusErr *transport.StatusError
		if errors.As(err, &statusErr) {
			if statusErr.StatusCode == http.StatusNotFound {
				return nil, newError(KindExperimentNotFound, "experiment was not found")
			}
			return nil, newError(KindUnknown, "error finding experiment")
		}
		return nil, newError(KindUnknown, err.Error())
	}

	exp := resp.Experiment
	exp.client = c

	return &exp, nil
}
