package mlflow

import "context"

// ExperimentIdentifier selects how an existing experiment is looked up.
// Construct one with ByID or ByName.
type ExperimentIdentifier struct {
	id   string
	name string
	byID bool
}

// ByID identifies an experiment by its server-assigned ID.
func ByID(id string) ExperimentIdentifier {
	return ExperimentIdentifier{id: id, byID: true}
}

// ByName identifies an experiment by its name.
func ByName(name string) ExperimentIdentifier {
	return ExperimentIdentifier{name: name}
}

// ExperimentLoader retrieves an existing experiment. The zero value is
// usable and falls back to a client for DefaultTrackingURI at load time.
// A loader is consumed by its terminal Load call.
type ExperimentLoader struct {
	client Client
}

// NewExperimentLoader returns a loader with no client configured.
func NewExperimentLoader() *ExperimentLoader {
	return &ExperimentLoader{}
}

// WithClient sets the client used for retrieval.
func (l *ExperimentLoader) WithClient(client Client) *ExperimentLoader {
	l.client = client
	return l
}

// Load fetches the experiment selected by the identifier.
//
// By-ID lookups fold every client error into an unknown error, while by-name
// lookups pass the client error through unchanged, not-found included.
// Callers that need to distinguish a missing experiment should load by name.
func (l *ExperimentLoader) Load(ctx context.Context, identifier ExperimentIdentifier) (*Experiment, error) {
	client := l.client
	if client == nil {
		client = NewRestClient(DefaultTrackingURI)
	}

	if identifier.byID {
		exp, err := client.GetExperimentByID(ctx, identifier.id)
		if err != nil {
			return nil, newError(KindUnknown, err.Error())
		}
		return exp, nil
	}

	return client.GetExperimentByName(ctx, identifier.name)
}
