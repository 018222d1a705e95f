package mlflow

import "context"

// ExperimentBuilder assembles the inputs for experiment creation.
// It is configured with chained calls and consumed by Build; a builder holds
// no useful state after its terminal call and is not meant to be reused.
type ExperimentBuilder struct {
	name             string
	artifactLocation string
	tags             []ExperimentTag
	client           Client
}

// NewExperimentBuilder starts a builder for an experiment with the given
// name. The name is validated before any network activity: an empty name
// fails immediately with a builder error.
func NewExperimentBuilder(name string) (*ExperimentBuilder, error) {
	if name == "" {
		return nil, newError(KindExperimentBuilder, "name cannot be empty")
	}

	return &ExperimentBuilder{
		name:   name,
		client: NewRestClient(DefaultTrackingURI),
	}, nil
}

// WithTag appends a single tag.
func (b *ExperimentBuilder) WithTag(tag ExperimentTag) *ExperimentBuilder {
	b.tags = append(b.tags, tag)
	return b
}

// WithTags replaces the entire tag list.
func (b *ExperimentBuilder) WithTags(tags []ExperimentTag) *ExperimentBuilder {
	b.tags = tags
	return b
}

// WithArtifactLocation sets the storage location hint sent to the server.
func (b *ExperimentBuilder) WithArtifactLocation(location string) *ExperimentBuilder {
	b.artifactLocation = location
	return b
}

// WithRestClient replaces the client used for creation. The default points
// at DefaultTrackingURI.
func (b *ExperimentBuilder) WithRestClient(client Client) *ExperimentBuilder {
	b.client = client
	return b
}

// Build creates the experiment on the tracking server and returns it with
// the server-assigned ID populated. Client errors propagate unchanged.
func (b *ExperimentBuilder) Build(ctx context.Context) (*Experiment, error) {
	e := &Experiment{
		Name:             b.name,
		ArtifactLocation: b.artifactLocation,
		Tags:             b.tags,
		client:           b.client,
	}

	id, err := b.client.CreateExperiment(ctx, e)
	if err != nil {
		return nil, err
	}

	e.ExperimentID = id

	return e, nil
}
