package mlflow

// ExperimentTag is an arbitrary key/value annotation attached to an
// experiment. Duplicate keys are not rejected here; the server decides how to
// treat them.
type ExperimentTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Tag builds an ExperimentTag from a key/value pair.
func Tag(key, value string) ExperimentTag {
	return ExperimentTag{Key: key, Value: value}
}

// Experiment represents a named tracking container on the MLflow server.
// Runs are later recorded under it; run operations are outside this package.
type Experiment struct {
	// ExperimentID is empty until the server assigns one on creation and
	// immutable afterwards. It is omitted from the creation request body.
	ExperimentID string `json:"experiment_id,omitempty"`

	Name             string          `json:"name"`
	ArtifactLocation string          `json:"artifact_location,omitempty"`
	Tags             []ExperimentTag `json:"tags"`

	// client is the handle the experiment was created or loaded through.
	// Unexported, so never part of the wire representation.
	client Client
}

// ID returns the server-assigned experiment ID and whether one has been
// assigned yet.
func (e *Experiment) ID() (string, bool) {
	return e.ExperimentID, e.ExperimentID != ""
}
