// ABOUTME: Error taxonomy for MLflow tracking client failures.
// ABOUTME: Provides the Error type, its closed kind set, and helper predicates.

package mlflow

import "errors"

// ErrorKind identifies a category of client failure.
type ErrorKind string

const (
	// KindExperimentBuilder covers builder validation failures raised before
	// any network activity.
	KindExperimentBuilder ErrorKind = "experiment_builder"

	// KindExperimentNotFound covers HTTP 404 on retrieval operations.
	KindExperimentNotFound ErrorKind = "experiment_not_found"

	// KindClient is reserved for distinguishable client-side faults.
	// No current code path raises it.
	KindClient ErrorKind = "client"

	// KindResourceAlreadyExists is reserved for server-side duplicate
	// conflicts. No current code path raises it; duplicate-name creation is
	// not specially detected.
	KindResourceAlreadyExists ErrorKind = "resource_already_exists"

	// KindUnknown is the catch-all for transport failures, decode failures,
	// and unexpected HTTP statuses.
	KindUnknown ErrorKind = "unknown"

	// KindConfig covers tracking-server configuration validation failures.
	KindConfig ErrorKind = "config"
)

// Error is the error type returned by every fallible operation in this
// package.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindExperimentBuilder:
		return "ExperimentBuilderError: " + e.Message
	case KindClient:
		return "ClientError: " + e.Message
	case KindResourceAlreadyExists:
		return "ResourceAlreadyExists: " + e.Message
	case KindUnknown:
		return "UnknownError: " + e.Message
	default:
		return e.Message
	}
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func hasKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsNotFound reports whether err indicates the experiment was not found.
func IsNotFound(err error) bool {
	return hasKind(err, KindExperimentNotFound)
}

// IsBuilderError reports whether err indicates invalid builder input.
func IsBuilderError(err error) bool {
	return hasKind(err, KindExperimentBuilder)
}

// IsClientError reports whether err indicates a client-side fault.
func IsClientError(err error) bool {
	return hasKind(err, KindClient)
}

// IsAlreadyExists reports whether err indicates the resource already exists.
func IsAlreadyExists(err error) bool {
	return hasKind(err, KindResourceAlreadyExists)
}

// IsUnknown reports whether err is the catch-all unknown error.
func IsUnknown(err error) bool {
	return hasKind(err, KindUnknown)
}

// IsConfigError reports whether err indicates invalid configuration.
func IsConfigError(err error) bool {
	return hasKind(err, KindConfig)
}
