// ABOUTME: Package mlflow provides a Go client for the MLflow tracking server.
// ABOUTME: This is the main package containing the RestClient, builder, and loader types.

// Package mlflow provides a Go client for the MLflow Tracking Server REST
// API, covering experiment creation and retrieval.
//
// # Quick Start
//
// Create an experiment through the builder:
//
//	builder, err := mlflow.NewExperimentBuilder("my-ml-experiment")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	experiment, err := builder.
//	    WithTag(mlflow.Tag("team", "ml")).
//	    Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Fetch an existing experiment by name:
//
//	experiment, err := mlflow.NewExperimentLoader().
//	    WithClient(client).
//	    Load(ctx, mlflow.ByName("my-ml-experiment"))
//	if err != nil {
//	    if mlflow.IsNotFound(err) {
//	        log.Fatal("experiment not found")
//	    }
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Builders and loaders default to a server at http://localhost:5000. Point
// them elsewhere by supplying a client, or build a validated Config:
//
//	cfg, err := mlflow.DefaultConfig().
//	    WithTrackingServerURI("http://mlflow.example.com:5000").
//	    Build()
//
// # Error Handling
//
// All failures are returned as *mlflow.Error values carrying one of a closed
// set of kinds, inspectable with predicates:
//
//	if mlflow.IsNotFound(err) {
//	    // Handle 404 on retrieval
//	}
//	if mlflow.IsBuilderError(err) {
//	    // Handle invalid builder input
//	}
//
// Transport failures, undecodable bodies, and unexpected statuses all report
// as unknown errors with the underlying detail preserved in the message.
//
// # Thread Safety
//
// A RestClient is safe for concurrent use. Builders and loaders are
// single-use configuration objects; create one per operation.
package mlflow
