package mlflow

// Config pairs a validated tracking-server URI with the client constructed
// for it. A Config is immutable once built.
type Config struct {
	trackingServerURI string
	client            *RestClient
}

// DefaultConfig returns a ConfigBuilder with the URI pre-set to
// DefaultTrackingURI.
func DefaultConfig() *ConfigBuilder {
	uri := DefaultTrackingURI
	return &ConfigBuilder{trackingServerURI: &uri}
}

// TrackingServerURI returns the validated tracking server URI.
func (c *Config) TrackingServerURI() string {
	return c.trackingServerURI
}

// Client returns the REST client built for the configured URI.
func (c *Config) Client() *RestClient {
	return c.client
}

// ConfigBuilder assembles a Config. The zero value has no URI set and fails
// validation; start from DefaultConfig to get the default endpoint.
type ConfigBuilder struct {
	trackingServerURI *string
}

// WithTrackingServerURI sets the tracking server URI.
func (b *ConfigBuilder) WithTrackingServerURI(uri string) *ConfigBuilder {
	b.trackingServerURI = &uri
	return b
}

// Build validates the URI and constructs the Config and its client.
// A URI that was never provided and a URI explicitly set to the empty string
// are distinct failure paths, though both carry the config error kind.
func (b *ConfigBuilder) Build() (*Config, error) {
	if b.trackingServerURI == nil {
		return nil, newError(KindConfig, "tracking server uri was not set")
	}
	if *b.trackingServerURI == "" {
		return nil, newError(KindConfig, "empty tracking server uri")
	}

	return &Config{
		trackingServerURI: *b.trackingServerURI,
		client:            NewRestClient(*b.trackingServerURI),
	}, nil
}
