// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Environment names used in configuration.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
