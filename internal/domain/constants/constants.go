// Package constants holds identifiers shared by configuration and infrastructure.
package constants

const (
	// EnvDevelop is the env name used for local development
	EnvDevelop = "develop"
)

// Pub/Sub providers accepted in config.PubSubConfig.Provider
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderKafka    = "kafka"
	PubSubProviderRabbitMQ = "rabbitmq"
)
