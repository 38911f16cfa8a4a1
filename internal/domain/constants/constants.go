// Package constants holds values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Mail event transports
const (
	PubSubProviderInProcess = "inprocess"
	PubSubProviderLocal     = "local"
	PubSubProviderGoogle    = "google"
	PubSubProviderKafka     = "kafka"
)

// File storage backends
const (
	StorageProviderBlob = "blob"
	StorageProviderS3   = "s3"
)

// Upload folders below the configured root folder
const (
	FolderProducts      = "productos"
	FolderPaymentProofs = "comprobantes"
)
