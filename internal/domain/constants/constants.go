// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute keys set on every published account event.
const (
	EventAttrType      = "event_type"
	EventAttrUserID    = "user_id"
	EventAttrRequestID = "request_id"
)
