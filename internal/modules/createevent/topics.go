package createevent

import "github.com/nfrund/collectives/internal/pubsub"

// EventCreated is published after an event has been stored.
type EventCreated struct {
	EventID        string `json:"eventId"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	CollectiveSlug string `json:"collectiveSlug"`
	CreatedBy      string `json:"createdBy"`
	StartsAt       string `json:"startsAt"`
}

// TopicEventCreated carries EventCreated payloads.
var TopicEventCreated = pubsub.NewEvent[EventCreated](
	"collectives.events.created",
	"An event was created for a collective",
)
