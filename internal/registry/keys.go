package registry

import (
	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/i18n"
	"github.com/nfrund/collectives/internal/pubsub"
)

// Shared services, set by the server before modules register.
const (
	SessionRepositoryKey    Key[domain.SessionRepository]    = "core.sessions"
	CollectiveRepositoryKey Key[domain.CollectiveRepository] = "core.collectives"
	EventRepositoryKey      Key[domain.EventRepository]      = "core.events"
	PublisherKey            Key[pubsub.Publisher]            = "core.publisher"
	SubscriberKey           Key[pubsub.Subscriber]           = "core.subscriber"
	LocalizerKey            Key[i18n.Localizer]              = "core.localizer"
)
