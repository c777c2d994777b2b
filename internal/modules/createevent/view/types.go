package view

import (
	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/i18n"
)

// FormValues are the values echoed back into the form after a failed
// submission.
type FormValues struct {
	Name        string
	Slug        string
	Description string
	Location    string
	StartsAt    string
	EndsAt      string
	Timezone    string
}

// FormData is the view model of the event-creation form.
type FormData struct {
	Loc          i18n.Localizer
	Collective   *domain.Collective
	LoggedInUser *domain.User
	ActionURL    string
	SignInURL    string
	CSRFToken    string
	Values       FormValues
	FieldErrors  map[string]string
}
