package createevent

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/modules/createevent/view"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FormTimeLayout is the value format of a datetime-local input.
const FormTimeLayout = "2006-01-02T15:04"

// ErrEndsBeforeStart is returned when an event's end is not after its start.
var ErrEndsBeforeStart = errors.New("event ends before it starts")

// CreateEventRequest is the submitted event form.
type CreateEventRequest struct {
	Name        string `form:"name" validate:"required,max=255"`
	Slug        string `form:"slug" validate:"required,max=255,slug"`
	Description string `form:"description" validate:"max=5000"`
	Location    string `form:"location" validate:"max=255"`
	StartsAt    string `form:"startsAt" validate:"required,datetime=2006-01-02T15:04"`
	EndsAt      string `form:"endsAt" validate:"omitempty,datetime=2006-01-02T15:04"`
	Timezone    string `form:"timezone" validate:"omitempty,timezone"`
}

// Normalize trims the free text fields and fills in the slug from the name
// when none was given. A name without any latin letters or digits gets a
// generated "event-xxxxxxxx" slug.
func (r *CreateEventRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.Timezone = strings.TrimSpace(r.Timezone)
	if r.Slug == "" {
		r.Slug = Slugify(r.Name)
	}
	if r.Slug == "" && r.Name != "" {
		r.Slug = fallbackSlug()
	}
}

func fallbackSlug() string {
	return "event-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Values echoes the request back into the form.
func (r CreateEventRequest) Values() view.FormValues {
	return view.FormValues{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Location:    r.Location,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Timezone:    r.Timezone,
	}
}

// ToEvent converts a validated request into an event for the collective,
// interpreting the times in the request's timezone (UTC when unset).
func (r CreateEventRequest) ToEvent(collective *domain.Collective, creator *domain.User) (*domain.Event, error) {
	loc := time.UTC
	if r.Timezone != "" {
		l, err := time.LoadLocation(r.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", r.Timezone, err)
		}
		loc = l
	}

	startsAt, err := time.ParseInLocation(FormTimeLayout, r.StartsAt, loc)
	if err != nil {
		return nil, fmt.Errorf("parse startsAt: %w", err)
	}

	event := &domain.Event{
		CollectiveID: collective.ID,
		CreatedBy:    creator.ID,
		Slug:         r.Slug,
		Name:         r.Name,
		Description:  r.Description,
		Location:     r.Location,
		StartsAt:     surrealmodels.CustomDateTime{Time: startsAt.UTC()},
	}

	if r.EndsAt != "" {
		endsAt, err := time.ParseInLocation(FormTimeLayout, r.EndsAt, loc)
		if err != nil {
			return nil, fmt.Errorf("parse endsAt: %w", err)
		}
		if !endsAt.After(startsAt) {
			return nil, ErrEndsBeforeStart
		}
		event.EndsAt = &surrealmodels.CustomDateTime{Time: endsAt.UTC()}
	}

	return event, nil
}

// Slugify turns s into a lowercase, dash separated slug. Accents are
// stripped and anything that is not a letter or digit becomes a separator.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
