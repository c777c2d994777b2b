package createevent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	collective := webpack()
	user := member()

	tests := []struct {
		name   string
		state  State
		result CollectiveResult
		want   View
	}{
		{"page loading, collective loading", State{Loading: true}, CollectiveResult{Loading: true}, ViewLoading},
		{"page loading, collective found", State{Loading: true}, CollectiveResult{Collective: collective}, ViewLoading},
		{"page loading, collective missing", State{Loading: true}, CollectiveResult{}, ViewLoading},
		{"page ready, collective missing", State{LoggedInUser: user}, CollectiveResult{}, ViewNotFound},
		{"page ready without user, collective missing", State{}, CollectiveResult{}, ViewNotFound},
		{"page ready, collective still loading", State{LoggedInUser: user}, CollectiveResult{Loading: true}, ViewLoading},
		{"page ready, collective found", State{LoggedInUser: user}, CollectiveResult{Collective: collective}, ViewForm},
		{"page ready without user, collective found", State{}, CollectiveResult{Collective: collective}, ViewForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.result))
		})
	}
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "loading", ViewLoading.String())
	assert.Equal(t, "not-found", ViewNotFound.String())
	assert.Equal(t, "form", ViewForm.String())
	assert.Equal(t, "unknown", View(99).String())
}
