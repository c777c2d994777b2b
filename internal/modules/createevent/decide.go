package createevent

// View is one of the states the page renders.
type View int

const (
	ViewLoading View = iota
	ViewNotFound
	ViewForm
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewNotFound:
		return "not-found"
	case ViewForm:
		return "form"
	default:
		return "unknown"
	}
}

// Decide picks the view for the current page state and collective lookup.
//
// The page's own loading flag wins over everything. A finished lookup with
// no collective is not found. A lookup that has not produced a collective
// (still running or failed) keeps the page loading; the form is only shown
// with a collective. A failed lookup therefore renders as loading.
func Decide(state State, result CollectiveResult) View {
	switch {
	case state.Loading:
		return ViewLoading
	case !result.Loading && result.Collective == nil:
		return ViewNotFound
	case result.Collective == nil:
		return ViewLoading
	default:
		return ViewForm
	}
}
