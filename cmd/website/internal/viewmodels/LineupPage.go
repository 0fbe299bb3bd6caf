package viewmodels

type LineupPage struct {
	BaseViewModel
}
