package viewmodels

type HomePage struct {
	BaseViewModel
}
