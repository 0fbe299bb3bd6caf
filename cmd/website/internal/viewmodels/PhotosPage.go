package viewmodels

type PhotosPage struct {
	BaseViewModel
}
