package viewmodels

type ContactPage struct {
	BaseViewModel

	TurnstileSiteKey string
}
