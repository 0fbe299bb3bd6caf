package home

import (
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/llpevents/website/cmd/website/internal/configuration"
	"github.com/llpevents/website/cmd/website/internal/viewmodels"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	PhotosPage(w http.ResponseWriter, r *http.Request)
	ContactPage(w http.ResponseWriter, r *http.Request)
	LineupPage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	Config   *configuration.Config
	Renderer rendering.TemplateRenderer
}

type HomeController struct {
	config   *configuration.Config
	renderer rendering.TemplateRenderer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		config:   config.Config,
		renderer: config.Renderer,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
	}

	c.renderer.Render("pages/home", viewData, w)
}

/*
GET /photos
*/
func (c HomeController) PhotosPage(w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.PhotosPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/photos.js"},
			},
		},
	}

	c.renderer.Render("pages/photos", viewData, w)
}

/*
GET /contact
*/
func (c HomeController) ContactPage(w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.ContactPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		TurnstileSiteKey: c.config.TurnstileSiteKey,
	}

	c.renderer.Render("pages/contact", viewData, w)
}

/*
GET /lineup
*/
func (c HomeController) LineupPage(w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.LineupPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
	}

	c.renderer.Render("pages/lineup", viewData, w)
}
