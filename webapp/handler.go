package webapp

import (
	"net/http"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HandlerConfig describes the site to the go-app handler
type HandlerConfig struct {
	Name        string
	ShortName   string
	Description string
	Version     string
	SubmitDelay time.Duration
	BannerDelay time.Duration
}

// Handler returns an HTTP handler for the web app
func Handler(cfg HandlerConfig) http.Handler {
	RegisterRoutes()
	app.RunWhenOnBrowser()

	env := map[string]string{}
	if cfg.SubmitDelay > 0 {
		env["CONTACT_SUBMIT_DELAY"] = cfg.SubmitDelay.String()
	}
	if cfg.BannerDelay > 0 {
		env["CONTACT_BANNER_DELAY"] = cfg.BannerDelay.String()
	}

	// app.wasm is served from /web/app.wasm by Echo
	return &app.Handler{
		Name:        cfg.Name,
		ShortName:   cfg.ShortName,
		Title:       cfg.Name,
		Description: cfg.Description,
		Version:     cfg.Version,
		Icon: app.Icon{
			Default: "/favicon.ico",
		},
		Styles: []string{
			"/webapp/webapp.css",
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
		Env: env,
	}
}
