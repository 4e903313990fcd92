// Package web serves the embedded translator form and the API
// documentation pages.
package web

import (
	"embed"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// Register mounts the frontend at / and the API docs at /docs with the
// machine-readable schema at /openapi.json.
func Register(e *echo.Echo) {
	e.FileFS("/", "static/index.html", staticFS)
	e.FileFS("/docs", "static/docs.html", staticFS)
	e.FileFS("/openapi.json", "static/openapi.json", staticFS)
}
