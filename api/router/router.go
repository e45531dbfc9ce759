package router

import (
	"path"

	"github.com/labstack/echo/v4"
)

// Controller is implemented by every REST controller
type Controller interface {
	// Register is called by the router so the controller can add its routes
	Register(router *Router)
}

type Router struct {
	*echo.Echo

	// prefix is prepended to every route registered through this router
	prefix string
}

func New() *Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Router{
		Echo:   e,
		prefix: "/",
	}
}

// Group returns a router sharing the same echo instance under a longer prefix.
func (router *Router) Group(urlPath string) *Router {
	return &Router{
		Echo:   router.Echo,
		prefix: path.Join(router.prefix, urlPath),
	}
}

// Register registers controllers' endpoints
func (router *Router) Register(controllers ...Controller) {
	for _, controller := range controllers {
		controller.Register(router)
	}
}

func (router *Router) GET(urlPath string, handle echo.HandlerFunc) {
	router.Echo.GET(path.Join(router.prefix, urlPath), handle)
}

func (router *Router) POST(urlPath string, handle echo.HandlerFunc) {
	router.Echo.POST(path.Join(router.prefix, urlPath), handle)
}

func (router *Router) PUT(urlPath string, handle echo.HandlerFunc) {
	router.Echo.PUT(path.Join(router.prefix, urlPath), handle)
}

func (router *Router) DELETE(urlPath string, handle echo.HandlerFunc) {
	router.Echo.DELETE(path.Join(router.prefix, urlPath), handle)
}
