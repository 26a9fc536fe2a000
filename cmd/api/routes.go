package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// without these the router would return plain text 404/405 responses
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// resource routers are registered in sequence; add new ones here
	for _, register := range []func(*httprouter.Router){
		app.systemRoutes,
		app.movieRoutes,
	} {
		register(router)
	}

	// flow: metrics -> recoverPanic -> enableCORS -> rateLimit
	return app.metrics(app.recoverPanic(app.enableCORS(app.rateLimit(router))))
}

func (app *application) systemRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)
	router.Handler(http.MethodGet, "/metrics", expvar.Handler())
}

func (app *application) movieRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/movies", app.listMoviesHandler)
	router.HandlerFunc(http.MethodPost, "/movies", app.createMovieHandler)
	router.HandlerFunc(http.MethodGet, "/movies/:id", app.showMovieHandler)
	router.HandlerFunc(http.MethodPut, "/movies/:id", app.updateMovieHandler)
	router.HandlerFunc(http.MethodDelete, "/movies/:id", app.deleteMovieHandler)
}
