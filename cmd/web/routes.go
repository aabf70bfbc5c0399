package main

import (
	"net/http"

	"github.com/bmizerany/pat"
)

func (app *application) routes() http.Handler {
	mux := pat.New()

	mux.Get("/", http.HandlerFunc(app.home))
	mux.Get("/search", app.rateLimit(http.HandlerFunc(app.searchProducts)))
	mux.Get("/shops/:id", http.HandlerFunc(app.showShop))
	mux.Get("/products/:id", http.HandlerFunc(app.showProduct))

	mux.Get("/register", app.requireGuest(http.HandlerFunc(app.registerForm)))
	mux.Post("/register", app.rateLimit(app.requireGuest(http.HandlerFunc(app.registerUser))))
	mux.Get("/login", app.requireGuest(http.HandlerFunc(app.loginForm)))
	mux.Post("/login", app.rateLimit(app.requireGuest(http.HandlerFunc(app.loginUser))))
	mux.Get("/logout", app.requireAuth(http.HandlerFunc(app.logoutUser)))
	mux.Get("/account", app.requireAuth(http.HandlerFunc(app.showAccount)))

	mux.Get("/cities/new", app.requireAuth(http.HandlerFunc(app.createCityForm)))
	mux.Post("/cities", app.requireAuth(http.HandlerFunc(app.createCity)))

	mux.Get("/health", http.HandlerFunc(app.healthcheck))
	mux.Get("/static/", http.StripPrefix("/static", http.FileServer(http.Dir("./ui/static"))))

	return app.recoverPanic(app.logRequest(app.secureHeaders(app.session.LoadAndSave(mux))))
}
