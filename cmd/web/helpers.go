package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
)

type validationResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter) {
	app.clientError(w, http.StatusNotFound)
}

func (app *application) validationError(w http.ResponseWriter, message string, errs []string) {
	app.validationErrorStatus(w, http.StatusBadRequest, message, errs)
}

func (app *application) validationErrorStatus(w http.ResponseWriter, status int, message string, errs []string) {
	if errs == nil {
		errs = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(validationResponse{Success: false, Message: message, Errors: errs})
}

// Flash messages are one-shot: set on a redirecting action, popped on the
// next rendered page.
func (app *application) flash(r *http.Request, kind, message string) {
	app.session.Put(r.Context(), "flashType", kind)
	app.session.Put(r.Context(), "flashMessage", message)
}

func (app *application) popFlash(r *http.Request) *Flash {
	message := app.session.PopString(r.Context(), "flashMessage")
	if message == "" {
		return nil
	}
	return &Flash{
		Type:    app.session.PopString(r.Context(), "flashType"),
		Message: message,
	}
}
