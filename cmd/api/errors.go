package main

import (
	"net/http"
)

// fixed title carried by every validation problem response
const validationProblemTitle = "One or more validation errors occurred."

func (app *application) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(), "method", r.Method, "uri", r.URL.RequestURI())
}

// errorResponse writes a problem-style body: {"detail": ..., "status": ...}.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, detail string) {
	body := map[string]any{
		"detail": detail,
		"status": status,
	}

	err := app.writeJSON(w, status, body, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) internalServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	detail := "the server encountered a problem and could not process your request"
	app.errorResponse(w, r, http.StatusInternalServerError, detail)
}

// updateFailedResponse reports an unexpected failure while persisting an
// update. The detail string is fixed; the underlying error is only logged.
func (app *application) updateFailedResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	detail := "An error occurred while updating the movie."
	app.errorResponse(w, r, http.StatusInternalServerError, detail)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	detail := "the requested resource could not be found"
	app.errorResponse(w, r, http.StatusNotFound, detail)
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	detail := "the " + r.Method + " method is not supported for this resource"
	app.errorResponse(w, r, http.StatusMethodNotAllowed, detail)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse writes the structured 400 body consumed by the
// client-side normalizer: {"title": ..., "status": 400, "errors": {...}}.
// Field keys keep the server's own casing.
func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string][]string) {
	body := map[string]any{
		"title":  validationProblemTitle,
		"status": http.StatusBadRequest,
		"errors": errors,
	}

	err := app.writeJSON(w, http.StatusBadRequest, body, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	detail := "rate limit exceeded"
	app.errorResponse(w, r, http.StatusTooManyRequests, detail)
}
