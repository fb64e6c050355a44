// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/iros-gateway/internal/app"
	"github.com/MKhiriev/iros-gateway/internal/utils"
	"github.com/MKhiriev/iros-gateway/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A route called with a method it does not handle answers 404 with the
// usual JSON error body instead of chi's 405, so callers cannot tell which
// paths exist. Requests whose method the router can in fact resolve,
// including parameterised and mounted routes, are handed back to router.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		notFound(w, r)
	}
}

// notFound writes the JSON 404 body shared by unknown routes and
// unsupported methods.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Message: app.MsgNotFound,
		Errors:  map[string]string{},
	}, http.StatusNotFound)
}
