// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-api/internal/app"
	"github.com/MKhiriev/go-library-api/internal/utils"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router.
//
// Chi responds with 405 Method Not Allowed whenever a path matches a
// registered route but the method is not handled. Answering 404 instead
// hides the existence of the route from callers using an unsupported
// method, and gives unknown paths the same JSON body as every other error.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgRouteNotFound, http.StatusNotFound)
}
