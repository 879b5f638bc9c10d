// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// routeNotFound answers unknown paths with a JSON 404.
//
// It is registered both as the router's NotFound handler and as its
// MethodNotAllowed handler, so that a known path requested with an
// unsupported method is indistinguishable from an unknown path: callers
// cannot probe which routes exist.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
