// Package http implements the REST transport of the form engine.
//
// It wires the chi router, decodes JSON requests, maps service errors to
// status codes and writes JSON responses. Administrator routes are guarded
// by bearer-token authentication; the public routes (form lookup and
// submission) are not. Request tracing, access logging and response
// compression are applied as middleware before requests reach the service
// layer.
package http
