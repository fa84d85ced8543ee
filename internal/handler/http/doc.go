// Package http implements the REST API of the city guide.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as bearer authentication, CORS, request tracing, access
// logging and response compression are handled here before requests are
// delegated to the service layer. Errors are mapped to status codes in one
// place, see statusFromError.
package http
