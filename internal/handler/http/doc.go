// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing and access logging are
// handled in this package before requests are delegated to the service layer.
// All response bodies follow the envelope convention of the API: errors carry
// the "erro" key, successes carry "message" and/or the resource under its
// named key.
package http
