// Package httpkit re-exports platform http types and helpers for modules
package httpkit

import (
	"net/http"

	phttp "segmenter/internal/platform/net/http"
)

// Router is the platform router seam
type Router = phttp.Router

// Handler is the platform handler func
type Handler = phttp.Handler

// Response is the typed handler response
type Response = phttp.Response

// Envelope is the wire envelope for all JSON responses
type Envelope = phttp.Envelope

// Handle adapts a Response-returning handler
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// JSON adapts a typed JSON body handler
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandler(fn)
}

// Call adapts a body-less handler
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Param returns a path parameter by name
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// OK returns a 200 response with data
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response with data
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns an error response mapped from a platform error
func Error(err error) Response { return phttp.Error(err) }
