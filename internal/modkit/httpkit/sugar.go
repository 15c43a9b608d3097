package httpkit

import "net/http"

// Sugar for the common method + adapter pairings so module route files stay flat

// GetJSON registers a GET route with a typed JSON body
func GetJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Get(path, JSON(fn))
}

// PostJSON registers a POST route with a typed JSON body
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(fn))
}

// PutJSON registers a PUT route with a typed JSON body
func PutJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Put(path, JSON(fn))
}

// PatchJSON registers a PATCH route with a typed JSON body
func PatchJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Patch(path, JSON(fn))
}

// DeleteJSON registers a DELETE route with a typed JSON body
func DeleteJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Delete(path, JSON(fn))
}

// Get registers a body-less GET route
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, Call(fn))
}

// Post registers a body-less POST route
func Post(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Post(path, Call(fn))
}

// Put registers a body-less PUT route
func Put(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Put(path, Call(fn))
}

// Delete registers a body-less DELETE route
func Delete(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Delete(path, Call(fn))
}
