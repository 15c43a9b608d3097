package httpkit

import "net/http"

// MountAPI mounts fn under /api with the given middleware stack
func MountAPI(r Router, mw []func(http.Handler) http.Handler, fn func(Router)) {
	r.Route("/api", func(api Router) {
		api.Use(mw...)
		fn(api)
	})
}

// MountAPIV1 mounts fn under /api/v1 with the given middleware stack
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, fn func(Router)) {
	MountAPI(r, mw, func(api Router) {
		api.Route("/v1", func(v1 Router) {
			fn(v1)
		})
	})
}

// MountUnder mounts fn under prefix when set, otherwise on r directly
func MountUnder(r Router, prefix string, fn func(Router)) {
	if prefix == "" || prefix == "/" {
		fn(r)
		return
	}
	r.Route(prefix, fn)
}
