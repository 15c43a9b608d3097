package httpkit

import (
	"net/http"
	"time"

	"segmenter/internal/platform/net/middleware"
)

// CommonStack is the default middleware stack for API routers
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.Logger(),
		middleware.Timeout(60 * time.Second),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.NoCache(),
	}
}
