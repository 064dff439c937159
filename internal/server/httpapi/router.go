package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes. Requests under basePath are served as if
// the prefix were absent; other paths are routed unchanged.
func NewRouter(h *Handler, basePath string) http.Handler {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(cors(), requestLogger(h.logger), recovery(h.logger, h.catalog))

	r.GET("/health", h.Health)
	r.POST("/admin/login", h.Login)
	r.POST("/dashboard/data", h.Dashboard)

	users := r.Group("/users")
	{
		users.POST("/list", h.ListUsers)
		users.POST("/create", h.CreateUser)
	}

	r.NoRoute(h.NotFound)

	return stripBasePath(basePath, r)
}

func stripBasePath(base string, next http.Handler) http.Handler {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rest, ok := strings.CutPrefix(r.URL.Path, base)
		if !ok || (rest != "" && rest[0] != '/') {
			next.ServeHTTP(w, r)
			return
		}
		if rest == "" {
			rest = "/"
		}

		r2 := r.Clone(r.Context())
		r2.URL.Path = rest
		r2.URL.RawPath = ""
		next.ServeHTTP(w, r2)
	})
}
