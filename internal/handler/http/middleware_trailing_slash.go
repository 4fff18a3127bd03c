package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// appendTrailingSlash is the router's NotFound handler. A GET or HEAD
// request whose path has no route, but whose path with a trailing slash
// has a GET route, is redirected there with 301; the query string is kept.
// Everything else is answered with 404.
func appendTrailingSlash(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if (r.Method == http.MethodGet || r.Method == http.MethodHead) &&
			!strings.HasSuffix(path, "/") &&
			router.Match(chi.NewRouteContext(), http.MethodGet, path+"/") {
			target := path + "/"
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
