package handlers

import (
	"net/http"
	"path"
)

// pageHandler serves the static UI from dir. An extensionless path such as
// /user/dashboard falls back to user/dashboard.html.
func pageHandler(dir string) http.Handler {
	root := http.Dir(dir)
	fileServer := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := path.Clean("/" + r.URL.Path)
		if p != "/" && path.Ext(p) == "" {
			if f, err := root.Open(p + ".html"); err == nil {
				f.Close()
				r = r.Clone(r.Context())
				r.URL.Path = p + ".html"
			}
		}
		fileServer.ServeHTTP(w, r)
	})
}
