package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/mcsclean/bookingd/internal/httpserver/deps"
)

// Static serves the web front end from StaticDir, falling back to
// index.html for unmatched paths so the installable page keeps working
// when opened on a deep link.
func Static(d deps.Deps) http.HandlerFunc {
	root := d.StaticDir
	fs := http.FileServer(http.Dir(root))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}

		path := filepath.Join(root, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}

		index := filepath.Join(root, "index.html")
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
		http.NotFound(w, r)
	}
}
