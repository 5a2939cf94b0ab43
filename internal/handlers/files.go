package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
)

// NewSongsHandler returns an HTTP handler serving the audio library rooted at
// root. Files are streamed with range support so browsers can seek; a
// directory renders a link listing in the shape the player's frontend
// expects.
// @Summary Browse and stream songs
// @Description Streams an audio file or lists a directory under the songs root.
// @Tags songs
// @Success 200 "File contents or directory listing"
// @Failure 404 "Not found"
// @Router /Songs/{path} [get]
func NewSongsHandler(root string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(r.URL.Path, "/Songs")
		// Clean against the virtual root so "../" can never escape it.
		rel = filepath.Clean("/" + rel)
		full := filepath.Join(root, rel)

		info, err := os.Stat(full)
		if err != nil {
			logger.Log.Infow("song path not found", "path", full)
			http.NotFound(w, r)
			return
		}

		if info.IsDir() {
			entries, err := os.ReadDir(full)
			if err != nil {
				logger.Log.Errorw("failed to list song directory", "path", full, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			links := make([]string, 0, len(entries))
			for _, entry := range entries {
				href := path.Join(r.URL.Path, entry.Name())
				links = append(links, `<a href="`+href+`">`+entry.Name()+`</a>`)
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(strings.Join(links, "<br>")))
			return
		}

		logger.Log.Infow("serving song file", "path", full)
		http.ServeFile(w, r, full)
	}
}
