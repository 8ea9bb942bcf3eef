package server

import (
	"net/http"

	"harmonic/cache"
	"harmonic/core/catalog"
	"harmonic/logger"
	"harmonic/storage"
)

// TrackFormHandler renders the track creation form.
func (h *Handler) TrackFormHandler(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, "crud_msc", map[string]bool{
		"coverUploadEnabled": storage.Enabled(),
	})
}

// TrackCreateHandler creates a catalog track from the posted form. The form
// may be either urlencoded or multipart; a multipart cover_file, when present
// and object storage is configured, wins over the cover_url field.
func (h *Handler) TrackCreateHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	coverURL := ""
	if err := r.ParseMultipartForm(8 << 20); err == nil && storage.Enabled() {
		file, header, err := r.FormFile("cover_file")
		if err == nil {
			defer file.Close()
			url, err := storage.UploadCover(r.Context(), file, header.Size, header.Filename, header.Header.Get("Content-Type"))
			if err != nil {
				logger.Error("cover upload failed", logger.ErrorField(err))
				h.redirectWithFlash(w, r, "/crud_msc", cache.FlashError, "Cover upload failed. Please try again.")
				return
			}
			coverURL = url
		}
	}
	if coverURL == "" {
		coverURL = r.FormValue("cover_url")
	}

	_, err := h.catalog.Create(catalog.CreateInput{
		OwnerID:    sess.UserID,
		Title:      r.FormValue("title"),
		ArtistName: r.FormValue("artist_name"),
		Genre:      r.FormValue("genre"),
		CoverURL:   coverURL,
	})
	if err != nil {
		h.fail(w, r, err, "/crud_msc")
		return
	}

	h.redirectWithFlash(w, r, "/home", cache.FlashSuccess, "Track added successfully!")
}
