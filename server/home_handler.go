package server

import (
	"net/http"

	"harmonic/model"
)

// discoverLimit is how many random tracks the home page shows per visit.
const discoverLimit = 10

type adminPanel struct {
	Users   []*model.User  `json:"users"`
	Uploads []*model.Music `json:"uploads"`
	Stats   adminStats     `json:"stats"`
}

type adminStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalMusics    int64 `json:"totalMusics"`
	TotalFavorites int64 `json:"totalFavorites"`
}

type homeView struct {
	DiscoverTracks []*model.Music `json:"discoverTracks"`
	ArtistTracks   []*model.Music `json:"artistTracks"`
	FavoriteTracks []*model.Music `json:"favoriteTracks"`
	FavoriteIDs    []int64        `json:"favoriteIds"`
	Admin          *adminPanel    `json:"admin,omitempty"`
}

// RootHandler sends the bare origin to the home page.
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// HomeHandler assembles the discover/own/favorites panels, plus the admin
// panel for admin sessions. The page is reachable anonymously; panels that
// need an identity stay empty.
func (h *Handler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	view := homeView{
		ArtistTracks:   []*model.Music{},
		FavoriteTracks: []*model.Music{},
		FavoriteIDs:    []int64{},
	}

	discover, err := h.catalog.Discover(discoverLimit)
	if err != nil {
		h.fail(w, r, err, "/login")
		return
	}
	view.DiscoverTracks = discover

	sess := sessionFromContext(r.Context())
	if sess != nil {
		if sess.Role.CanPublish() {
			own, err := h.catalog.ListByOwner(sess.UserID)
			if err != nil {
				h.fail(w, r, err, "/login")
				return
			}
			view.ArtistTracks = own
		}

		favs, err := h.catalog.ListFavoritedBy(sess.UserID)
		if err != nil {
			h.fail(w, r, err, "/login")
			return
		}
		view.FavoriteTracks = favs

		favSet, err := h.favorites.MusicIDs(sess.UserID)
		if err != nil {
			h.fail(w, r, err, "/login")
			return
		}
		for id := range favSet {
			view.FavoriteIDs = append(view.FavoriteIDs, id)
		}

		if sess.Role == model.RoleAdmin {
			panel, err := h.buildAdminPanel()
			if err != nil {
				h.fail(w, r, err, "/login")
				return
			}
			view.Admin = panel
		}
	}

	h.renderView(w, r, "home", view)
}

func (h *Handler) buildAdminPanel() (*adminPanel, error) {
	users, err := h.identity.ListUsers()
	if err != nil {
		return nil, err
	}
	uploads, err := h.catalog.ListAll()
	if err != nil {
		return nil, err
	}
	totalUsers, err := h.identity.CountUsers()
	if err != nil {
		return nil, err
	}
	totalMusics, err := h.catalog.Count()
	if err != nil {
		return nil, err
	}
	totalFavorites, err := h.favorites.Count()
	if err != nil {
		return nil, err
	}

	return &adminPanel{
		Users:   users,
		Uploads: uploads,
		Stats: adminStats{
			TotalUsers:     totalUsers,
			TotalMusics:    totalMusics,
			TotalFavorites: totalFavorites,
		},
	}, nil
}
