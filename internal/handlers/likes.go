package handlers

import (
	"net/http"

	"communify/internal/store"
)

// AdjustLikesHandler serves PATCH /api/likes?post_id=&mode=. mode is exactly
// Increment or Decrement. The update touches at most one row and touching
// zero rows is still success.
func (api *API) AdjustLikesHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	postID, err := parsePostID(r.URL.Query().Get("post_id"))
	if err != nil {
		return invalidData("post_id must be an integer", err)
	}
	mode, err := store.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		return invalidData("mode must be Increment or Decrement", err)
	}

	if err := api.likes.Adjust(postID, mode); err != nil {
		return storeFailure(err)
	}
	api.metrics.LikeAdjustments.WithLabelValues(string(mode)).Inc()
	api.respondJSON(w, http.StatusOK, okBody)
	return nil
}
