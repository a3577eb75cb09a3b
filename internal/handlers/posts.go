package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"communify/internal/models"
	"communify/internal/store"
)

type createPostRequest struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Data     string `json:"data"`
}

// GETAllPostsHandler serves GET /api/posts: every post, newest first, with
// bodies truncated for listing.
func (api *API) GETAllPostsHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	posts, err := api.posts.List()
	if err != nil {
		return storeFailure(err)
	}
	if posts == nil {
		// an empty table still encodes as [], not null
		posts = []models.PostView{}
	}
	api.respondJSON(w, http.StatusOK, posts)
	return nil
}

// GETPostHandler serves GET /api/posts/{post_id} with the full body.
func (api *API) GETPostHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	postID, err := parsePostID(mux.Vars(r)["post_id"])
	if err != nil {
		return invalidData("post_id must be an integer", err)
	}

	post, err := api.posts.Fetch(postID)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("post not found")
	}
	if err != nil {
		return storeFailure(err)
	}
	api.respondJSON(w, http.StatusOK, post)
	return nil
}

// CreatePostHandler serves POST /api/posts. The author must already exist in
// the directory; an unknown user_id is a client error, not a server fault.
func (api *API) CreatePostHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return invalidData("invalid request body", err)
	}
	if req.UserID == "" {
		return invalidData("user_id is required", nil)
	}

	post, err := api.posts.Create(req.UserID, req.Title, req.Language, req.Data)
	if errors.Is(err, store.ErrUserNotFound) {
		return userNotFound(req.UserID)
	}
	if err != nil {
		return storeFailure(err)
	}
	api.metrics.PostsCreated.Inc()
	api.respondJSON(w, http.StatusCreated, post)
	return nil
}

// DeletePostHandler serves DELETE /api/posts?user_id=&post_id=. The delete
// is keyed on the (user_id, post_id) pair and tolerates matching nothing.
func (api *API) DeletePostHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		return invalidData("user_id is required", nil)
	}
	postID, err := parsePostID(r.URL.Query().Get("post_id"))
	if err != nil {
		return invalidData("post_id must be an integer", err)
	}

	if err := api.posts.Delete(userID, postID); err != nil {
		return storeFailure(err)
	}
	api.respondJSON(w, http.StatusOK, okBody)
	return nil
}
