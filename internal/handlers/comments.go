package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"communify/internal/models"
	"communify/internal/store"
)

type createCommentRequest struct {
	PostID uint   `json:"post_id"`
	UserID string `json:"user_id"`
	Data   string `json:"data"`
}

// GETCommentsHandler serves GET /api/comments/{post_id}, newest comment
// first. A post id with no comments yields an empty array.
func (api *API) GETCommentsHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	postID, err := parsePostID(mux.Vars(r)["post_id"])
	if err != nil {
		return invalidData("post_id must be an integer", err)
	}

	comments, err := api.comments.ListByPost(postID)
	if err != nil {
		return storeFailure(err)
	}
	if comments == nil {
		comments = []models.CommentView{}
	}
	api.respondJSON(w, http.StatusOK, comments)
	return nil
}

// CreateCommentHandler serves POST /api/comments.
func (api *API) CreateCommentHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return invalidData("invalid request body", err)
	}
	if req.UserID == "" {
		return invalidData("user_id is required", nil)
	}

	comment, err := api.comments.Create(req.PostID, req.UserID, req.Data)
	if errors.Is(err, store.ErrUserNotFound) {
		return userNotFound(req.UserID)
	}
	if err != nil {
		return storeFailure(err)
	}
	api.metrics.CommentsCreated.Inc()
	api.respondJSON(w, http.StatusCreated, comment)
	return nil
}
