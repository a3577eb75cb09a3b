package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"communify/internal/store"
)

// UpsertUserHandler serves POST and PUT /api/users. The write is
// replace-by-key: sending an existing user_id overwrites its display name.
func (api *API) UpsertUserHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		return invalidData("user_id is required", nil)
	}
	userName := r.URL.Query().Get("user_name")

	user, err := api.directory.Upsert(userID, userName)
	if err != nil {
		return storeFailure(err)
	}
	api.metrics.UsersUpserted.Inc()
	api.respondJSON(w, http.StatusCreated, user)
	return nil
}

// GETUserHandler serves GET /api/users/{user_id}.
func (api *API) GETUserHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	userID := mux.Vars(r)["user_id"]

	user, err := api.directory.Lookup(userID)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("user " + userID + " does not exist")
	}
	if err != nil {
		return storeFailure(err)
	}
	api.respondJSON(w, http.StatusOK, user)
	return nil
}

// DeleteUserHandler serves DELETE /api/users. Deleting an unknown user still
// reports success, and the user's posts and comments stay behind.
func (api *API) DeleteUserHandler(w http.ResponseWriter, r *http.Request) *HTTPError {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		return invalidData("user_id is required", nil)
	}

	if err := api.directory.Remove(userID); err != nil {
		return storeFailure(err)
	}
	api.respondJSON(w, http.StatusOK, okBody)
	return nil
}
