// Package handlers is the JSON/HTTP surface. Every route is an API method
// returning *HTTPError; the handle adapter is the single place that encodes
// error bodies, counts requests and logs failures.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"communify/internal/metrics"
	"communify/internal/store"
)

// Error codes carried in JSON error bodies, one per error kind, so clients
// can dispatch without parsing messages.
var (
	ErrInvalidData  = "INVALID_DATA"
	ErrNotFound     = "NOT_FOUND"
	ErrUserNotFound = "USER_NOT_FOUND"
	ErrInternal     = "INTERNAL_ERROR"
)

// HTTPError is the uniform error body. IError keeps the underlying cause out
// of responses but available to the logs.
type HTTPError struct {
	IError    error  `json:"-"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

// OkResponse is the body for mutations that return no entity.
type OkResponse struct {
	Status string `json:"status"`
}

var okBody = OkResponse{Status: "ok"}

// API bundles the entity components behind the HTTP surface.
type API struct {
	directory *store.Directory
	posts     *store.Posts
	comments  *store.Comments
	likes     *store.Likes
	metrics   *metrics.Metrics
	logger    *logrus.Logger
}

func NewAPI(directory *store.Directory, posts *store.Posts, comments *store.Comments, likes *store.Likes, m *metrics.Metrics, logger *logrus.Logger) *API {
	return &API{
		directory: directory,
		posts:     posts,
		comments:  comments,
		likes:     likes,
		metrics:   m,
		logger:    logger,
	}
}

type apiHandler func(w http.ResponseWriter, r *http.Request) *HTTPError

// handle adapts an apiHandler into an http.HandlerFunc. A nil return means
// the handler already wrote its response.
func (api *API) handle(operation string, h apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e := h(w, r)
		if e == nil {
			api.metrics.SuccessfulRequests.WithLabelValues(operation).Inc()
			return
		}
		api.metrics.BadRequests.WithLabelValues(operation).Inc()

		entry := api.logger.WithFields(logrus.Fields{
			"operation":  operation,
			"status":     e.Status,
			"error_code": e.ErrorCode,
		})
		if e.IError != nil {
			entry = entry.WithError(e.IError)
		}
		if e.Status >= http.StatusInternalServerError {
			entry.Error(e.Error)
		} else {
			entry.Warn(e.Error)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(e.Status)
		if err := json.NewEncoder(w).Encode(e); err != nil {
			api.logger.WithError(err).Error("Failed to encode error response")
		}
	}
}

func (api *API) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		api.logger.WithError(err).Error("Failed to encode response")
	}
}

func invalidData(msg string, err error) *HTTPError {
	return &HTTPError{IError: err, Status: http.StatusBadRequest, Error: msg, ErrorCode: ErrInvalidData}
}

func notFound(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Error: msg, ErrorCode: ErrNotFound}
}

func userNotFound(userID string) *HTTPError {
	return &HTTPError{
		Status:    http.StatusBadRequest,
		Error:     "user " + userID + " does not exist",
		ErrorCode: ErrUserNotFound,
	}
}

func storeFailure(err error) *HTTPError {
	return &HTTPError{IError: err, Status: http.StatusInternalServerError, Error: "database error", ErrorCode: ErrInternal}
}

// parsePostID parses the wire form of a post id. Anything that is not a
// plain base-10 unsigned integer is rejected.
func parsePostID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
