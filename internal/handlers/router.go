package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the route table and wraps it with the shared middleware.
// CORS sits outermost so error responses and preflights carry the headers
// too; recovery sits innermost so a panic still gets its request log line.
func NewRouter(api *API, logger *logrus.Logger) http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler())

	r.HandleFunc("/api/users", api.handle("upsert_user", api.UpsertUserHandler)).Methods("POST", "PUT")
	r.HandleFunc("/api/users", api.handle("delete_user", api.DeleteUserHandler)).Methods("DELETE")
	r.HandleFunc("/api/users/{user_id}", api.handle("get_user", api.GETUserHandler)).Methods("GET")

	r.HandleFunc("/api/posts", api.handle("get_posts", api.GETAllPostsHandler)).Methods("GET")
	r.HandleFunc("/api/posts", api.handle("create_post", api.CreatePostHandler)).Methods("POST")
	r.HandleFunc("/api/posts", api.handle("delete_post", api.DeletePostHandler)).Methods("DELETE")
	r.HandleFunc("/api/posts/{post_id}", api.handle("get_post", api.GETPostHandler)).Methods("GET")

	r.HandleFunc("/api/comments/{post_id}", api.handle("get_comments", api.GETCommentsHandler)).Methods("GET")
	r.HandleFunc("/api/comments", api.handle("create_comment", api.CreateCommentHandler)).Methods("POST")

	r.HandleFunc("/api/likes", api.handle("adjust_likes", api.AdjustLikesHandler)).Methods("PATCH")

	var h http.Handler = r
	h = WithRecover(logger)(h)
	h = WithRequestLog(logger)(h)
	h = WithCORS(h)
	return h
}
