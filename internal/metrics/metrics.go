package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	SuccessfulRequests *prometheus.CounterVec
	BadRequests        *prometheus.CounterVec
	UsersUpserted      prometheus.Counter
	PostsCreated       prometheus.Counter
	CommentsCreated    prometheus.Counter
	LikeAdjustments    *prometheus.CounterVec
}

// InitMetrics builds the counter set and registers it on reg. Taking the
// registerer as a parameter keeps tests from tripping over duplicate
// registrations on the default registry.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SuccessfulRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_request",
				Help: "Total number of successful (2xx) HTTP requests",
			},
			[]string{"operation"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unsuccessful_request",
				Help: "Total number of unsuccessful (4xx/5xx) HTTP requests",
			},
			[]string{"operation"},
		),
		UsersUpserted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "users_upserted_total",
				Help: "Total number of directory entries written",
			},
		),
		PostsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "posts_created_total",
				Help: "Total number of posts created",
			},
		),
		CommentsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "comments_created_total",
				Help: "Total number of comments created",
			},
		),
		LikeAdjustments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "like_adjustments_total",
				Help: "Total number of like counter adjustments",
			},
			[]string{"mode"},
		),
	}

	reg.MustRegister(m.SuccessfulRequests)
	reg.MustRegister(m.BadRequests)
	reg.MustRegister(m.UsersUpserted)
	reg.MustRegister(m.PostsCreated)
	reg.MustRegister(m.CommentsCreated)
	reg.MustRegister(m.LikeAdjustments)

	return m
}
