package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verial",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status class.",
		},
		[]string{"route", "status"},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "verial",
			Name:      "booking_transitions_total",
			Help:      "Booking status transitions applied.",
		},
		[]string{"to"},
	)

	notificationsDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "verial",
			Name:      "notifications_delivered_total",
			Help:      "Notifications successfully delivered to the webhook.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingTransitions, notificationsDelivered)
	})
}

func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}

func IncBookingTransition(to string) {
	bookingTransitions.WithLabelValues(to).Inc()
}

func IncNotificationDelivered() {
	notificationsDelivered.Inc()
}

// Handler exposes the registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
