package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bemviver",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bemviver",
			Name:      "bookings_created_total",
			Help:      "Appointments persisted successfully.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bemviver",
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected because the slot was taken.",
		},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bemviver",
			Name:      "notifications_total",
			Help:      "Outbound notification attempts by channel and outcome.",
		},
		[]string{"channel", "outcome"},
	)

	confirmations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bemviver",
			Name:      "whatsapp_confirmations_total",
			Help:      "Appointments confirmed via inbound WhatsApp reply.",
		},
	)
)

// Register registra as métricas no registry default. Seguro chamar mais
// de uma vez.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			bookingsCreated,
			bookingConflicts,
			notifications,
			confirmations,
		)
	})
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}

func IncNotification(channel, outcome string) {
	notifications.WithLabelValues(channel, outcome).Inc()
}

func IncConfirmation() {
	confirmations.Inc()
}
