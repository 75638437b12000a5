package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the marketplace counters exposed on /metrics.
type Collector struct {
	jobsCreated          prometheus.Counter
	bidsPlaced           prometheus.Counter
	bidsAccepted         prometheus.Counter
	jobsCompleted        prometheus.Counter
	notificationsEmitted *prometheus.CounterVec
	offersSent           prometheus.Counter

	registry *prometheus.Registry
}

func NewCollector() *Collector {
	c := &Collector{
		jobsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_jobs_created_total",
			Help: "Total number of jobs posted",
		}),
		bidsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_bids_placed_total",
			Help: "Total number of bids placed",
		}),
		bidsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_bids_accepted_total",
			Help: "Total number of bids accepted",
		}),
		jobsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_jobs_completed_total",
			Help: "Total number of jobs completed",
		}),
		notificationsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_notifications_emitted_total",
			Help: "Total number of notification events emitted, by kind",
		}, []string{"kind"}),
		offersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_offers_sent_total",
			Help: "Total number of direct offers sent from the leaderboard",
		}),
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(c.jobsCreated, c.bidsPlaced, c.bidsAccepted,
		c.jobsCompleted, c.notificationsEmitted, c.offersSent)

	return c
}

func (c *Collector) JobCreated()   { c.jobsCreated.Inc() }
func (c *Collector) BidPlaced()    { c.bidsPlaced.Inc() }
func (c *Collector) BidAccepted()  { c.bidsAccepted.Inc() }
func (c *Collector) JobCompleted() { c.jobsCompleted.Inc() }
func (c *Collector) OfferSent()    { c.offersSent.Inc() }

func (c *Collector) NotificationEmitted(kind string) {
	c.notificationsEmitted.WithLabelValues(kind).Inc()
}

// Handler returns the scrape endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
