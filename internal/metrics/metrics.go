// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, content activity, and
// store sizes.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "cedy"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Content metrics - track publishing and reader activity
	ArticlesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "articles_created_total",
			Help:      "Total number of articles created by category and status",
		},
		[]string{"category", "status"},
	)

	ArticleViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "article_views_total",
			Help:      "Total number of article page views counted",
		},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "searches_total",
			Help:      "Total number of article searches by result bucket",
		},
		[]string{"result"},
	)

	NewsletterSignups = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "newsletter_signups_total",
			Help:      "Total number of newsletter subscribe requests accepted",
		},
	)

	// Store metrics - track in-memory store sizes
	StoreEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "entities",
			Help:      "Number of entities held by each in-memory store",
		},
		[]string{"store"},
	)
)

// StoreCounter reports the size of one in-memory store.
// Satisfied by every repository's Count method.
type StoreCounter interface {
	Count(ctx context.Context) int
}

// StoreStatsCollector samples store sizes periodically into StoreEntities.
type StoreStatsCollector struct {
	stores   map[string]StoreCounter
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewStoreStatsCollector creates a collector over named stores.
func NewStoreStatsCollector(stores map[string]StoreCounter) *StoreStatsCollector {
	return &StoreStatsCollector{
		stores:   stores,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting store stats every interval.
func (c *StoreStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *StoreStatsCollector) collect() {
	ctx := context.Background()
	for name, store := range c.stores {
		StoreEntities.WithLabelValues(name).Set(float64(store.Count(ctx)))
	}
}

// Stop stops the store stats collector.
func (c *StoreStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// ObserveArticleCreated records a newly created article.
func ObserveArticleCreated(category, status string) {
	ArticlesCreated.WithLabelValues(category, status).Inc()
}

// ObserveSearch records a search and whether it found anything.
func ObserveSearch(resultCount int) {
	result := "hit"
	if resultCount == 0 {
		result = "miss"
	}
	SearchesTotal.WithLabelValues(result).Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}
