package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for shop-level observability.
type BusinessMetrics struct {
	// Catalog
	ProductsCreated *prometheus.CounterVec
	ImageUploads    *prometheus.CounterVec

	// Weather matching
	WeatherLookups *prometheus.CounterVec
	WeatherMatches *prometheus.CounterVec

	// Cart
	CartItemsAdded   *prometheus.CounterVec
	CartItemsRemoved *prometheus.CounterVec
	CartValue        *prometheus.HistogramVec

	// Orders
	CheckoutsCompleted *prometheus.CounterVec
	CheckoutsFailed    *prometheus.CounterVec
	OrderValue         *prometheus.HistogramVec
	OrderItemCount     *prometheus.HistogramVec
	RevenueCollected   *prometheus.CounterVec

	// Auth & accounts
	Signups     *prometheus.CounterVec
	Logins      *prometheus.CounterVec
	LoginFailed *prometheus.CounterVec

	// Background jobs
	JobsProcessed *prometheus.CounterVec
	JobsFailed    *prometheus.CounterVec
	JobDuration   *prometheus.HistogramVec
	ImagesSwept   *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "wardrobe"
	}

	subsystem := "business"

	m := &BusinessMetrics{
		// =======================================================================
		// Catalog
		// =======================================================================
		ProductsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "products_created_total",
				Help:      "Total products added to the catalog",
			},
			[]string{"default_image"}, // default_image: t-shirt, trousers, hoodie, coat, other
		),
		ImageUploads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "image_uploads_total",
				Help:      "Total product image uploads by outcome",
			},
			[]string{"result"}, // result: stored, storage_failed
		),

		// =======================================================================
		// Weather Matching
		// =======================================================================
		WeatherLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "weather_lookups_total",
				Help:      "Total geocoding and weather lookups by outcome",
			},
			[]string{"result"}, // result: ok, geocode_failed, weather_failed
		),
		WeatherMatches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "weather_matches_total",
				Help:      "Total match-to-weather requests by resolved season",
			},
			[]string{"season"},
		),

		// =======================================================================
		// Cart
		// =======================================================================
		CartItemsAdded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_added_total",
				Help:      "Total units added to carts",
			},
			[]string{},
		),
		CartItemsRemoved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_removed_total",
				Help:      "Total units removed from carts",
			},
			[]string{},
		),
		CartValue: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_value",
				Help:      "Cart total when viewed",
				Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
			},
			[]string{},
		),

		// =======================================================================
		// Orders
		// =======================================================================
		CheckoutsCompleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkouts_completed_total",
				Help:      "Total carts converted into orders",
			},
			[]string{},
		),
		CheckoutsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkouts_failed_total",
				Help:      "Total checkouts rejected or aborted",
			},
			[]string{"error_code"},
		),
		OrderValue: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value",
				Help:      "Order total at checkout",
				Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
			},
			[]string{},
		),
		OrderItemCount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of lines per order",
				Buckets:   []float64{1, 2, 3, 5, 10, 20},
			},
			[]string{},
		),
		RevenueCollected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "revenue_collected",
				Help:      "Total value of completed orders",
			},
			[]string{},
		),

		// =======================================================================
		// Auth & Accounts
		// =======================================================================
		Signups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "signups_total",
				Help:      "Total user registrations",
			},
			[]string{},
		),
		Logins: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "logins_total",
				Help:      "Total successful logins",
			},
			[]string{},
		),
		LoginFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "login_failed_total",
				Help:      "Total failed login attempts",
			},
			[]string{},
		),

		// =======================================================================
		// Background Jobs
		// =======================================================================
		JobsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "jobs_processed_total",
				Help:      "Total background jobs successfully processed",
			},
			[]string{"job_type"},
		),
		JobsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "jobs_failed_total",
				Help:      "Total background job failures",
			},
			[]string{"job_type"},
		),
		JobDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "job_duration_seconds",
				Help:      "Background job execution duration",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"job_type"},
		),
		ImagesSwept: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "images_swept_total",
				Help:      "Total orphaned image files removed by the sweep",
			},
			[]string{},
		),
	}

	return m
}

// Global instance for easy access from handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace)
	return Business
}
