package handlers

import (
	"bytes"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/valyala/fasthttp"

	dbpkg "sleepapi/internal/db"
)

var (
	sleepLogsCreated   *prometheus.CounterVec
	sleepDurationHours prometheus.Histogram
)

func InitPrometheusMetrics() {
	sleepLogsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sleepapi",
			Name:      "sleep_logs_created_total",
			Help:      "Total number of sleep logs created, by reported morning feeling.",
		},
		[]string{"feeling"},
	)
	sleepDurationHours = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sleepapi",
			Name:      "sleep_duration_hours",
			Help:      "Histogram of recorded time in bed, in hours.",
			Buckets:   []float64{2, 4, 5, 6, 7, 8, 9, 10, 12, 16},
		},
	)
	prometheus.MustRegister(sleepLogsCreated, sleepDurationHours)
}

func observeSleepLogCreated(feeling dbpkg.MorningFeeling, totalTimeInBedSeconds int) {
	if sleepLogsCreated == nil {
		return
	}
	sleepLogsCreated.WithLabelValues(feeling.String()).Inc()
	sleepDurationHours.Observe(float64(totalTimeInBedSeconds) / 3600.0)
}

// MetricsHandler serves the Prometheus text exposition of all registered
// metrics. An optional ?prefix= query filters metric families by name
// prefix, which keeps scrapes of the domain metrics free of runtime noise.
func MetricsHandler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		prefix := string(ctx.QueryArgs().Peek("prefix"))

		metricFamilies, err := prometheus.DefaultGatherer.Gather()
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			ctx.SetBodyString("failed to gather metrics")
			return
		}

		filtered := make([]*dto.MetricFamily, 0, len(metricFamilies))
		for _, mf := range metricFamilies {
			if prefix != "" && !strings.HasPrefix(mf.GetName(), prefix) {
				continue
			}
			filtered = append(filtered, mf)
		}

		var buf bytes.Buffer
		encoder := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
		for _, mf := range filtered {
			if err := encoder.Encode(mf); err != nil {
				ctx.SetStatusCode(fasthttp.StatusInternalServerError)
				ctx.SetBodyString("failed to encode metrics")
				return
			}
		}

		ctx.SetContentType(string(expfmt.NewFormat(expfmt.TypeTextPlain)))
		ctx.Response.Header.Set("Cache-Control", "no-store")
		ctx.SetBody(buf.Bytes())
	}
}
