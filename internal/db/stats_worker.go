package db

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"sleepapi/internal/logger"
)

var (
	usersTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sleepapi",
		Name:      "users_total",
		Help:      "Number of user rows in the database.",
	})
	sleepLogsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sleepapi",
		Name:      "sleep_logs_total",
		Help:      "Number of sleep log rows in the database.",
	})

	statsRegisterOnce sync.Once
)

// runStatsOnce refreshes the table-size gauges from the database.
func runStatsOnce(db *gorm.DB) error {
	var users, logs int64
	if err := db.Model(&User{}).Count(&users).Error; err != nil {
		return err
	}
	if err := db.Model(&SleepLog{}).Count(&logs).Error; err != nil {
		return err
	}
	usersTotal.Set(float64(users))
	sleepLogsTotal.Set(float64(logs))
	return nil
}

// StartStatsWorker launches a background goroutine that refreshes the
// table-size gauges once at startup and then on the given interval.
func StartStatsWorker(db *gorm.DB, interval time.Duration) {
	statsRegisterOnce.Do(func() {
		prometheus.MustRegister(usersTotal, sleepLogsTotal)
	})

	go func() {
		if err := runStatsOnce(db); err != nil {
			logger.Get().Warnw("stats refresh failed (startup)", "error", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := runStatsOnce(db); err != nil {
				logger.Get().Warnw("stats refresh failed", "error", err)
			}
		}
	}()
}
