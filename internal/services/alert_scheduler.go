package services

import (
	"context"
	"os"
	"strconv"
	"time"

	"medequip_server/config"
	"medequip_server/pkg/colors"
)

// dispatchHour returns the daily run hour, default 09:00 local to the
// application timezone
func dispatchHour() int {
	if value := os.Getenv("ALERT_DISPATCH_HOUR"); value != "" {
		if hour, err := strconv.Atoi(value); err == nil && hour >= 0 && hour <= 23 {
			return hour
		}
		colors.PrintWarning("Invalid ALERT_DISPATCH_HOUR %q, using default", value)
	}
	return 9
}

// StartAlertScheduler runs the notification dispatch once a day at the
// configured hour until the context is canceled. There is no overlap guard
// or retry; each alert gets a single attempt per run.
func StartAlertScheduler(ctx context.Context) {
	service := NewAlertDispatchService()
	hour := dispatchHour()

	colors.PrintServer("⏰", "Alert scheduler started, daily run at %02d:00 %s", hour, config.GetLocation())

	for {
		next := nextRunTime(hour)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			colors.PrintInfo("Alert scheduler stopped")
			return
		case <-timer.C:
			colors.PrintInfo("Running scheduled alert check...")
			count, err := service.CheckAndSendDueAlerts()
			if err != nil {
				colors.PrintError("Scheduled alert check failed: %v", err)
				continue
			}
			colors.PrintSuccess("%d alerts checked and dispatched", count)
		}
	}
}

func nextRunTime(hour int) time.Time {
	now := config.GetCurrentTime()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, config.GetLocation())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
