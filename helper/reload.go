package helper

import (
	"context"
	"log"
	"makkanya_dashboard/database"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var reloadScheduler gocron.Scheduler

// StartDatasetReloadScheduler reloads source every interval. A failed
// reload keeps the dataset already in memory.
func StartDatasetReloadScheduler(source string, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("WIB", 7*3600)),
	)
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if _, err := database.Reload(ctx, source); err != nil {
				log.Printf("[CRON] dataset reload: %v", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	reloadScheduler = s
	s.Start()
	log.Printf("[CRON] dataset reload every %s from %s", interval, source)
	return nil
}

func StopDatasetReloadScheduler() {
	if reloadScheduler != nil {
		if err := reloadScheduler.Shutdown(); err != nil {
			log.Printf("[CRON] stop reload scheduler: %v", err)
		}
		reloadScheduler = nil
	}
}
