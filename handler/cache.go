package handler

import (
	"context"
	"encoding/json"
	"log"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/database"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"makkanya_dashboard/utils"
	"time"

	"github.com/robfig/cron/v3"
)

var warmScheduler *cron.Cron

// WarmCache precomputes the KPI cards of every zone and period.
func WarmCache() int {
	ds, report, err := database.Snapshot()
	if err != nil || database.Redis == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	warmed := 0
	zones := append([]string{constants.ZONE_ALL}, zoneLabels()...)
	for _, zone := range zones {
		for _, period := range []string{constants.PERIOD_7_DAYS, constants.PERIOD_30_DAYS} {
			sel := model.Selection{Zone: zone, Period: period, Shift: constants.SHIFT_ALL}
			raw, err := json.Marshal(utils.ComputeKPIs(ds, sel))
			if err != nil {
				continue
			}
			database.CacheSet(ctx, selectionKey(report.Version, "kpi", sel), raw, cacheTTL())
			warmed++
		}
	}
	return warmed
}

func zoneLabels() []string {
	out := []string{}
	for _, z := range helper.Zones() {
		if z.Label != constants.ZONE_ALL {
			out = append(out, z.Label)
		}
	}
	return out
}

func StartCacheWarmer(spec string) error {
	if spec == "" {
		return nil
	}
	warmScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := warmScheduler.AddFunc(spec, func() {
		if n := WarmCache(); n > 0 {
			log.Printf("[CRON] warmed %d kpi entries", n)
		}
	})
	if err != nil {
		return err
	}

	warmScheduler.Start()
	log.Printf("[CRON] cache warm-up scheduled (%s)", spec)
	return nil
}

func StopCacheWarmer() {
	if warmScheduler != nil {
		warmScheduler.Stop()
		warmScheduler = nil
	}
}
