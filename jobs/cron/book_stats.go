package cron

import (
	"github.com/jasonlvhit/gocron"

	"github.com/quantfeed/pitchbook/config"
	"github.com/quantfeed/pitchbook/workers/engines"
)

// BookStatsJob periodically logs a per-instrument book summary while the
// feed is being ingested.
type BookStatsJob struct {
	Worker *engines.MatchingWorker
}

func (j *BookStatsJob) Process() {
	s := gocron.NewScheduler()
	s.Every(config.App.StatsInterval).Seconds().Do(j.Worker.LogStats)
	<-s.Start()
}
