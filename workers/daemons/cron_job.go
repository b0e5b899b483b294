package daemons

import (
	"time"

	"github.com/quantfeed/pitchbook/jobs"
	"github.com/quantfeed/pitchbook/jobs/cron"
	"github.com/quantfeed/pitchbook/workers/engines"
)

type CronJob struct {
	Running bool
	Jobs    []jobs.Job
}

func NewCronJob(worker *engines.MatchingWorker) *CronJob {
	jobs := []jobs.Job{&cron.BookStatsJob{Worker: worker}}

	return &CronJob{Running: true, Jobs: jobs}
}

func (c *CronJob) Stop() {
	c.Running = false
}

func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		go c.Process(job)
	}
}

func (c *CronJob) Process(job jobs.Job) {
	for c.Running {
		job.Process()
		time.Sleep(1 * time.Second)
	}
}
