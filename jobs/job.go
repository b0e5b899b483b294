package jobs

// Job is a long-running background task driven by a daemon.
type Job interface {
	Process()
}
