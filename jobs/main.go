package jobs

// Job is one unit of periodic work run by the daemon.
type Job interface {
	Process()
}
