package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// Log messages - turn clock
const (
	LogMsgTurnClockAdvanced = "Turn clock advanced idle turn"
	LogMsgTurnClockSkipped  = "Turn clock skipped, game was active"
	LogMsgTurnClockFailed   = "Turn clock advance rejected"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
