package concurrency

import (
	"time"
)

// ThrottledWorker runs a job per output index with a fixed delay between
// jobs; the device firmware drops commands that arrive back to back.
type ThrottledWorker struct {
	jobCallback func(index int) error
}

func NewThrottledWorker(jobCallback func(index int) error) ThrottledWorker {
	return ThrottledWorker{jobCallback: jobCallback}
}

func (w *ThrottledWorker) Run(indexes []int) {

	jobArgsChannel := make(chan int, len(indexes))

	for _, index := range indexes {
		jobArgsChannel <- index
	}
	close(jobArgsChannel)
	limiter := time.NewTicker(100 * time.Millisecond)
	defer limiter.Stop()

	for index := range jobArgsChannel {
		<-limiter.C
		w.jobCallback(index)
	}

}
