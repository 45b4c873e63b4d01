package common

import (
	"fmt"
	"sync"
	"time"
)

type Job func() error

type namedJob struct {
	name string
	job  Job
}

// JobQueue runs jobs one after another on a single background goroutine, in the order they were enqueued.
type JobQueue struct {
	jobsChannel chan namedJob
	waitGroup   sync.WaitGroup
	stopOnce    sync.Once
	logger      Logger
}

func NewJobQueue(logger Logger) *JobQueue {
	queue := &JobQueue{
		jobsChannel: make(chan namedJob, 128),
		logger:      logger,
	}
	queue.waitGroup.Add(1)
	go queue.run()
	return queue
}

// Enqueue schedules the job. Must not be called after Stop.
func (j *JobQueue) Enqueue(name string, job Job) {
	j.jobsChannel <- namedJob{name: name, job: job}
}

// Stop waits for the already enqueued jobs to finish and stops the worker.
func (j *JobQueue) Stop() {
	j.stopOnce.Do(func() {
		close(j.jobsChannel)
	})
	j.waitGroup.Wait()
}

func (j *JobQueue) run() {
	defer j.waitGroup.Done()
	for job := range j.jobsChannel {
		t := time.Now()
		err := job.job()
		if err != nil {
			j.logger.Log(fmt.Sprintf("job '%s' failed after %d ms: %s", job.name, time.Since(t).Milliseconds(), err.Error()))
			continue
		}
		j.logger.Log(fmt.Sprintf("job '%s' done in %d ms", job.name, time.Since(t).Milliseconds()))
	}
}
