package menuimport

import (
	"context"
	"log"
)

// Worker consumes job signals and processes one import at a time. Items
// inside a job are already strictly sequential; running jobs one after
// another keeps the inference capability below its rate limits.
type Worker struct {
	importService    ImportService
	importRepository ImportRepository
	signals          <-chan string
}

func NewWorker(importService ImportService, importRepository ImportRepository, signals <-chan string) *Worker {
	return &Worker{
		importService:    importService,
		importRepository: importRepository,
		signals:          signals,
	}
}

// Start launches the worker loop. Jobs left pending by an earlier shutdown
// are re-enqueued before new signals are served.
func (w *Worker) Start() {
	log.Println("menu import worker starting")

	go func() {
		w.sweepPending()

		for jobID := range w.signals {
			log.Printf("menu import worker processing job %s", jobID)
			if err := w.importService.Run(context.Background(), jobID); err != nil {
				log.Printf("menu import worker failed on job %s: %v", jobID, err)
			}
		}
	}()
}

func (w *Worker) sweepPending() {
	jobs, err := w.importRepository.GetPendingJobs(context.Background())
	if err != nil {
		log.Printf("menu import worker: could not list pending jobs: %v", err)
		return
	}

	for _, job := range jobs {
		log.Printf("menu import worker resuming pending job %s", job.ID)
		if err := w.importService.Run(context.Background(), job.ID.String()); err != nil {
			log.Printf("menu import worker failed on job %s: %v", job.ID, err)
		}
	}
}
