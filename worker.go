package dstar

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Request is one independent planning job for PlanAll.
type Request struct {
	ID     string
	Config Config
}

// Response is the outcome of a Request.
type Response struct {
	ID    string
	Path  []Cell
	Stats Stats
	Err   error
}

// PlanAll plans every request on its own Planner using a pool of workers and
// returns the responses in request order. Requests not started before ctx is
// done carry ctx.Err(). Requests without an ID get a random one.
func PlanAll(ctx context.Context, requests []Request, options ...Option) []Response {
	opts := applyOptions(options)
	responses := make([]Response, len(requests))
	for i, request := range requests {
		responses[i].ID = request.ID
		if responses[i].ID == "" {
			responses[i].ID = uuid.NewString()
		}
	}

	taskChannel := make(chan int)
	var waitGroup sync.WaitGroup
	for i := 0; i < min(opts.NumberOfWorkers, len(requests)); i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for index := range taskChannel {
				if err := ctx.Err(); err != nil {
					responses[index].Err = err
					continue
				}
				planOne(&responses[index], requests[index].Config, options)
			}
		}()
	}

	next := 0
feed:
	for ; next < len(requests); next++ {
		select {
		case <-ctx.Done():
			break feed
		case taskChannel <- next:
		}
	}
	close(taskChannel)
	waitGroup.Wait()

	for ; next < len(requests); next++ {
		responses[next].Err = ctx.Err()
	}
	return responses
}

func planOne(response *Response, cfg Config, options []Option) {
	planner, err := New(cfg, options...)
	if err != nil {
		response.Err = err
		return
	}
	response.Path, response.Err = planner.Plan()
	response.Stats = planner.Stats()
}
