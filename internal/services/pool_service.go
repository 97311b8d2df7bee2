package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
)

var ErrPoolClosed = errors.New("validation pool is shut down")

type validationJob struct {
	ctx     context.Context
	input   AssignmentInput
	result  *dto.BatchValidationResult
	pending *sync.WaitGroup
}

// PoolService validates batches of proposals on a fixed set of workers.
type PoolService struct {
	queue       chan validationJob
	wg          sync.WaitGroup
	mu          sync.RWMutex
	closed      bool
	assignments *AssignmentService
}

func NewPoolService(assignments *AssignmentService, workers int, queueSize int) *PoolService {
	p := &PoolService{
		queue:       make(chan validationJob, queueSize),
		assignments: assignments,
	}

	for i := 1; i <= workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *PoolService) worker(workerID int) {
	defer p.wg.Done()

	log.Printf("validation worker %d started", workerID)

	for job := range p.queue {
		p.handleJob(job)
	}

	log.Printf("validation worker %d stopped", workerID)
}

func (p *PoolService) handleJob(job validationJob) {
	defer job.pending.Done()

	job.result.TaskID = job.input.TaskID
	job.result.WorkerID = job.input.WorkerID

	if err := job.ctx.Err(); err != nil {
		job.result.Error = err.Error()
		job.result.Status = contextStatus(err)
		return
	}

	warnings, err := p.assignments.ValidateAssignment(job.ctx, job.input)
	if err != nil {
		job.result.Error = err.Error()
		job.result.Status = apperrors.StatusCode(err)
		return
	}
	job.result.Warnings = warnings
}

// ValidateBatch returns one result per input, in input order. A hard error on
// one proposal is reported in its result and does not fail the batch.
func (p *PoolService) ValidateBatch(ctx context.Context, inputs []AssignmentInput) ([]dto.BatchValidationResult, error) {
	results := make([]dto.BatchValidationResult, len(inputs))
	var pending sync.WaitGroup

	for i, in := range inputs {
		pending.Add(1)
		job := validationJob{
			ctx:     ctx,
			input:   in,
			result:  &results[i],
			pending: &pending,
		}
		if err := p.enqueue(ctx, job); err != nil {
			pending.Done()
			pending.Wait()
			return nil, err
		}
	}

	pending.Wait()
	return results, nil
}

// contextStatus is the status reported for a job whose request went away
// before it ran.
func contextStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusRequestTimeout
}

func (p *PoolService) enqueue(ctx context.Context, job validationJob) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.queue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *PoolService) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("validation pool shut down cleanly")
	case <-ctx.Done():
		log.Println("validation pool shutdown timed out")
	}
}
