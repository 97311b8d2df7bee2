package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
)

type weekCloner interface {
	CloneNextWeek(ctx context.Context, companyID string, now time.Time) (*dto.CloneWeekResponse, error)
}

// WeeklyCloneJob copies the current week into the next one for each company
// on a cron schedule. Cloning is not idempotent, so the schedule should fire
// once per week.
type WeeklyCloneJob struct {
	cronScheduler *cron.Cron
	schedule      string
	companyIDs    []string
	cloner        weekCloner
	timeout       time.Duration
	now           func() time.Time
	jobID         cron.EntryID
}

// NewWeeklyCloneJob takes a six-field schedule (seconds first), for example
// "0 0 18 * * SUN" for Sunday at 18:00.
func NewWeeklyCloneJob(cloner weekCloner, schedule string, companyIDs []string) *WeeklyCloneJob {
	return &WeeklyCloneJob{
		cronScheduler: cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		schedule:      schedule,
		companyIDs:    companyIDs,
		cloner:        cloner,
		timeout:       time.Minute,
		now:           time.Now,
	}
}

func (j *WeeklyCloneJob) Start() error {
	var err error
	j.jobID, err = j.cronScheduler.AddFunc(j.schedule, func() {
		log.Println("running scheduled week clone")
		j.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error scheduling week clone: %w", err)
	}

	j.cronScheduler.Start()
	log.Printf("week clone scheduled (%s) for %d company(ies)", j.schedule, len(j.companyIDs))
	return nil
}

// Stop halts the scheduler and waits for a running clone to finish or ctx to
// expire.
func (j *WeeklyCloneJob) Stop(ctx context.Context) {
	done := j.cronScheduler.Stop()
	select {
	case <-done.Done():
		log.Println("week clone scheduler stopped")
	case <-ctx.Done():
		log.Println("week clone scheduler stop timed out")
	}
}

// Run clones the next week for every configured company and returns the
// number of tasks created. A failing company is logged and skipped.
func (j *WeeklyCloneJob) Run(ctx context.Context) int {
	now := j.now()
	total := 0

	for _, companyID := range j.companyIDs {
		runCtx, cancel := context.WithTimeout(ctx, j.timeout)
		resp, err := j.cloner.CloneNextWeek(runCtx, companyID, now)
		cancel()

		if err != nil {
			log.Printf("week clone failed for company %s: %v", companyID, err)
			continue
		}
		total += resp.ClonedCount
	}

	return total
}
