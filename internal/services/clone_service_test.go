package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
)

func TestCloneWeek(t *testing.T) {
	f := newFixture(t)

	mon := f.addTask("Mon", date(2025, 6, 9), constants.StatusApproved, minutes(60), f.worker.ID)
	f.addTask("Wed", date(2025, 6, 11), constants.StatusAssigned, nil, f.worker.ID)
	f.addTask("Sun", date(2025, 6, 15), constants.StatusDraft, nil)
	f.addTask("Earlier", date(2025, 6, 2), constants.StatusAssigned, nil, f.worker.ID)

	for i, title := range []string{"Strip beds", "Restock"} {
		if _, err := f.repos.Checklists.Create(f.ctx, mon.ID, title, i); err != nil {
			t.Fatalf("failed to create checklist item: %v", err)
		}
	}

	target := calendar.WeekOf(date(2025, 6, 18))
	svc := NewCloneService(f.repos)
	resp, err := svc.CloneWeek(f.ctx, f.company.ID, target.Start, target.End)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ClonedCount != 3 || len(resp.Tasks) != 3 {
		t.Fatalf("expected 3 clones, got %d", resp.ClonedCount)
	}

	byTitle := map[string]string{}
	for _, task := range resp.Tasks {
		if task.Status != constants.StatusPlanned {
			t.Errorf("expected PLANNED clone, got %s", task.Status)
		}
		byTitle[task.Title] = calendar.DayKey(*task.ScheduledDate)
	}
	want := map[string]string{"Mon": "2025-06-16", "Wed": "2025-06-18", "Sun": "2025-06-22"}
	for title, day := range want {
		if byTitle[title] != day {
			t.Errorf("expected %s on %s, got %s", title, day, byTitle[title])
		}
	}

	for _, task := range resp.Tasks {
		if task.Title != "Mon" {
			continue
		}
		if !task.HasWorker(f.worker.ID) {
			t.Errorf("expected clone to keep its assignee")
		}
		items, err := f.repos.Checklists.ListByTask(f.ctx, task.ID)
		if err != nil {
			t.Fatalf("failed to list checklist: %v", err)
		}
		if len(items) != 2 || items[0].Title != "Strip beds" || items[1].Title != "Restock" {
			t.Errorf("unexpected cloned checklist: %+v", items)
		}
		if *task.EstimatedDurationMinutes != 60 {
			t.Errorf("expected duration to carry over")
		}
	}

	// Cloning the same week again duplicates.
	resp, err = svc.CloneWeek(f.ctx, f.company.ID, target.Start, target.End)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ClonedCount != 3 {
		t.Fatalf("expected 3 clones on second run, got %d", resp.ClonedCount)
	}

	inTarget, err := f.repos.Tasks.Find(f.ctx, repository.TaskCriteria{
		CompanyID: f.company.ID,
		From:      &target.Start,
		To:        &target.End,
	})
	if err != nil {
		t.Fatalf("failed to list target week: %v", err)
	}
	if len(inTarget) != 6 {
		t.Fatalf("expected 6 tasks in target week, got %d", len(inTarget))
	}
}

func TestCloneWeek_EmptySourceAndErrors(t *testing.T) {
	f := newFixture(t)
	svc := NewCloneService(f.repos)

	resp, err := svc.CloneNextWeek(f.ctx, f.company.ID, date(2025, 6, 11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ClonedCount != 0 || resp.Tasks == nil {
		t.Fatalf("expected empty clone result, got %+v", resp)
	}

	_, err = svc.CloneWeek(f.ctx, "missing", date(2025, 6, 16), date(2025, 6, 22))
	if !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}

	_, err = svc.CloneWeek(f.ctx, f.company.ID, date(2025, 6, 22), date(2025, 6, 16))
	if !errors.Is(err, apperrors.ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestCloneNextWeek(t *testing.T) {
	f := newFixture(t)
	f.addTask("Fri", date(2025, 6, 13), constants.StatusAssigned, nil, f.worker.ID)

	resp, err := NewCloneService(f.repos).CloneNextWeek(f.ctx, f.company.ID, date(2025, 6, 11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ClonedCount != 1 || calendar.DayKey(*resp.Tasks[0].ScheduledDate) != "2025-06-20" {
		t.Fatalf("unexpected clone: %+v", resp)
	}
}

func TestCloneWeek_FailureLeavesNoPartialCopy(t *testing.T) {
	f := newFixture(t)

	mon := f.addTask("Mon", date(2025, 6, 9), constants.StatusAssigned, nil, f.worker.ID)
	wed := f.addTask("Wed", date(2025, 6, 11), constants.StatusAssigned, nil, f.worker.ID)
	f.addTask("Fri", date(2025, 6, 13), constants.StatusPlanned, nil)
	for _, item := range []struct {
		taskID, title string
	}{{mon.ID, "Strip beds"}, {wed.ID, "Restock"}, {wed.ID, "Faulty item"}} {
		if _, err := f.repos.Checklists.Create(f.ctx, item.taskID, item.title, 0); err != nil {
			t.Fatalf("failed to create checklist item: %v", err)
		}
	}

	// Fails the second checklist copy of the Wed task, after Mon is fully cloned.
	errDisk := errors.New("disk full")
	err := f.db.Callback().Create().Before("gorm:create").Register("fail_checklist_copy", func(tx *gorm.DB) {
		if item, ok := tx.Statement.Dest.(*model.ChecklistItem); ok && item.Title == "Faulty item" && item.TaskID != wed.ID {
			tx.AddError(errDisk)
		}
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}

	target := calendar.WeekOf(date(2025, 6, 18))
	_, err = NewCloneService(f.repos).CloneWeek(f.ctx, f.company.ID, target.Start, target.End)
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected injected failure, got %v", err)
	}

	inTarget, err := f.repos.Tasks.Find(f.ctx, repository.TaskCriteria{
		CompanyID: f.company.ID,
		From:      &target.Start,
		To:        &target.End,
	})
	if err != nil {
		t.Fatalf("failed to list target week: %v", err)
	}
	if len(inTarget) != 0 {
		t.Fatalf("expected no cloned tasks after failure, got %d", len(inTarget))
	}

	var items int64
	if err := f.db.Model(&model.ChecklistItem{}).Count(&items).Error; err != nil {
		t.Fatalf("failed to count checklist items: %v", err)
	}
	if items != 3 {
		t.Fatalf("expected only the 3 original checklist items, got %d", items)
	}
}
