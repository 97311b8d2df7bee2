package seed

import (
	"context"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(model.All()...)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile("testdata/rota.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	repos := repository.New(setupTestDB(t))
	summary, err := Load(ctx, repos, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Companies != 1 || summary.Skills != 3 || summary.Users != 3 || summary.Properties != 2 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.Tasks != 3 || summary.ChecklistItems != 4 {
		t.Errorf("unexpected task counts: %+v", summary)
	}

	companyID := summary.CompanyIDs["sparkle"]
	workers, err := repos.Workers.ListWorkers(ctx, companyID)
	if err != nil {
		t.Fatalf("failed to list workers: %v", err)
	}
	if len(workers) != 2 {
		t.Fatalf("expected 2 cleaners, got %d", len(workers))
	}

	var ana model.User
	for _, w := range workers {
		if w.Name == "Ana Lopes" {
			ana = w
		}
	}
	availability, err := repos.Workers.Availability(ctx, ana.ID)
	if err != nil {
		t.Fatalf("failed to load availability: %v", err)
	}
	unavailable := 0
	for _, a := range availability {
		if !a.IsAvailable {
			unavailable++
		}
	}
	if len(availability) != 3 || unavailable != 1 {
		t.Errorf("expected 3 windows with one unavailable, got %+v", availability)
	}

	tasks, err := repos.Tasks.Find(ctx, repository.TaskCriteria{CompanyID: companyID, WorkerID: ana.ID})
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected Ana on 2 tasks, got %d", len(tasks))
	}
	if tasks[1].Status != constants.StatusAssigned || len(tasks[1].WorkerIDs()) != 2 {
		t.Errorf("expected shared Mill Loft task, got %+v", tasks[1])
	}
	if calendar.DayKey(*tasks[1].ScheduledDate) != "2025-06-11" {
		t.Errorf("unexpected date %s", tasks[1].ScheduledDate)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "  ", "empty"},
		{"no companies", "companies: []", "no companies"},
		{"bad yaml", "companies: [", "decode"},
		{"unknown role", `
companies:
  - name: Co
    users:
      - key: u
        name: U
        role: JANITOR`, "unknown role"},
		{"unknown skill", `
companies:
  - name: Co
    properties:
      - key: p
        name: P
        requires: [ghost]`, "unknown skill"},
		{"unknown worker", `
companies:
  - name: Co
    properties:
      - key: p
        name: P
    tasks:
      - title: T
        property: p
        workers: [ghost]`, "unknown worker"},
		{"bad date", `
companies:
  - name: Co
    properties:
      - key: p
        name: P
    tasks:
      - title: T
        property: p
        scheduled_date: tomorrow`, "scheduled_date"},
		{"duplicate key", `
companies:
  - name: Co
    skills:
      - {key: s, name: A}
      - {key: s, name: B}`, "duplicate skill"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repos := repository.New(db)

	f := &Fixture{Companies: []CompanyFixture{
		{Name: "First"},
		{Name: "Second", Users: []UserFixture{{
			Key:   "u",
			Name:  "U",
			Role:  constants.RoleCleaner,
			Leave: []LeaveFixture{{Start: "not-a-date", End: "2025-06-01"}},
		}}},
	}}

	if _, err := Load(ctx, repos, f); err == nil {
		t.Fatal("expected load to fail")
	}

	var count int64
	if err := db.Model(&model.Company{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count companies: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback, found %d companies", count)
	}
}
