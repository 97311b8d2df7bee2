package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	"github.com/salmanakber/mayaopps-sub001/internal/locks"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
)

// mockLocker records every key it hands out and can be forced busy.
type mockLocker struct {
	mu    sync.Mutex
	inner *locks.LocalLocker
	keys  []string
	busy  bool
}

func newMockLocker() *mockLocker {
	return &mockLocker{inner: locks.NewLocalLocker(5 * time.Second)}
}

func (m *mockLocker) Acquire(ctx context.Context, key string) (locks.Release, error) {
	m.mu.Lock()
	m.keys = append(m.keys, key)
	busy := m.busy
	m.mu.Unlock()

	if busy {
		return nil, locks.ErrLockBusy
	}
	return m.inner.Acquire(ctx, key)
}

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

// fixture is one company with a property requiring two skills and a cleaner
// who holds only the first of them.
type fixture struct {
	t        *testing.T
	ctx      context.Context
	db       *gorm.DB
	repos    *repository.Repositories
	company  *model.Company
	deep     *model.Skill
	laundry  *model.Skill
	property *model.Property
	worker   *model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)
	f := &fixture{t: t, ctx: context.Background(), db: db, repos: repository.New(db)}

	f.company = &model.Company{Name: "Sparkle Co"}
	f.must(f.repos.Companies.Create(f.ctx, f.company))

	f.deep = &model.Skill{CompanyID: f.company.ID, Name: "Deep Clean"}
	f.laundry = &model.Skill{CompanyID: f.company.ID, Name: "Laundry"}
	f.must(f.repos.Skills.Create(f.ctx, f.deep))
	f.must(f.repos.Skills.Create(f.ctx, f.laundry))

	f.property = &model.Property{
		CompanyID: f.company.ID,
		Name:      "Harbour View",
		SkillRequirements: []model.PropertySkill{
			{SkillID: f.deep.ID, IsRequired: true},
			{SkillID: f.laundry.ID, IsRequired: true},
		},
	}
	f.must(f.repos.Properties.Create(f.ctx, f.property))

	f.worker = f.addWorker(f.company.ID, "Ana", constants.RoleCleaner, f.deep.ID)
	return f
}

func (f *fixture) must(err error) {
	f.t.Helper()
	if err != nil {
		f.t.Fatalf("fixture: %v", err)
	}
}

func (f *fixture) addWorker(companyID, name string, role constants.Role, skillIDs ...string) *model.User {
	f.t.Helper()
	user := &model.User{CompanyID: companyID, Name: name, Role: role}
	for _, id := range skillIDs {
		user.Skills = append(user.Skills, model.WorkerSkill{SkillID: id, Proficiency: 2})
	}
	f.must(f.repos.Workers.Create(f.ctx, user))
	return user
}

func (f *fixture) addTask(title string, scheduled time.Time, status constants.TaskStatus, minutes *int, workers ...string) *model.Task {
	f.t.Helper()
	task := &model.Task{
		CompanyID:                f.company.ID,
		PropertyID:               f.property.ID,
		Title:                    title,
		ScheduledDate:            &scheduled,
		EstimatedDurationMinutes: minutes,
		Status:                   status,
	}
	for _, w := range workers {
		task.Assignees = append(task.Assignees, model.TaskAssignment{WorkerID: w})
	}
	if len(workers) > 0 {
		task.WorkerID = &workers[0]
	}
	f.must(f.repos.Tasks.Create(f.ctx, task))
	return task
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func minutes(n int) *int {
	return &n
}
