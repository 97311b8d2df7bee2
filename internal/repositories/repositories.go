package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every store over one connection or transaction.
type Repositories struct {
	db         *gorm.DB
	Companies  *CompanyRepository
	Tasks      *TaskRepository
	Workers    *WorkerRepository
	Skills     *SkillRepository
	Properties *PropertyRepository
	Checklists *ChecklistRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		Companies:  NewCompanyRepository(db),
		Tasks:      NewTaskRepository(db),
		Workers:    NewWorkerRepository(db),
		Skills:     NewSkillRepository(db),
		Properties: NewPropertyRepository(db),
		Checklists: NewChecklistRepository(db),
	}
}

// Transaction runs fn against repositories bound to a single transaction.
// Any error returned by fn rolls back every write made through tx.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
