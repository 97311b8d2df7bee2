package model

// All lists every table for AutoMigrate, parents before children.
func All() []interface{} {
	return []interface{}{
		&Company{},
		&Skill{},
		&User{},
		&WorkerSkill{},
		&Availability{},
		&LeaveRequest{},
		&Property{},
		&PropertySkill{},
		&Task{},
		&TaskAssignment{},
		&ChecklistItem{},
	}
}
