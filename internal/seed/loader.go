package seed

import (
	"context"
	"log"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
)

type Summary struct {
	Companies      int `json:"companies"`
	Skills         int `json:"skills"`
	Users          int `json:"users"`
	Properties     int `json:"properties"`
	Tasks          int `json:"tasks"`
	ChecklistItems int `json:"checklist_items"`
	// CompanyIDs maps fixture company keys (or names when no key is set) to
	// the generated ids.
	CompanyIDs map[string]string `json:"company_ids"`
}

// Load writes the fixture in one transaction. Nothing is stored if any
// record fails.
func Load(ctx context.Context, repos *repository.Repositories, f *Fixture) (*Summary, error) {
	summary := &Summary{CompanyIDs: map[string]string{}}

	err := repos.Transaction(ctx, func(tx *repository.Repositories) error {
		for i := range f.Companies {
			if err := loadCompany(ctx, tx, &f.Companies[i], summary); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("seed: loaded %d company(ies), %d user(s), %d task(s)", summary.Companies, summary.Users, summary.Tasks)
	return summary, nil
}

func loadCompany(ctx context.Context, tx *repository.Repositories, c *CompanyFixture, summary *Summary) error {
	company := &model.Company{Name: c.Name}
	if err := tx.Companies.Create(ctx, company); err != nil {
		return err
	}
	key := c.Key
	if key == "" {
		key = c.Name
	}
	summary.CompanyIDs[key] = company.ID
	summary.Companies++

	skillIDs := make(map[string]string, len(c.Skills))
	for _, s := range c.Skills {
		skill := &model.Skill{CompanyID: company.ID, Name: s.Name, Category: s.Category}
		if err := tx.Skills.Create(ctx, skill); err != nil {
			return err
		}
		skillIDs[s.Key] = skill.ID
		summary.Skills++
	}

	userIDs := make(map[string]string, len(c.Users))
	for _, u := range c.Users {
		user, err := buildUser(company.ID, u, skillIDs)
		if err != nil {
			return err
		}
		if err := tx.Workers.Create(ctx, user); err != nil {
			return err
		}
		userIDs[u.Key] = user.ID
		summary.Users++
	}

	propertyIDs := make(map[string]string, len(c.Properties))
	for _, p := range c.Properties {
		property := &model.Property{CompanyID: company.ID, Name: p.Name, Address: p.Address}
		for _, s := range p.Requires {
			property.SkillRequirements = append(property.SkillRequirements, model.PropertySkill{SkillID: skillIDs[s], IsRequired: true})
		}
		for _, s := range p.Prefers {
			property.SkillRequirements = append(property.SkillRequirements, model.PropertySkill{SkillID: skillIDs[s], IsRequired: false})
		}
		if err := tx.Properties.Create(ctx, property); err != nil {
			return err
		}
		propertyIDs[p.Key] = property.ID
		summary.Properties++
	}

	for _, t := range c.Tasks {
		task, err := buildTask(company.ID, t, propertyIDs, userIDs)
		if err != nil {
			return err
		}
		if err := tx.Tasks.Create(ctx, task); err != nil {
			return err
		}
		summary.Tasks++

		for order, title := range t.Checklist {
			if _, err := tx.Checklists.Create(ctx, task.ID, title, order); err != nil {
				return err
			}
			summary.ChecklistItems++
		}
	}
	return nil
}

func buildUser(companyID string, u UserFixture, skillIDs map[string]string) (*model.User, error) {
	user := &model.User{
		CompanyID:       companyID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		MaxHoursPerWeek: u.MaxHoursPerWeek,
	}
	for _, s := range u.Skills {
		proficiency := s.Proficiency
		if proficiency == 0 {
			proficiency = 1
		}
		user.Skills = append(user.Skills, model.WorkerSkill{SkillID: skillIDs[s.Skill], Proficiency: proficiency})
	}
	for _, a := range u.Availability {
		available := a.Available == nil || *a.Available
		user.Availability = append(user.Availability, model.Availability{
			DayOfWeek:   a.Day,
			StartTime:   a.Start,
			EndTime:     a.End,
			IsAvailable: available,
		})
	}
	for _, l := range u.Leave {
		start, err := calendar.ParseDate(l.Start)
		if err != nil {
			return nil, err
		}
		end, err := calendar.ParseDate(l.End)
		if err != nil {
			return nil, err
		}
		status := l.Status
		if status == "" {
			status = model.LeaveApproved
		}
		user.Leave = append(user.Leave, model.LeaveRequest{StartDate: start, EndDate: end, Status: status})
	}
	return user, nil
}

func buildTask(companyID string, t TaskFixture, propertyIDs, userIDs map[string]string) (*model.Task, error) {
	scheduled, err := calendar.ParseOptionalDate(t.ScheduledDate)
	if err != nil {
		return nil, err
	}
	status := t.Status
	if status == "" {
		status = constants.StatusPlanned
	}

	task := &model.Task{
		CompanyID:                companyID,
		PropertyID:               propertyIDs[t.Property],
		Title:                    t.Title,
		Description:              t.Description,
		ScheduledDate:            scheduled,
		EstimatedDurationMinutes: t.DurationMinutes,
		Status:                   status,
	}
	for i, key := range t.Workers {
		id := userIDs[key]
		if i == 0 {
			task.WorkerID = &id
		}
		task.Assignees = append(task.Assignees, model.TaskAssignment{WorkerID: id})
	}
	return task, nil
}
