package seed

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	"github.com/salmanakber/mayaopps-sub001/internal/constants"
	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

// Fixture is a YAML rota document. Records inside a company refer to each
// other by key; ids are generated on load.
type Fixture struct {
	Companies []CompanyFixture `yaml:"companies"`
}

type CompanyFixture struct {
	Key        string            `yaml:"key"`
	Name       string            `yaml:"name"`
	Skills     []SkillFixture    `yaml:"skills"`
	Users      []UserFixture     `yaml:"users"`
	Properties []PropertyFixture `yaml:"properties"`
	Tasks      []TaskFixture     `yaml:"tasks"`
}

type SkillFixture struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type UserFixture struct {
	Key             string                `yaml:"key"`
	Name            string                `yaml:"name"`
	Email           string                `yaml:"email"`
	Role            constants.Role        `yaml:"role"`
	MaxHoursPerWeek *float64              `yaml:"max_hours_per_week"`
	Skills          []WorkerSkillFixture  `yaml:"skills"`
	Availability    []AvailabilityFixture `yaml:"availability"`
	Leave           []LeaveFixture        `yaml:"leave"`
}

type WorkerSkillFixture struct {
	Skill       string `yaml:"skill"`
	Proficiency int    `yaml:"proficiency"`
}

// AvailabilityFixture uses time.Weekday numbering (0 = Sunday).
type AvailabilityFixture struct {
	Day       int    `yaml:"day"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	Available *bool  `yaml:"available"`
}

type LeaveFixture struct {
	Start  string            `yaml:"start"`
	End    string            `yaml:"end"`
	Status model.LeaveStatus `yaml:"status"`
}

type PropertyFixture struct {
	Key      string   `yaml:"key"`
	Name     string   `yaml:"name"`
	Address  string   `yaml:"address"`
	Requires []string `yaml:"requires"`
	Prefers  []string `yaml:"prefers"`
}

type TaskFixture struct {
	Title           string               `yaml:"title"`
	Description     string               `yaml:"description"`
	Property        string               `yaml:"property"`
	ScheduledDate   string               `yaml:"scheduled_date"`
	DurationMinutes *int                 `yaml:"duration_minutes"`
	Status          constants.TaskStatus `yaml:"status"`
	Workers         []string             `yaml:"workers"`
	Checklist       []string             `yaml:"checklist"`
}

// Parse decodes and checks a fixture document.
func Parse(data []byte) (*Fixture, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("seed: fixture is empty")
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: decode fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return f, nil
}

// Validate checks required fields, enumerations, dates and that every key
// reference resolves within its company.
func (f *Fixture) Validate() error {
	if len(f.Companies) == 0 {
		return fmt.Errorf("seed: no companies defined")
	}
	for i, c := range f.Companies {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("seed: companies[%d]: name is required", i)
		}
		if err := c.validate(); err != nil {
			return fmt.Errorf("seed: company %q: %w", c.Name, err)
		}
	}
	return nil
}

func (c *CompanyFixture) validate() error {
	skills, err := keySet("skill", len(c.Skills), func(i int) (string, string) { return c.Skills[i].Key, c.Skills[i].Name })
	if err != nil {
		return err
	}
	users, err := keySet("user", len(c.Users), func(i int) (string, string) { return c.Users[i].Key, c.Users[i].Name })
	if err != nil {
		return err
	}
	properties, err := keySet("property", len(c.Properties), func(i int) (string, string) { return c.Properties[i].Key, c.Properties[i].Name })
	if err != nil {
		return err
	}

	for _, u := range c.Users {
		if !u.Role.Valid() {
			return fmt.Errorf("user %q: unknown role %q", u.Key, u.Role)
		}
		for _, s := range u.Skills {
			if !skills[s.Skill] {
				return fmt.Errorf("user %q: unknown skill %q", u.Key, s.Skill)
			}
		}
		for _, a := range u.Availability {
			if a.Day < 0 || a.Day > 6 {
				return fmt.Errorf("user %q: day %d out of range", u.Key, a.Day)
			}
			if _, ok := calendar.ParseClock(a.Start); !ok {
				return fmt.Errorf("user %q: bad start time %q", u.Key, a.Start)
			}
			if _, ok := calendar.ParseClock(a.End); !ok {
				return fmt.Errorf("user %q: bad end time %q", u.Key, a.End)
			}
		}
		for _, l := range u.Leave {
			if _, err := calendar.ParseDate(l.Start); err != nil {
				return fmt.Errorf("user %q: leave start: %w", u.Key, err)
			}
			if _, err := calendar.ParseDate(l.End); err != nil {
				return fmt.Errorf("user %q: leave end: %w", u.Key, err)
			}
		}
	}

	for _, p := range c.Properties {
		for _, s := range append(append([]string{}, p.Requires...), p.Prefers...) {
			if !skills[s] {
				return fmt.Errorf("property %q: unknown skill %q", p.Key, s)
			}
		}
	}

	for i, t := range c.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("tasks[%d]: title is required", i)
		}
		if !properties[t.Property] {
			return fmt.Errorf("task %q: unknown property %q", t.Title, t.Property)
		}
		if t.Status != "" && !t.Status.Valid() {
			return fmt.Errorf("task %q: unknown status %q", t.Title, t.Status)
		}
		if t.ScheduledDate != "" {
			if _, err := calendar.ParseDate(t.ScheduledDate); err != nil {
				return fmt.Errorf("task %q: scheduled_date: %w", t.Title, err)
			}
		}
		for _, w := range t.Workers {
			if !users[w] {
				return fmt.Errorf("task %q: unknown worker %q", t.Title, w)
			}
		}
	}
	return nil
}

func keySet(kind string, n int, get func(int) (string, string)) (map[string]bool, error) {
	keys := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		key, name := get(i)
		if key == "" || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%s[%d]: key and name are required", kind, i)
		}
		if keys[key] {
			return nil, fmt.Errorf("duplicate %s key %q", kind, key)
		}
		keys[key] = true
	}
	return keys, nil
}
