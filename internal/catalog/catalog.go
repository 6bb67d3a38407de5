// Package catalog holds the static content served by the API: questionnaire
// items, habit-building journeys and the mental-health plan. The content is
// embedded YAML parsed once at startup.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

type Option struct {
	Value int    `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type Question struct {
	ID   int    `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

type Questionnaire struct {
	Type         string     `yaml:"type" json:"type"`
	Title        string     `yaml:"title" json:"title"`
	Instructions string     `yaml:"instructions" json:"instructions"`
	Options      []Option   `yaml:"-" json:"options"`
	Questions    []Question `yaml:"questions" json:"questions"`
}

type Journey struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tasks       []string `yaml:"tasks" json:"tasks"`
}

type Plan struct {
	DailyHabits       []string          `yaml:"daily_habits" json:"daily_habits"`
	WeeklyGoals       []string          `yaml:"weekly_goals" json:"weekly_goals"`
	EmergencyContacts map[string]string `yaml:"emergency_contacts" json:"emergency_contacts"`
}

type Catalog struct {
	questionnaires map[string]*Questionnaire
	journeys       []Journey
	plan           Plan
}

// Load parses the embedded content.
func Load() (*Catalog, error) {
	return LoadFS(embedded, "data")
}

// LoadFS parses questionnaires.yaml, journeys.yaml and plan.yaml from dir in fsys.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	var q struct {
		Options        []Option        `yaml:"options"`
		Questionnaires []Questionnaire `yaml:"questionnaires"`
	}
	if err := decode(fsys, dir+"/questionnaires.yaml", &q); err != nil {
		return nil, err
	}

	var j struct {
		Journeys []Journey `yaml:"journeys"`
	}
	if err := decode(fsys, dir+"/journeys.yaml", &j); err != nil {
		return nil, err
	}

	c := &Catalog{questionnaires: make(map[string]*Questionnaire, len(q.Questionnaires))}
	if err := decode(fsys, dir+"/plan.yaml", &c.plan); err != nil {
		return nil, err
	}

	for i := range q.Questionnaires {
		qn := q.Questionnaires[i]
		qn.Options = q.Options
		if err := checkQuestions(&qn); err != nil {
			return nil, err
		}
		c.questionnaires[qn.Type] = &qn
	}

	seen := make(map[string]bool, len(j.Journeys))
	for _, jr := range j.Journeys {
		if jr.ID == "" || seen[jr.ID] {
			return nil, fmt.Errorf("journey id %q is empty or duplicated", jr.ID)
		}
		seen[jr.ID] = true
	}
	c.journeys = j.Journeys

	return c, nil
}

func decode(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// checkQuestions requires ids 1..n in order.
func checkQuestions(q *Questionnaire) error {
	for i, item := range q.Questions {
		if item.ID != i+1 {
			return fmt.Errorf("%s: question %d has id %d", q.Type, i+1, item.ID)
		}
	}
	return nil
}

// Questionnaire returns the item texts for an assessment type such as "DASS-21".
func (c *Catalog) Questionnaire(assessmentType string) (*Questionnaire, bool) {
	q, ok := c.questionnaires[assessmentType]
	return q, ok
}

func (c *Catalog) Journeys() []Journey {
	return append([]Journey(nil), c.journeys...)
}

func (c *Catalog) Journey(id string) (*Journey, bool) {
	for i := range c.journeys {
		if c.journeys[i].ID == id {
			j := c.journeys[i]
			return &j, true
		}
	}
	return nil, false
}

func (c *Catalog) Plan() Plan {
	return c.plan
}
