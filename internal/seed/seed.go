package seed

import (
	"context"
	_ "embed"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"womenhub/internal/models"
	"womenhub/internal/repository"
)

//go:embed seed.yaml
var sampleData []byte

type sampleJob struct {
	Title        string `yaml:"title"`
	Company      string `yaml:"company"`
	Location     string `yaml:"location"`
	JobType      string `yaml:"jobType"`
	SalaryRange  string `yaml:"salaryRange"`
	Description  string `yaml:"description"`
	Requirements string `yaml:"requirements"`
	ApplyLink    string `yaml:"applyLink"`
}

type sampleMentor struct {
	Name           string  `yaml:"name"`
	Email          string  `yaml:"email"`
	Expertise      string  `yaml:"expertise"`
	Bio            string  `yaml:"bio"`
	LinkedInURL    string  `yaml:"linkedinUrl"`
	AvailableSlots int     `yaml:"availableSlots"`
	Rating         float64 `yaml:"rating"`
	TotalMentees   int     `yaml:"totalMentees"`
}

type Data struct {
	Jobs    []sampleJob    `yaml:"jobs"`
	Mentors []sampleMentor `yaml:"mentors"`
}

func Load() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(sampleData, &d); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &d, nil
}

type Result struct {
	Jobs    int
	Mentors int
}

// Run inserts the sample jobs when the jobs table is empty and the sample
// mentors whose email is not registered yet.
func Run(ctx context.Context, repo *repository.Repository, logger *zap.Logger) (Result, error) {
	data, err := Load()
	if err != nil {
		return Result{}, err
	}

	var res Result

	count, err := repo.Job.Count(ctx)
	if err != nil {
		return res, err
	}
	if count == 0 {
		for _, j := range data.Jobs {
			if _, err := repo.Job.Insert(ctx, models.NewJob{
				Title:        j.Title,
				Company:      j.Company,
				Location:     j.Location,
				JobType:      j.JobType,
				SalaryRange:  j.SalaryRange,
				Description:  j.Description,
				Requirements: j.Requirements,
				ApplyLink:    j.ApplyLink,
			}); err != nil {
				return res, fmt.Errorf("seed job %q: %w", j.Title, err)
			}
			res.Jobs++
		}
	} else {
		logger.Info("jobs table not empty, skipping sample jobs", zap.Int("count", count))
	}

	for _, m := range data.Mentors {
		id, err := repo.Mentor.Insert(ctx, models.Mentor{
			Name:           m.Name,
			Email:          m.Email,
			Expertise:      m.Expertise,
			Bio:            m.Bio,
			LinkedInURL:    m.LinkedInURL,
			AvailableSlots: m.AvailableSlots,
			Rating:         m.Rating,
			TotalMentees:   m.TotalMentees,
		})
		if err != nil {
			return res, fmt.Errorf("seed mentor %q: %w", m.Email, err)
		}
		if id != 0 {
			res.Mentors++
		}
	}

	logger.Info("seed complete", zap.Int("jobs", res.Jobs), zap.Int("mentors", res.Mentors))
	return res, nil
}
