// Package seed loads the association's initial public content.
package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
)

type Seeder struct {
	services content.ServiceRepository
	projects content.ProjectRepository
	team     content.TeamMemberRepository
}

func NewSeeder(
	services content.ServiceRepository,
	projects content.ProjectRepository,
	team content.TeamMemberRepository,
) *Seeder {
	return &Seeder{services: services, projects: projects, team: team}
}

// Result counts the rows inserted per table. A table that already holds
// rows is skipped.
type Result struct {
	Services    int
	Projects    int
	TeamMembers int
}

func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	existingServices, err := s.services.ListAll(ctx)
	if err != nil {
		return res, err
	}
	if len(existingServices) == 0 {
		for _, svc := range initialServices() {
			if err := s.services.Create(ctx, &svc); err != nil {
				return res, fmt.Errorf("seed service %q: %w", svc.Title, err)
			}
			res.Services++
		}
	} else {
		logrus.Info("[seed] services already present, skipping")
	}

	existingProjects, err := s.projects.ListAll(ctx)
	if err != nil {
		return res, err
	}
	if len(existingProjects) == 0 {
		for _, p := range initialProjects() {
			if err := s.projects.Create(ctx, &p); err != nil {
				return res, fmt.Errorf("seed project %q: %w", p.Title, err)
			}
			res.Projects++
		}
	} else {
		logrus.Info("[seed] projects already present, skipping")
	}

	existingTeam, err := s.team.ListAll(ctx)
	if err != nil {
		return res, err
	}
	if len(existingTeam) == 0 {
		for _, m := range initialTeamMembers() {
			if err := s.team.Create(ctx, &m); err != nil {
				return res, fmt.Errorf("seed team member %q: %w", m.Name, err)
			}
			res.TeamMembers++
		}
	} else {
		logrus.Info("[seed] team members already present, skipping")
	}

	return res, nil
}
