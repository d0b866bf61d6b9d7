package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hopeactionjeunesse/hope-site/internal/config"
	dbpkg "github.com/hopeactionjeunesse/hope-site/internal/db"
	infraRepo "github.com/hopeactionjeunesse/hope-site/internal/infra/repository"
	"github.com/hopeactionjeunesse/hope-site/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	cfg.ConfigureLogging()

	ctx := context.Background()
	handle := dbpkg.New(cfg)
	defer handle.Close()

	if _, err := handle.Get(ctx); err != nil {
		logrus.WithError(err).Fatal("database unavailable")
	}

	logrus.Info("🌱 seeding database")
	res, err := seed.NewSeeder(
		infraRepo.NewServiceGormRepository(handle),
		infraRepo.NewProjectGormRepository(handle),
		infraRepo.NewTeamMemberGormRepository(handle),
	).Run(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("seed failed")
	}

	logrus.WithFields(logrus.Fields{
		"services":     res.Services,
		"projects":     res.Projects,
		"team_members": res.TeamMembers,
	}).Info("🎉 database seeded")
}
