package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nmorales-dev/portfolio-backend/models"
)

var seedCategories = []string{"Frontend", "Backend", "Fullstack", "Tools"}

type seedTechnology struct {
	name     string
	iconURL  string
	category string
}

var seedTechnologies = []seedTechnology{
	{"React", "SiReact", "Frontend"},
	{"Next.js", "SiNextdotjs", "Frontend"},
	{"Tailwind CSS", "SiTailwindcss", "Frontend"},
	{"Typescript", "SiTypescript", "Frontend"},
	{"Javascript", "SiJavascript", "Frontend"},
	{"Node.js", "SiNodedotjs", "Backend"},
	{"NestJS", "SiNestjs", "Backend"},
	{"Express", "SiExpress", "Backend"},
	{"HTML5", "SiHtml5", "Frontend"},
	{"CSS3", "SiCss3", "Frontend"},
	{"MongoDB", "SiMongodb", "Backend"},
	{"PostgreSQL", "SiPostgresql", "Backend"},
	{"MySQL", "SiMysql", "Backend"},
	{"Docker", "SiDocker", "Tools"},
	{"Git", "SiGit", "Tools"},
	{"GitHub", "SiGithub", "Tools"},
	{"PHP", "SiPhp", "Backend"},
	{"Laravel", "SiLaravel", "Backend"},
	{"Vite", "SiVite", "Tools"},
	{"Livewire", "SiLivewire", "Fullstack"},
}

// Seed inserts the initial category and technology catalog. It is a no-op
// unless both collections are empty, so it is safe to run on every startup.
func Seed(ctx context.Context, db Database) error {
	categoryCount, err := db.CategoryRepo().Count(ctx)
	if err != nil {
		return err
	}
	technologyCount, err := db.TechnologyRepo().Count(ctx)
	if err != nil {
		return err
	}
	if !needsSeed(categoryCount, technologyCount) {
		log.Info().Msg("Database already contains data, seeding skipped")
		return nil
	}

	log.Info().Msg("Seeding initial catalog data...")

	categoryByName := make(map[string]models.Category, len(seedCategories))
	for _, name := range seedCategories {
		category := models.Category{Name: name}
		if err := db.CategoryRepo().Add(ctx, &category); err != nil {
			return err
		}
		categoryByName[name] = category
	}

	now := time.Now().UTC()
	for _, seed := range seedTechnologies {
		category, ok := categoryByName[seed.category]
		if !ok {
			continue
		}
		technology := models.Technology{
			Name:      seed.name,
			IconURL:   seed.iconURL,
			Category:  category.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.TechnologyRepo().Add(ctx, &technology); err != nil {
			return err
		}
	}

	log.Info().
		Int("categories", len(seedCategories)).
		Int("technologies", len(seedTechnologies)).
		Msg("Seeding completed")
	return nil
}

func needsSeed(categoryCount, technologyCount int64) bool {
	return categoryCount == 0 && technologyCount == 0
}
