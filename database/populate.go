package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmorales-dev/portfolio-backend/models"
)

// PopulatedProject is a Project with its relations dereferenced. The outer
// fields shadow the id slices of the embedded Project when marshaled.
type PopulatedProject struct {
	models.Project
	Technologies []models.Technology `json:"technologies"`
	Category     *models.Category    `json:"category,omitempty"`
	Images       []models.Image      `json:"images"`
}

// Populator swaps relation ids for the referenced documents. It issues one
// batched lookup per related collection regardless of page size.
type Populator struct {
	technologies *TechnologyRepo
	categories   *CategoryRepo
	images       *ImageRepo
}

func NewPopulator(technologies *TechnologyRepo, categories *CategoryRepo, images *ImageRepo) *Populator {
	return &Populator{
		technologies: technologies,
		categories:   categories,
		images:       images,
	}
}

// PopulateOne dereferences a single project's relations.
func (p *Populator) PopulateOne(ctx context.Context, project models.Project) (*PopulatedProject, error) {
	populated, err := p.PopulateMany(ctx, []models.Project{project})
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

// PopulateMany dereferences the relations of every project in the page.
// Dangling references are dropped; referential integrity is maintained by
// the seeding/admin path, not checked here.
func (p *Populator) PopulateMany(ctx context.Context, projects []models.Project) ([]PopulatedProject, error) {
	populated := make([]PopulatedProject, 0, len(projects))
	if len(projects) == 0 {
		return populated, nil
	}

	techIDs := make([]primitive.ObjectID, 0)
	categoryIDs := make([]primitive.ObjectID, 0)
	imageIDs := make([]primitive.ObjectID, 0)
	for _, project := range projects {
		techIDs = appendUnique(techIDs, project.Technologies...)
		categoryIDs = appendUnique(categoryIDs, project.Category)
		imageIDs = appendUnique(imageIDs, project.Images...)
	}

	technologies, err := p.technologies.FindByIDs(ctx, techIDs)
	if err != nil {
		return nil, err
	}
	categories, err := p.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	images, err := p.images.FindByIDs(ctx, imageIDs)
	if err != nil {
		return nil, err
	}

	techByID := make(map[primitive.ObjectID]models.Technology, len(technologies))
	for _, t := range technologies {
		techByID[t.ID] = t
	}
	categoryByID := make(map[primitive.ObjectID]models.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}
	imageByID := make(map[primitive.ObjectID]models.Image, len(images))
	for _, i := range images {
		imageByID[i.ID] = i
	}

	for _, project := range projects {
		entry := PopulatedProject{
			Project:      project,
			Technologies: []models.Technology{},
			Images:       []models.Image{},
		}
		for _, id := range project.Technologies {
			if t, ok := techByID[id]; ok {
				entry.Technologies = append(entry.Technologies, t)
			}
		}
		if c, ok := categoryByID[project.Category]; ok {
			entry.Category = &c
		}
		for _, id := range project.Images {
			if i, ok := imageByID[id]; ok {
				entry.Images = append(entry.Images, i)
			}
		}
		populated = append(populated, entry)
	}
	return populated, nil
}

func appendUnique(ids []primitive.ObjectID, more ...primitive.ObjectID) []primitive.ObjectID {
	for _, id := range more {
		if id.IsZero() {
			continue
		}
		found := false
		for _, existing := range ids {
			if existing == id {
				found = true
				break
			}
		}
		if !found {
			ids = append(ids, id)
		}
	}
	return ids
}
