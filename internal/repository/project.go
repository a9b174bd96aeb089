package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielolaitan/invoice-agent/gen/ent"
	"github.com/danielolaitan/invoice-agent/gen/ent/project"
	"github.com/danielolaitan/invoice-agent/internal/common"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/utils"
)

type ProjectRepository interface {
	Create(ctx context.Context, p entity.Project) (entity.Project, error)
	ListProjects(ctx context.Context) ([]entity.Project, error)
}

type projectRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProjectRepository(client *ent.Client, logger *slog.Logger) ProjectRepository {
	return &projectRepository{client: client, logger: logger}
}

func (r *projectRepository) Create(ctx context.Context, p entity.Project) (entity.Project, error) {
	builder := r.client.Project.Create().
		SetName(p.Name)
	if len(p.Codes) > 0 {
		builder = builder.SetCodes(p.Codes)
	}
	if len(p.Meta) > 0 {
		builder = builder.SetMeta(p.Meta)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return entity.Project{}, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
		}
		r.logger.Error("failed to create project", "name", p.Name, "error", err)
		return entity.Project{}, err
	}
	return utils.ToProject(row), nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.client.Project.Query().
		Order(project.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list projects", "error", err)
		return nil, err
	}

	result := make([]entity.Project, len(rows))
	for i, row := range rows {
		result[i] = utils.ToProject(row)
	}
	return result, nil
}
