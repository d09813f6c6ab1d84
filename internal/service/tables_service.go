package service

import (
	"context"
	"slices"

	"womenhub/internal/database"
	"womenhub/internal/models"
	"womenhub/internal/repository"
)

type TablesService interface {
	Summary(ctx context.Context) (models.TablesReport, error)
	Init(ctx context.Context) ([]models.TableStatus, error)
	Ping(ctx context.Context) error
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

// Summary lists the tables present and which of the platform tables are
// missing.
func (t *tablesService) Summary(ctx context.Context) (models.TablesReport, error) {
	names, err := t.tablesRepo.ListTables(ctx)
	if err != nil {
		return models.TablesReport{}, err
	}

	missing := []string{}
	for _, want := range database.TableNames() {
		if !slices.Contains(names, want) {
			missing = append(missing, want)
		}
	}

	if names == nil {
		names = []string{}
	}
	return models.TablesReport{Count: len(names), Names: names, Missing: missing}, nil
}

func (t *tablesService) Init(ctx context.Context) ([]models.TableStatus, error) {
	return t.tablesRepo.InitSchema(ctx)
}

func (t *tablesService) Ping(ctx context.Context) error {
	return t.tablesRepo.Ping(ctx)
}
