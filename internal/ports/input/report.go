package input

import (
	"context"

	"localestatus/internal/domain/entities"
)

type ReportUseCase interface {
	Run(ctx context.Context) (*entities.Report, error)
}

type MappingUseCase interface {
	Run(ctx context.Context, path string) (*entities.MappingReport, error)
}
