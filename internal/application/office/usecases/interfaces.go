package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/office/dto"
)

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OpenContactCounter reports open inquiries that still reference an office.
type OpenContactCounter interface {
	CountOpenByOffice(ctx context.Context, officeID string) (int64, error)
}

type CreateOfficeExecutor interface {
	Execute(ctx context.Context, cmd CreateOfficeCommand) (*dto.OfficeDTO, error)
}

type UpdateOfficeExecutor interface {
	Execute(ctx context.Context, cmd UpdateOfficeCommand) (*dto.OfficeDTO, error)
}

type DeleteOfficeExecutor interface {
	Execute(ctx context.Context, id string) error
}

type GetOfficeExecutor interface {
	Execute(ctx context.Context, query GetOfficeQuery) (*dto.OfficeDTO, error)
}

type ListAirlineOfficesExecutor interface {
	Execute(ctx context.Context, airlineID string) ([]*dto.OfficeDTO, error)
}
