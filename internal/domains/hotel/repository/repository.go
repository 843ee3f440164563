package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"concierge/infras/otel"
	"concierge/infras/postgres"
	"concierge/internal/domains/hotel/model"
	gDto "concierge/shared/dto"
	gRepo "concierge/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Hotel interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Hotel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
