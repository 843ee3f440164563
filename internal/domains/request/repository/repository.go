package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"concierge/infras/otel"
	"concierge/infras/postgres"
	"concierge/internal/domains/request/model"
	gDto "concierge/shared/dto"
	gRepo "concierge/shared/repository"
)

type Request interface {
	Insert(ctx context.Context, model model.ServiceRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceRequest, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ServiceRequest]
}

func New(db *postgres.Connection, otel otel.Otel) Request {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
