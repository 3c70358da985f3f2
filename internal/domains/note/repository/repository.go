package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"checkinhq/infras/otel"
	"checkinhq/infras/postgres"
	"checkinhq/internal/domains/note/model"
	gDto "checkinhq/shared/dto"
	gRepo "checkinhq/shared/repository"
	"context"
)

type Note interface {
	Insert(ctx context.Context, model model.Note) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Note, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Note, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Note]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Note {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Note](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
