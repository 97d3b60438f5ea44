package repository

import (
	"context"

	"github.com/jhoicas/workexperience-api/internal/domain/entity"
)

// WorkExperienceRepository define el puerto de persistencia para WorkExperience (DIP).
//
// El tipo ID lo fija cada backend (int64 en SQL, string en Mongo). El repositorio
// no interpreta invariantes de dominio: es una superficie CRUD por identificador.
// Update y DeleteByID son operaciones condicionales atómicas: informan si algún
// registro coincidió con el id en lugar de fallar.
type WorkExperienceRepository[ID comparable] interface {
	FindAll(ctx context.Context) ([]entity.WorkExperience[ID], error)
	Insert(ctx context.Context, data entity.WorkExperienceDbPayload) (ID, error)
	Update(ctx context.Context, id ID, data entity.WorkExperienceDbPayload) (bool, error)
	DeleteByID(ctx context.Context, id ID) (bool, error)
	Exists(ctx context.Context, id ID) (bool, error)
}
