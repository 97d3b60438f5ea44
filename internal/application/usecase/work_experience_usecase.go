package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jhoicas/workexperience-api/internal/domain"
	"github.com/jhoicas/workexperience-api/internal/domain/entity"
	"github.com/jhoicas/workexperience-api/internal/domain/repository"
)

// MsgStartAfterEnd mensaje de la regla startDate <= endDate.
const MsgStartAfterEnd = "Start date must be before end date."

// ErrPDFUnavailable se devuelve cuando no se inyectó un generador de PDF.
var ErrPDFUnavailable = errors.New("generador de PDF no configurado")

// WorkExperiencePDFGenerator puerto de salida para renderizar el CV en PDF.
type WorkExperiencePDFGenerator interface {
	GenerateWorkExperiencePDF(ctx context.Context, items []entity.WorkExperiencePayload) ([]byte, error)
}

// WorkExperienceUseCase casos de uso CRUD para experiencias laborales.
// Aplica las reglas de dominio (orden de fechas, existencia) antes de mutar.
type WorkExperienceUseCase[ID comparable] struct {
	repo repository.WorkExperienceRepository[ID]
	pdf  WorkExperiencePDFGenerator
}

// NewWorkExperienceUseCase construye el caso de uso. pdf puede ser nil.
func NewWorkExperienceUseCase[ID comparable](
	repo repository.WorkExperienceRepository[ID],
	pdf WorkExperiencePDFGenerator,
) *WorkExperienceUseCase[ID] {
	return &WorkExperienceUseCase[ID]{repo: repo, pdf: pdf}
}

// GetAll devuelve todas las experiencias tal como las entrega el repositorio.
func (uc *WorkExperienceUseCase[ID]) GetAll(ctx context.Context) ([]entity.WorkExperience[ID], error) {
	return uc.repo.FindAll(ctx)
}

// Create valida startDate <= endDate, serializa las fechas e inserta.
func (uc *WorkExperienceUseCase[ID]) Create(ctx context.Context, payload entity.WorkExperiencePayload) (entity.WorkExperience[ID], error) {
	dbPayload, err := toDbPayload(payload)
	if err != nil {
		return entity.WorkExperience[ID]{}, err
	}
	id, err := uc.repo.Insert(ctx, dbPayload)
	if err != nil {
		return entity.WorkExperience[ID]{}, fmt.Errorf("crear experiencia: %w", err)
	}
	return entity.NewWorkExperience(id, payload), nil
}

// Update modifica una experiencia existente.
// El 404 tiene prioridad sobre el error de fechas; si el registro desaparece entre
// la comprobación y la escritura, el update condicional no coincide y también es 404.
func (uc *WorkExperienceUseCase[ID]) Update(ctx context.Context, id ID, payload entity.WorkExperiencePayload) error {
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("comprobar experiencia: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError(entity.FieldID)
	}
	dbPayload, err := toDbPayload(payload)
	if err != nil {
		return err
	}
	matched, err := uc.repo.Update(ctx, id, dbPayload)
	if err != nil {
		return fmt.Errorf("actualizar experiencia: %w", err)
	}
	if !matched {
		return domain.NewNotFoundError(entity.FieldID)
	}
	return nil
}

// Delete elimina una experiencia; el borrado condicional informa si existía.
func (uc *WorkExperienceUseCase[ID]) Delete(ctx context.Context, id ID) error {
	matched, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar experiencia: %w", err)
	}
	if !matched {
		return domain.NewNotFoundError(entity.FieldID)
	}
	return nil
}

// ExportPDF genera el CV con todas las experiencias, de la más reciente a la más antigua.
func (uc *WorkExperienceUseCase[ID]) ExportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, ErrPDFUnavailable
	}
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("pdf: listar experiencias: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StartDate.After(list[j].StartDate)
	})
	items := make([]entity.WorkExperiencePayload, 0, len(list))
	for _, w := range list {
		items = append(items, w.Payload())
	}
	return uc.pdf.GenerateWorkExperiencePDF(ctx, items)
}

// toDbPayload aplica la regla de fechas y convierte a la forma de almacenamiento.
func toDbPayload(p entity.WorkExperiencePayload) (entity.WorkExperienceDbPayload, error) {
	if p.StartDate.After(p.EndDate) {
		return entity.WorkExperienceDbPayload{}, domain.NewDomainError(entity.FieldStartDate, MsgStartAfterEnd)
	}
	return entity.WorkExperienceDbPayload{
		CompanyName:      p.CompanyName,
		JobTitle:         p.JobTitle,
		WorkCityLocation: p.WorkCityLocation,
		StartDate:        entity.FormatDate(p.StartDate),
		EndDate:          entity.FormatDate(p.EndDate),
		Description:      p.Description,
	}, nil
}
