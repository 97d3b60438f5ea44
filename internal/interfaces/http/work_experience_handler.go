package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workexperience-api/internal/application/dto"
	"github.com/jhoicas/workexperience-api/internal/application/usecase"
	"github.com/jhoicas/workexperience-api/internal/application/validation"
	"github.com/jhoicas/workexperience-api/internal/domain"
	"github.com/jhoicas/workexperience-api/pkg/logger"
)

// WorkExperienceHandler maneja las peticiones HTTP de experiencias laborales.
// ID es el tipo de identificador del backend elegido.
type WorkExperienceHandler[ID comparable] struct {
	uc  *usecase.WorkExperienceUseCase[ID]
	ids validation.IDParser[ID]
	log *logger.Logger
}

// NewWorkExperienceHandler construye el handler.
func NewWorkExperienceHandler[ID comparable](
	uc *usecase.WorkExperienceUseCase[ID],
	ids validation.IDParser[ID],
	log *logger.Logger,
) *WorkExperienceHandler[ID] {
	return &WorkExperienceHandler[ID]{uc: uc, ids: ids, log: log}
}

// List godoc
// @Summary      Listar experiencias laborales
// @Tags         work-experience
// @Produce      json
// @Success      200  {array}   dto.WorkExperienceResponse[int64]
// @Failure      500  {object}  dto.ServerErrorResponse
// @Router       /api/work-experience [get]
func (h *WorkExperienceHandler[ID]) List(c *fiber.Ctx) error {
	list, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewWorkExperienceListResponse(list))
}

// Create godoc
// @Summary      Crear experiencia laboral
// @Tags         work-experience
// @Accept       json
// @Produce      json
// @Param        body  body      dto.WorkExperienceRequest  true  "Datos de la experiencia"
// @Success      201   {object}  dto.WorkExperienceResponse[int64]
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      500   {object}  dto.ServerErrorResponse
// @Router       /api/work-experience [post]
func (h *WorkExperienceHandler[ID]) Create(c *fiber.Ctx) error {
	raw, err := parseBody(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	payload, err := validation.ParseWorkExperience(raw)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewWorkExperienceResponse(out))
}

// Update godoc
// @Summary      Actualizar experiencia laboral
// @Tags         work-experience
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID de la experiencia"
// @Param        body  body      dto.WorkExperienceRequest  true  "Datos completos"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ServerErrorResponse
// @Router       /api/work-experience/{id} [put]
func (h *WorkExperienceHandler[ID]) Update(c *fiber.Ctx) error {
	id, idErr := h.ids.FromPath(c.Params("id"))
	raw, err := parseBody(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	payload, bodyErr := validation.ParseWorkExperience(raw)
	if err := mergeValidation(idErr, bodyErr); err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Update(c.UserContext(), id, payload); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar experiencia laboral
// @Tags         work-experience
// @Param        id   path  string  true  "ID de la experiencia"
// @Success      204
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ServerErrorResponse
// @Router       /api/work-experience/{id} [delete]
func (h *WorkExperienceHandler[ID]) Delete(c *fiber.Ctx) error {
	id, err := h.ids.FromPath(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteByBody godoc
// @Summary      Eliminar experiencia laboral (id en el cuerpo)
// @Tags         work-experience
// @Accept       json
// @Param        body  body  dto.DeleteWorkExperienceRequest  true  "ID a eliminar"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ServerErrorResponse
// @Router       /api/work-experience [delete]
func (h *WorkExperienceHandler[ID]) DeleteByBody(c *fiber.Ctx) error {
	raw, err := parseBody(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	id, err := h.ids.FromBody(raw)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Descargar las experiencias como CV en PDF
// @Tags         work-experience
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ServerErrorResponse
// @Router       /api/work-experience/export.pdf [get]
func (h *WorkExperienceHandler[ID]) ExportPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="work-experience.pdf"`)
	return c.Status(fiber.StatusOK).Send(doc)
}

// mergeValidation junta los problemas del id y del cuerpo en un solo error.
// Cualquier error que no sea de validación se devuelve tal cual.
func mergeValidation(errs ...error) error {
	merged := &domain.ValidationError{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		merged.Issues = append(merged.Issues, verr.Issues...)
	}
	if merged.HasIssues() {
		return merged
	}
	return nil
}
