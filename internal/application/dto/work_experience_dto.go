package dto

import "github.com/jhoicas/workexperience-api/internal/domain/entity"

// WorkExperienceRequest entrada para crear o actualizar una experiencia laboral.
// El handler valida el cuerpo crudo con validation.ParseWorkExperience; este tipo
// documenta la forma esperada (swagger).
type WorkExperienceRequest struct {
	CompanyName      string `json:"companyName" example:"Acme"`
	JobTitle         string `json:"jobTitle" example:"Engineer"`
	WorkCityLocation string `json:"workCityLocation" example:"Remote"`
	StartDate        string `json:"startDate" example:"2023-01-01"`
	EndDate          string `json:"endDate" example:"2023-06-01"`
	Description      string `json:"description" example:"Built things"`
}

// DeleteWorkExperienceRequest cuerpo de la variante DELETE con id en el body.
type DeleteWorkExperienceRequest struct {
	ID any `json:"id" swaggertype:"integer" example:"1"`
}

// WorkExperienceResponse salida de una experiencia laboral; fechas en YYYY-MM-DD.
type WorkExperienceResponse[ID comparable] struct {
	ID               ID     `json:"id"`
	CompanyName      string `json:"companyName"`
	JobTitle         string `json:"jobTitle"`
	WorkCityLocation string `json:"workCityLocation"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Description      string `json:"description"`
}

// NewWorkExperienceResponse mapea la entidad a su representación HTTP.
func NewWorkExperienceResponse[ID comparable](w entity.WorkExperience[ID]) WorkExperienceResponse[ID] {
	return WorkExperienceResponse[ID]{
		ID:               w.ID,
		CompanyName:      w.CompanyName,
		JobTitle:         w.JobTitle,
		WorkCityLocation: w.WorkCityLocation,
		StartDate:        entity.FormatDate(w.StartDate),
		EndDate:          entity.FormatDate(w.EndDate),
		Description:      w.Description,
	}
}

// NewWorkExperienceListResponse mapea una lista; nunca devuelve nil (JSON "[]").
func NewWorkExperienceListResponse[ID comparable](list []entity.WorkExperience[ID]) []WorkExperienceResponse[ID] {
	out := make([]WorkExperienceResponse[ID], 0, len(list))
	for _, w := range list {
		out = append(out, NewWorkExperienceResponse(w))
	}
	return out
}
