package entity

import "time"

// DateLayout formato canónico de fechas en almacenamiento y en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Nombres de campo públicos (JSON, documentos Mongo y mensajes de error).
const (
	FieldID               = "id"
	FieldCompanyName      = "companyName"
	FieldJobTitle         = "jobTitle"
	FieldWorkCityLocation = "workCityLocation"
	FieldStartDate        = "startDate"
	FieldEndDate          = "endDate"
	FieldDescription      = "description"
)

// WorkExperience representa una experiencia laboral ya persistida.
// ID depende del backend: int64 en SQL, string (ObjectID hex) en Mongo.
type WorkExperience[ID comparable] struct {
	ID               ID
	CompanyName      string
	JobTitle         string
	WorkCityLocation string
	StartDate        time.Time // medianoche UTC
	EndDate          time.Time // medianoche UTC
	Description      string
}

// WorkExperiencePayload datos de una experiencia sin identificador (creación/actualización).
type WorkExperiencePayload struct {
	CompanyName      string
	JobTitle         string
	WorkCityLocation string
	StartDate        time.Time
	EndDate          time.Time
	Description      string
}

// WorkExperienceDbPayload payload con fechas serializadas como YYYY-MM-DD.
// Es la única forma que aceptan los repositorios.
type WorkExperienceDbPayload struct {
	CompanyName      string
	JobTitle         string
	WorkCityLocation string
	StartDate        string
	EndDate          string
	Description      string
}

// NewWorkExperience combina un identificador asignado por el almacenamiento con un payload.
func NewWorkExperience[ID comparable](id ID, p WorkExperiencePayload) WorkExperience[ID] {
	return WorkExperience[ID]{
		ID:               id,
		CompanyName:      p.CompanyName,
		JobTitle:         p.JobTitle,
		WorkCityLocation: p.WorkCityLocation,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Description:      p.Description,
	}
}

// FromDbPayload reconstruye la entidad desde la forma de almacenamiento.
func FromDbPayload[ID comparable](id ID, p WorkExperienceDbPayload) (WorkExperience[ID], error) {
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return WorkExperience[ID]{}, err
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return WorkExperience[ID]{}, err
	}
	return WorkExperience[ID]{
		ID:               id,
		CompanyName:      p.CompanyName,
		JobTitle:         p.JobTitle,
		WorkCityLocation: p.WorkCityLocation,
		StartDate:        start,
		EndDate:          end,
		Description:      p.Description,
	}, nil
}

// Payload devuelve los campos mutables de la entidad.
func (w WorkExperience[ID]) Payload() WorkExperiencePayload {
	return WorkExperiencePayload{
		CompanyName:      w.CompanyName,
		JobTitle:         w.JobTitle,
		WorkCityLocation: w.WorkCityLocation,
		StartDate:        w.StartDate,
		EndDate:          w.EndDate,
		Description:      w.Description,
	}
}

// ParseDate interpreta una fecha YYYY-MM-DD como medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate serializa la fecha de calendario en YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DateOnly trunca un instante a su fecha de calendario (medianoche UTC).
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
