package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/workexperience-api/internal/domain"
)

func TestDomainError_NotFound(t *testing.T) {
	err := fmt.Errorf("envuelto: %w", domain.NewNotFoundError("id"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	var derr *domain.DomainError
	if assert.ErrorAs(t, err, &derr) {
		assert.Equal(t, http.StatusNotFound, derr.StatusCode)
		assert.Equal(t, domain.NotFoundMessage, derr.Message)
	}
}

func TestDomainError_ReglaDeNegocioNoEsNotFound(t *testing.T) {
	err := domain.NewDomainError("startDate", "Start date must be before end date.")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "startDate: Start date must be before end date.", err.Error())
}

func TestValidationError_AcumulaCampos(t *testing.T) {
	verr := &domain.ValidationError{}
	assert.False(t, verr.HasIssues())

	verr.Add("companyName", "Required")
	verr.Add("endDate", "Invalid date")

	assert.True(t, verr.HasIssues())
	assert.Equal(t, []string{"companyName", "endDate"}, verr.Fields())
	assert.ErrorIs(t, verr, domain.ErrInvalidInput)
	assert.Equal(t, "validación: companyName: Required; endDate: Invalid date", verr.Error())

	var nilErr *domain.ValidationError
	assert.False(t, nilErr.HasIssues())
}
