package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/workexperience-api/internal/domain/entity"
	"github.com/jhoicas/workexperience-api/internal/domain/repository"
)

var _ repository.WorkExperienceRepository[int64] = (*WorkExperienceRepo)(nil)

// DBTX operaciones comunes de *pgxpool.Pool y pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WorkExperienceRepo implementación del puerto WorkExperienceRepository sobre PostgreSQL.
// Las fechas llegan como YYYY-MM-DD y se guardan en columnas DATE.
type WorkExperienceRepo struct {
	db DBTX
}

// NewWorkExperienceRepository construye el adaptador de persistencia.
func NewWorkExperienceRepository(db DBTX) *WorkExperienceRepo {
	return &WorkExperienceRepo{db: db}
}

// FindAll lista todas las experiencias.
func (r *WorkExperienceRepo) FindAll(ctx context.Context) ([]entity.WorkExperience[int64], error) {
	query := `
		SELECT id, company_name, job_title, work_city_location, start_date, end_date, description
		FROM work_experiences ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list work experiences: %w", err)
	}
	defer rows.Close()

	list := make([]entity.WorkExperience[int64], 0)
	for rows.Next() {
		var (
			w          entity.WorkExperience[int64]
			start, end time.Time
		)
		if err := rows.Scan(&w.ID, &w.CompanyName, &w.JobTitle, &w.WorkCityLocation, &start, &end, &w.Description); err != nil {
			return nil, fmt.Errorf("scan work experience: %w", err)
		}
		w.StartDate = entity.DateOnly(start)
		w.EndDate = entity.DateOnly(end)
		list = append(list, w)
	}
	return list, rows.Err()
}

// Insert persiste una experiencia y devuelve el id generado.
func (r *WorkExperienceRepo) Insert(ctx context.Context, data entity.WorkExperienceDbPayload) (int64, error) {
	query := `
		INSERT INTO work_experiences (company_name, job_title, work_city_location, start_date, end_date, description)
		VALUES ($1, $2, $3, $4::date, $5::date, $6)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		data.CompanyName, data.JobTitle, data.WorkCityLocation,
		data.StartDate, data.EndDate, data.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert work experience: %w", err)
	}
	return id, nil
}

// Update actualiza la experiencia; false si el id no existe.
func (r *WorkExperienceRepo) Update(ctx context.Context, id int64, data entity.WorkExperienceDbPayload) (bool, error) {
	query := `
		UPDATE work_experiences SET
			company_name = $2,
			job_title = $3,
			work_city_location = $4,
			start_date = $5::date,
			end_date = $6::date,
			description = $7
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		id, data.CompanyName, data.JobTitle, data.WorkCityLocation,
		data.StartDate, data.EndDate, data.Description,
	)
	if err != nil {
		return false, fmt.Errorf("update work experience: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeleteByID elimina por id; false si no existía.
func (r *WorkExperienceRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM work_experiences WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete work experience: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Exists busca por clave primaria.
func (r *WorkExperienceRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRow(ctx, `SELECT id FROM work_experiences WHERE id = $1`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup work experience: %w", err)
	}
	return true, nil
}
