package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/workexperience-api/internal/domain/entity"
	"github.com/jhoicas/workexperience-api/internal/domain/repository"
)

var _ repository.WorkExperienceRepository[int64] = (*WorkExperienceRepo)(nil)

// WorkExperienceRepo implementación del puerto WorkExperienceRepository sobre SQLite.
// Las columnas mapean 1:1 con los campos; las fechas se guardan como TEXT YYYY-MM-DD.
type WorkExperienceRepo struct {
	db *sql.DB
}

// NewWorkExperienceRepository construye el adaptador con una conexión ya abierta.
func NewWorkExperienceRepository(db *sql.DB) *WorkExperienceRepo {
	return &WorkExperienceRepo{db: db}
}

// FindAll lista todas las experiencias.
func (r *WorkExperienceRepo) FindAll(ctx context.Context) ([]entity.WorkExperience[int64], error) {
	query := `
		SELECT Id, CompanyName, JobTitle, WorkCityLocation, StartDate, EndDate, Description
		FROM WorkExperiences ORDER BY Id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list work experiences: %w", err)
	}
	defer rows.Close()

	list := make([]entity.WorkExperience[int64], 0)
	for rows.Next() {
		var (
			id int64
			p  entity.WorkExperienceDbPayload
		)
		if err := rows.Scan(&id, &p.CompanyName, &p.JobTitle, &p.WorkCityLocation, &p.StartDate, &p.EndDate, &p.Description); err != nil {
			return nil, fmt.Errorf("scan work experience: %w", err)
		}
		w, err := entity.FromDbPayload(id, p)
		if err != nil {
			return nil, fmt.Errorf("decode work experience %d: %w", id, err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Insert persiste una nueva experiencia y devuelve el id autoincremental.
func (r *WorkExperienceRepo) Insert(ctx context.Context, data entity.WorkExperienceDbPayload) (int64, error) {
	query := `
		INSERT INTO WorkExperiences (CompanyName, JobTitle, WorkCityLocation, StartDate, EndDate, Description)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		data.CompanyName, data.JobTitle, data.WorkCityLocation,
		data.StartDate, data.EndDate, data.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("insert work experience: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert work experience id: %w", err)
	}
	return id, nil
}

// Update actualiza todos los campos; devuelve false si ninguna fila coincidió.
func (r *WorkExperienceRepo) Update(ctx context.Context, id int64, data entity.WorkExperienceDbPayload) (bool, error) {
	query := `
		UPDATE WorkExperiences
		SET CompanyName = ?, JobTitle = ?, WorkCityLocation = ?, StartDate = ?, EndDate = ?, Description = ?
		WHERE Id = ?`
	res, err := r.db.ExecContext(ctx, query,
		data.CompanyName, data.JobTitle, data.WorkCityLocation,
		data.StartDate, data.EndDate, data.Description, id,
	)
	if err != nil {
		return false, fmt.Errorf("update work experience: %w", err)
	}
	return affected(res)
}

// DeleteByID elimina por id; devuelve false si no existía.
func (r *WorkExperienceRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM WorkExperiences WHERE Id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete work experience: %w", err)
	}
	return affected(res)
}

// Exists busca la fila por clave primaria.
func (r *WorkExperienceRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, `SELECT Id FROM WorkExperiences WHERE Id = ?`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup work experience: %w", err)
	}
	return true, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
