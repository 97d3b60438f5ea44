// Package memory implementa el repositorio de experiencias en memoria.
// Pensado para desarrollo local (STORAGE_DRIVER=memory) y tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/workexperience-api/internal/domain/entity"
	"github.com/jhoicas/workexperience-api/internal/domain/repository"
)

var _ repository.WorkExperienceRepository[int64] = (*WorkExperienceRepo)(nil)

// WorkExperienceRepo guarda los payloads por id autoincremental.
type WorkExperienceRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]entity.WorkExperienceDbPayload
}

// NewWorkExperienceRepository construye un repositorio vacío.
func NewWorkExperienceRepository() *WorkExperienceRepo {
	return &WorkExperienceRepo{rows: make(map[int64]entity.WorkExperienceDbPayload)}
}

// FindAll devuelve las experiencias ordenadas por id.
func (r *WorkExperienceRepo) FindAll(_ context.Context) ([]entity.WorkExperience[int64], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]entity.WorkExperience[int64], 0, len(ids))
	for _, id := range ids {
		w, err := entity.FromDbPayload(id, r.rows[id])
		if err != nil {
			return nil, fmt.Errorf("leer experiencia %d: %w", id, err)
		}
		list = append(list, w)
	}
	return list, nil
}

// Insert asigna el siguiente id y guarda el payload.
func (r *WorkExperienceRepo) Insert(_ context.Context, data entity.WorkExperienceDbPayload) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.rows[r.nextID] = data
	return r.nextID, nil
}

// Update reemplaza el payload si el id existe.
func (r *WorkExperienceRepo) Update(_ context.Context, id int64, data entity.WorkExperienceDbPayload) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	r.rows[id] = data
	return true, nil
}

// DeleteByID borra el registro si existe.
func (r *WorkExperienceRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

// Exists indica si hay un registro con ese id.
func (r *WorkExperienceRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}
