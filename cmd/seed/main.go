// seed carga experiencias laborales desde un YAML y las inserta en el backend
// configurado (STORAGE_DRIVER), pasando cada registro por el mismo pipeline de
// validación y reglas de dominio que la API.
//
// Uso: go run ./cmd/seed [ruta/work_experience.yaml]
// Por defecto lee seed/work_experience.yaml.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/workexperience-api/internal/application/usecase"
	"github.com/jhoicas/workexperience-api/internal/application/validation"
	"github.com/jhoicas/workexperience-api/internal/domain"
	"github.com/jhoicas/workexperience-api/internal/domain/entity"
	"github.com/jhoicas/workexperience-api/internal/infrastructure/storage"
	"github.com/jhoicas/workexperience-api/pkg/config"
	"github.com/jhoicas/workexperience-api/pkg/logger"
)

type seedFile struct {
	WorkExperiences []map[string]any `yaml:"workExperiences"`
}

type result struct {
	Inserted int
	Rejected int
}

func main() {
	path := "seed/work_experience.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir seed: %v\n", err)
		os.Exit(1)
	}
	records, err := loadSeed(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar seed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close(context.Background())

	var res result
	if backend.IntRepo != nil {
		res, err = seed(ctx, usecase.NewWorkExperienceUseCase(backend.IntRepo, nil), records, log)
	} else {
		res, err = seed(ctx, usecase.NewWorkExperienceUseCase(backend.StringRepo, nil), records, log)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Insertar: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seed %s (%s): %d insertadas, %d rechazadas\n", path, backend.Driver, res.Inserted, res.Rejected)
	if res.Rejected > 0 {
		os.Exit(2)
	}
}

// loadSeed decodifica el YAML; las fechas sin comillas quedan como string.
func loadSeed(r io.Reader) ([]map[string]any, error) {
	var sf seedFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, err
	}
	for _, rec := range sf.WorkExperiences {
		for k, v := range rec {
			if t, ok := v.(time.Time); ok {
				rec[k] = entity.FormatDate(t)
			}
		}
	}
	return sf.WorkExperiences, nil
}

// seed valida e inserta cada registro. Los registros inválidos se registran y
// se saltan; un error de almacenamiento corta la carga.
func seed[ID comparable](ctx context.Context, uc *usecase.WorkExperienceUseCase[ID], records []map[string]any, log *logger.Logger) (result, error) {
	var res result
	for i, raw := range records {
		payload, err := validation.ParseWorkExperience(raw)
		if err != nil {
			res.Rejected++
			log.Warn().Int("index", i).Err(err).Msg("registro inválido")
			continue
		}
		created, err := uc.Create(ctx, payload)
		if err != nil {
			if isClientError(err) {
				res.Rejected++
				log.Warn().Int("index", i).Err(err).Msg("registro rechazado por reglas de dominio")
				continue
			}
			return res, fmt.Errorf("registro %d: %w", i, err)
		}
		res.Inserted++
		log.Debug().Int("index", i).Interface("id", created.ID).Msg("registro insertado")
	}
	return res, nil
}

func isClientError(err error) bool {
	var derr *domain.DomainError
	return errors.As(err, &derr)
}
