package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/workexperience-api/internal/domain/entity"
	"github.com/jhoicas/workexperience-api/internal/domain/repository"
)

// CollectionName colección de experiencias laborales.
const CollectionName = "WorkExperience"

var _ repository.WorkExperienceRepository[string] = (*WorkExperienceRepo)(nil)

// workExperienceDocument forma del documento: igual que la entidad pero con _id
// nativo y fechas como BSON date.
type workExperienceDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	CompanyName      string             `bson:"companyName"`
	JobTitle         string             `bson:"jobTitle"`
	WorkCityLocation string             `bson:"workCityLocation"`
	StartDate        time.Time          `bson:"startDate"`
	EndDate          time.Time          `bson:"endDate"`
	Description      string             `bson:"description"`
}

func (d workExperienceDocument) toEntity() entity.WorkExperience[string] {
	return entity.WorkExperience[string]{
		ID:               d.ID.Hex(),
		CompanyName:      d.CompanyName,
		JobTitle:         d.JobTitle,
		WorkCityLocation: d.WorkCityLocation,
		StartDate:        entity.DateOnly(d.StartDate),
		EndDate:          entity.DateOnly(d.EndDate),
		Description:      d.Description,
	}
}

func newDocument(p entity.WorkExperienceDbPayload) (workExperienceDocument, error) {
	start, err := entity.ParseDate(p.StartDate)
	if err != nil {
		return workExperienceDocument{}, fmt.Errorf("startDate: %w", err)
	}
	end, err := entity.ParseDate(p.EndDate)
	if err != nil {
		return workExperienceDocument{}, fmt.Errorf("endDate: %w", err)
	}
	return workExperienceDocument{
		CompanyName:      p.CompanyName,
		JobTitle:         p.JobTitle,
		WorkCityLocation: p.WorkCityLocation,
		StartDate:        start,
		EndDate:          end,
		Description:      p.Description,
	}, nil
}

// WorkExperienceRepo implementación del puerto WorkExperienceRepository sobre MongoDB.
// El ObjectID se expone como string hexadecimal; un id que no es hex válido
// se trata como inexistente.
type WorkExperienceRepo struct {
	coll *mongo.Collection
}

// NewWorkExperienceRepository construye el adaptador sobre la base indicada.
func NewWorkExperienceRepository(db *mongo.Database) *WorkExperienceRepo {
	return &WorkExperienceRepo{coll: db.Collection(CollectionName)}
}

// FindAll lista todas las experiencias, renombrando _id a id.
func (r *WorkExperienceRepo) FindAll(ctx context.Context) ([]entity.WorkExperience[string], error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list work experiences: %w", err)
	}
	var docs []workExperienceDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode work experiences: %w", err)
	}
	list := make([]entity.WorkExperience[string], 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}

// Insert crea el documento y devuelve su ObjectID en hex.
func (r *WorkExperienceRepo) Insert(ctx context.Context, data entity.WorkExperienceDbPayload) (string, error) {
	doc, err := newDocument(data)
	if err != nil {
		return "", fmt.Errorf("insert work experience: %w", err)
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert work experience: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert work experience: id inesperado %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update reemplaza los campos con $set; false si ningún documento coincidió.
func (r *WorkExperienceRepo) Update(ctx context.Context, id string, data entity.WorkExperienceDbPayload) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	doc, err := newDocument(data)
	if err != nil {
		return false, fmt.Errorf("update work experience: %w", err)
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: entity.FieldCompanyName, Value: doc.CompanyName},
		{Key: entity.FieldJobTitle, Value: doc.JobTitle},
		{Key: entity.FieldWorkCityLocation, Value: doc.WorkCityLocation},
		{Key: entity.FieldStartDate, Value: doc.StartDate},
		{Key: entity.FieldEndDate, Value: doc.EndDate},
		{Key: entity.FieldDescription, Value: doc.Description},
	}}}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return false, fmt.Errorf("update work experience: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// DeleteByID elimina el documento; false si no existía.
func (r *WorkExperienceRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, fmt.Errorf("delete work experience: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// Exists busca el documento por _id.
func (r *WorkExperienceRepo) Exists(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}},
		options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("lookup work experience: %w", err)
	}
	return true, nil
}

func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
