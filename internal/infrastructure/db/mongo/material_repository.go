package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arleti/materials-system/internal/core/domain"
)

const materialCollection = "materials"

type MongoMaterialRepository struct {
	coll *mongo.Collection
}

func NewMaterialRepository(db *mongo.Database) *MongoMaterialRepository {
	return &MongoMaterialRepository{coll: db.Collection(materialCollection)}
}

type materialDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Quantity int64              `bson:"quantity"`
	Unit     string             `bson:"unit"`
	Price    float64            `bson:"price"`
}

func (r *MongoMaterialRepository) Create(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	doc := materialDoc{
		Name:     m.Name,
		Category: m.Category,
		Quantity: m.Quantity,
		Unit:     m.Unit,
		Price:    m.Price,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert material: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoMaterialRepository) FindByID(ctx context.Context, id string) (*domain.Material, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMaterialNotFound
	}

	var doc materialDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("find material: %w", err)
	}
	return docToMaterial(doc), nil
}

func (r *MongoMaterialRepository) List(ctx context.Context) ([]*domain.Material, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer cursor.Close(ctx)

	var materials []*domain.Material
	for cursor.Next(ctx) {
		var doc materialDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode material: %w", err)
		}
		materials = append(materials, docToMaterial(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

func (r *MongoMaterialRepository) Update(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	oid, err := primitive.ObjectIDFromHex(m.ID)
	if err != nil {
		return nil, domain.ErrMaterialNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":     m.Name,
		"category": m.Category,
		"quantity": m.Quantity,
		"unit":     m.Unit,
		"price":    m.Price,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update material: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMaterialNotFound
	}

	updated := *m
	return &updated, nil
}

func (r *MongoMaterialRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMaterialNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMaterialNotFound
	}
	return nil
}

func docToMaterial(doc materialDoc) *domain.Material {
	return &domain.Material{
		ID:       doc.ID.Hex(),
		Name:     doc.Name,
		Category: doc.Category,
		Quantity: doc.Quantity,
		Unit:     doc.Unit,
		Price:    doc.Price,
	}
}
