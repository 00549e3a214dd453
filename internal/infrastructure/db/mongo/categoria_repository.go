package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/revenda/api-vendas/internal/core/domain"
)

const collectionCategorias = "categorias"

type CategoriaRepository struct {
	coll *mongo.Collection
}

func NewCategoriaRepository(db *mongo.Database) *CategoriaRepository {
	return &CategoriaRepository{coll: db.Collection(collectionCategorias)}
}

type mongoCategoria struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Nome      string             `bson:"nome"`
	Descricao string             `bson:"descricao,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m mongoCategoria) toDomain() *domain.Categoria {
	return &domain.Categoria{
		ID:        m.ID.Hex(),
		Nome:      m.Nome,
		Descricao: m.Descricao,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *CategoriaRepository) Create(ctx context.Context, categoria *domain.Categoria) (*domain.Categoria, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCategoria{
		Nome:      categoria.Nome,
		Descricao: categoria.Descricao,
		CreatedAt: categoria.CreatedAt,
		UpdatedAt: categoria.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert categoria: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CategoriaRepository) FindByID(ctx context.Context, id string) (*domain.Categoria, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrCategoriaNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoCategoria
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoriaNotFound
		}
		return nil, fmt.Errorf("find categoria: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CategoriaRepository) Update(ctx context.Context, categoria *domain.Categoria) error {
	oid, ok := parseID(categoria.ID)
	if !ok {
		return domain.ErrCategoriaNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"nome":       categoria.Nome,
		"descricao":  categoria.Descricao,
		"updated_at": categoria.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoriaNotFound
	}
	return nil
}

func (r *CategoriaRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrCategoriaNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoriaNotFound
	}
	return nil
}

func (r *CategoriaRepository) List(ctx context.Context, page, limit int) ([]*domain.Categoria, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count categorias: %w", err)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, pageOpts(page, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list categorias: %w", err)
	}
	defer cursor.Close(ctx)

	var categorias []*domain.Categoria
	for cursor.Next(ctx) {
		var m mongoCategoria
		if err := cursor.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode categoria: %w", err)
		}
		categorias = append(categorias, m.toDomain())
	}
	return categorias, total, cursor.Err()
}
