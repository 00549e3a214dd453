package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/revenda/api-vendas/internal/core/domain"
)

const collectionClientes = "clientes"

type ClienteRepository struct {
	coll *mongo.Collection
}

func NewClienteRepository(db *mongo.Database) *ClienteRepository {
	return &ClienteRepository{coll: db.Collection(collectionClientes)}
}

type mongoCliente struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Nome      string             `bson:"nome"`
	Email     string             `bson:"email"`
	SenhaHash string             `bson:"senha_hash"`
	Cidade    string             `bson:"cidade,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m mongoCliente) toDomain() *domain.Cliente {
	return &domain.Cliente{
		ID:        m.ID.Hex(),
		Nome:      m.Nome,
		Email:     m.Email,
		SenhaHash: m.SenhaHash,
		Cidade:    m.Cidade,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *ClienteRepository) Create(ctx context.Context, cliente *domain.Cliente) (*domain.Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCliente{
		Nome:      cliente.Nome,
		Email:     cliente.Email,
		SenhaHash: cliente.SenhaHash,
		Cidade:    cliente.Cidade,
		CreatedAt: cliente.CreatedAt,
		UpdatedAt: cliente.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert cliente: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ClienteRepository) FindByEmail(ctx context.Context, email string) (*domain.Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoCliente
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, fmt.Errorf("find cliente by email: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ClienteRepository) FindByID(ctx context.Context, id string) (*domain.Cliente, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrClienteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoCliente
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, fmt.Errorf("find cliente: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ClienteRepository) Update(ctx context.Context, cliente *domain.Cliente) error {
	oid, ok := parseID(cliente.ID)
	if !ok {
		return domain.ErrClienteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"nome":       cliente.Nome,
		"email":      cliente.Email,
		"senha_hash": cliente.SenhaHash,
		"cidade":     cliente.Cidade,
		"updated_at": cliente.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClienteNotFound
	}
	return nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrClienteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClienteNotFound
	}
	return nil
}

func (r *ClienteRepository) List(ctx context.Context, page, limit int) ([]*domain.Cliente, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count clientes: %w", err)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, pageOpts(page, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list clientes: %w", err)
	}
	defer cursor.Close(ctx)

	var clientes []*domain.Cliente
	for cursor.Next(ctx) {
		var m mongoCliente
		if err := cursor.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode cliente: %w", err)
		}
		clientes = append(clientes, m.toDomain())
	}
	return clientes, total, cursor.Err()
}

// EnsureIndexes creates the unique e-mail index backing the duplicate check.
func (r *ClienteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
