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
	"github.com/revenda/api-vendas/internal/core/ports"
)

const collectionPropostas = "propostas"

type PropostaRepository struct {
	coll *mongo.Collection
}

func NewPropostaRepository(db *mongo.Database) *PropostaRepository {
	return &PropostaRepository{coll: db.Collection(collectionPropostas)}
}

type mongoProposta struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ClienteID  string             `bson:"cliente_id"`
	ProdutoID  string             `bson:"produto_id"`
	Quantidade int                `bson:"quantidade"`
	Mensagem   string             `bson:"mensagem,omitempty"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (m mongoProposta) toDomain() *domain.Proposta {
	return &domain.Proposta{
		ID:         m.ID.Hex(),
		ClienteID:  m.ClienteID,
		ProdutoID:  m.ProdutoID,
		Quantidade: m.Quantidade,
		Mensagem:   m.Mensagem,
		Status:     domain.PropostaStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *PropostaRepository) Create(ctx context.Context, proposta *domain.Proposta) (*domain.Proposta, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProposta{
		ClienteID:  proposta.ClienteID,
		ProdutoID:  proposta.ProdutoID,
		Quantidade: proposta.Quantidade,
		Mensagem:   proposta.Mensagem,
		Status:     string(proposta.Status),
		CreatedAt:  proposta.CreatedAt,
		UpdatedAt:  proposta.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert proposta: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PropostaRepository) FindByID(ctx context.Context, id string) (*domain.Proposta, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrPropostaNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoProposta
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropostaNotFound
		}
		return nil, fmt.Errorf("find proposta: %w", err)
	}
	return m.toDomain(), nil
}

func (r *PropostaRepository) Update(ctx context.Context, proposta *domain.Proposta) error {
	oid, ok := parseID(proposta.ID)
	if !ok {
		return domain.ErrPropostaNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(proposta.Status),
		"updated_at": proposta.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update proposta: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropostaNotFound
	}
	return nil
}

func (r *PropostaRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrPropostaNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete proposta: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropostaNotFound
	}
	return nil
}

func (r *PropostaRepository) List(ctx context.Context, filter ports.ListPropostasFilter) ([]*domain.Proposta, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClienteID != "" {
		query["cliente_id"] = filter.ClienteID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count propostas: %w", err)
	}

	cursor, err := r.coll.Find(ctx, query, pageOpts(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list propostas: %w", err)
	}
	defer cursor.Close(ctx)

	var propostas []*domain.Proposta
	for cursor.Next(ctx) {
		var m mongoProposta
		if err := cursor.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode proposta: %w", err)
		}
		propostas = append(propostas, m.toDomain())
	}
	return propostas, total, cursor.Err()
}

// EnsureIndexes creates the indexes backing owner-scoped queries.
func (r *PropostaRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "cliente_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
