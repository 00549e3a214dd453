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

const collectionProdutos = "produtos"

type ProdutoRepository struct {
	coll *mongo.Collection
}

func NewProdutoRepository(db *mongo.Database) *ProdutoRepository {
	return &ProdutoRepository{coll: db.Collection(collectionProdutos)}
}

type mongoProduto struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Nome        string             `bson:"nome"`
	Descricao   string             `bson:"descricao,omitempty"`
	PrecoVenda  float64            `bson:"preco_venda"`
	PrecoCusto  float64            `bson:"preco_custo"`
	CategoriaID string             `bson:"categoria_id"`
	Estoque     int                `bson:"estoque"`
	Ativo       bool               `bson:"ativo"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m mongoProduto) toDomain() *domain.Produto {
	return &domain.Produto{
		ID:          m.ID.Hex(),
		Nome:        m.Nome,
		Descricao:   m.Descricao,
		PrecoVenda:  m.PrecoVenda,
		PrecoCusto:  m.PrecoCusto,
		CategoriaID: m.CategoriaID,
		Estoque:     m.Estoque,
		Ativo:       m.Ativo,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ProdutoRepository) Create(ctx context.Context, produto *domain.Produto) (*domain.Produto, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProduto{
		Nome:        produto.Nome,
		Descricao:   produto.Descricao,
		PrecoVenda:  produto.PrecoVenda,
		PrecoCusto:  produto.PrecoCusto,
		CategoriaID: produto.CategoriaID,
		Estoque:     produto.Estoque,
		Ativo:       produto.Ativo,
		CreatedAt:   produto.CreatedAt,
		UpdatedAt:   produto.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert produto: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ProdutoRepository) FindByID(ctx context.Context, id string) (*domain.Produto, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrProdutoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoProduto
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProdutoNotFound
		}
		return nil, fmt.Errorf("find produto: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ProdutoRepository) Update(ctx context.Context, produto *domain.Produto) error {
	oid, ok := parseID(produto.ID)
	if !ok {
		return domain.ErrProdutoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"nome":         produto.Nome,
		"descricao":    produto.Descricao,
		"preco_venda":  produto.PrecoVenda,
		"preco_custo":  produto.PrecoCusto,
		"categoria_id": produto.CategoriaID,
		"estoque":      produto.Estoque,
		"ativo":        produto.Ativo,
		"updated_at":   produto.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProdutoNotFound
	}
	return nil
}

func (r *ProdutoRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrProdutoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProdutoNotFound
	}
	return nil
}

func (r *ProdutoRepository) List(ctx context.Context, filter ports.ListProdutosFilter) ([]*domain.Produto, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CategoriaID != "" {
		query["categoria_id"] = filter.CategoriaID
	}
	if filter.ApenasAtivos {
		query["ativo"] = true
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count produtos: %w", err)
	}

	cursor, err := r.coll.Find(ctx, query, pageOpts(filter.Page, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list produtos: %w", err)
	}
	defer cursor.Close(ctx)

	var produtos []*domain.Produto
	for cursor.Next(ctx) {
		var m mongoProduto
		if err := cursor.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode produto: %w", err)
		}
		produtos = append(produtos, m.toDomain())
	}
	return produtos, total, cursor.Err()
}

// EnsureIndexes creates the indexes backing catalog queries.
func (r *ProdutoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "categoria_id", Value: 1}}},
		{Keys: bson.D{{Key: "ativo", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
