package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/revenda/api-vendas/internal/api"
	"github.com/revenda/api-vendas/internal/infrastructure/config"
	mongodb "github.com/revenda/api-vendas/internal/infrastructure/db/mongo"
	redisdb "github.com/revenda/api-vendas/internal/infrastructure/db/redis"
	"github.com/revenda/api-vendas/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/revenda/api-vendas/docs"
)

const shutdownTimeout = 10 * time.Second

// @title           API de Vendas
// @version         1.0
// @description     API de gestão de revenda: clientes, administradores, produtos, categorias e propostas.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates the unique and query indexes every collection relies
// on, most importantly the unique e-mail indexes behind the duplicate checks.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewClienteRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewAdminRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProdutoRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewPropostaRepository(db).EnsureIndexes(ctx)
}
