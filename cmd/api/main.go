package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/metacore/ads-performance-api/infrastructure/database/postgres"
	"github.com/metacore/ads-performance-api/infrastructure/repository"
	"github.com/metacore/ads-performance-api/internal/api"
	"github.com/metacore/ads-performance-api/internal/config"
	"github.com/metacore/ads-performance-api/internal/scheduler"
	"github.com/metacore/ads-performance-api/internal/usecases/authenticating"
	"github.com/metacore/ads-performance-api/internal/usecases/insighting"
	"github.com/metacore/ads-performance-api/pkg/metrics"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	datasetRepo := repository.NewDatasetRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	insightService := insighting.NewService(datasetRepo)

	m := metrics.New()

	retentionService := scheduler.NewDatasetRetentionService(datasetRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de snapshots")
	} else {
		logrus.Info("Agendador de retenção de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		authenticator,
		datasetRepo,
		retentionService,
		m,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
