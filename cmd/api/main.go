package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Carlos-D04/AtosCapitais2-main/infrastructure/database/postgres"
	"github.com/Carlos-D04/AtosCapitais2-main/infrastructure/integrator/salesapi"
	"github.com/Carlos-D04/AtosCapitais2-main/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/Carlos-D04/AtosCapitais2-main/infrastructure/repository"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/api"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/scheduler"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/authenticating"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/dashboard"
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

	var fetcher dashboard.SalesFetcher
	switch cfg.App.SalesSource {
	case config.SalesSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		fetcher = repository.NewSalesRepository(pgConn, cfg.Location)
	default:
		fetcher = salesapi.New(cfg, salesapiclient.NewClient(cfg))
	}

	logrus.WithFields(logrus.Fields{
		"source":   cfg.App.SalesSource,
		"timezone": cfg.Location.String(),
	}).Info("Fonte de vendas configurada")

	dashboardService := dashboard.NewService(fetcher, cfg)
	authenticator := authenticating.NewService(cfg)

	snapshotRefreshService := scheduler.NewSnapshotRefreshService(dashboardService, cfg)
	if err := snapshotRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do painel")
	} else {
		logrus.Info("Agendador de recarga do painel iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, authenticator, snapshotRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs e o diretório do .env
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
