package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/barberia/barber-manager-api/infrastructure/database/postgres"
	"github.com/barberia/barber-manager-api/infrastructure/repository"
	"github.com/barberia/barber-manager-api/infrastructure/spreadsheet"
	"github.com/barberia/barber-manager-api/internal/api"
	"github.com/barberia/barber-manager-api/internal/config"
	"github.com/barberia/barber-manager-api/internal/scheduler"
	"github.com/barberia/barber-manager-api/internal/usecases/authenticating"
	"github.com/barberia/barber-manager-api/internal/usecases/importing"
	"github.com/barberia/barber-manager-api/internal/usecases/registering"
	"github.com/barberia/barber-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
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

	haircutRepo := repository.NewHaircutRepository(pgConn)
	dailySummaryRepo := repository.NewDailySummaryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	registrar := registering.NewService(haircutRepo)
	reporter := reporting.NewService(cfg)
	importer := importing.NewService(cfg, spreadsheet.ForFilename, registrar)

	// Inicializa o agendador de consolidação dos resumos diários
	summarySyncService := scheduler.NewDailySummarySyncService(
		haircutRepo,
		dailySummaryRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := summarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de resumos diários")
	} else {
		logrus.Info("Agendador de consolidação de resumos diários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		registrar,
		reporter,
		importer,
		authenticator,
		summarySyncService,
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
