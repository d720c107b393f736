package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/barber-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/barber-manager-api/infrastructure/repository"
	"github.com/vfg2006/barber-manager-api/internal/api"
	"github.com/vfg2006/barber-manager-api/internal/config"
	"github.com/vfg2006/barber-manager-api/internal/scheduler"
	"github.com/vfg2006/barber-manager-api/internal/usecases/commission"
	"github.com/vfg2006/barber-manager-api/internal/usecases/rotation"
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

	barberRepo := repository.NewBarberRepository(pgConn)
	eventRepo := repository.NewRotationEventRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)
	recordRepo := repository.NewServiceRecordRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)
	reportRepo := repository.NewCommissionReportRepository(pgConn)

	rotationService := rotation.NewService(barberRepo, eventRepo, rotationOptions(cfg))
	commissionService := commission.NewService(
		barberRepo,
		serviceRepo,
		recordRepo,
		revenueRepo,
		commissionPercentage(cfg),
	)

	// Inicializa o agendador de fechamento mensal de comissão
	monthlyCloseService := scheduler.NewMonthlyCloseService(commissionService, reportRepo, cfg)

	if err := monthlyCloseService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento mensal")
	} else {
		logrus.Info("Agendador de fechamento mensal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		rotationService,
		commissionService,
		monthlyCloseService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// rotationOptions monta as opções da lista da vez a partir da configuração
func rotationOptions(cfg *config.Config) rotation.Options {
	options := rotation.DefaultOptions()
	options.CountPassedTurns = cfg.Rotation.CountPassedTurns

	switch cfg.Rotation.TieBreak {
	case string(rotation.TieBreakFewestPasses):
		options.TieBreak = rotation.TieBreakFewestPasses
	case string(rotation.TieBreakName), "":
		options.TieBreak = rotation.TieBreakName
	default:
		logrus.Warnf("Critério de desempate inválido: %s, usando 'name'", cfg.Rotation.TieBreak)
		options.TieBreak = rotation.TieBreakName
	}

	return options
}

// commissionPercentage lê o percentual de comissão da configuração
func commissionPercentage(cfg *config.Config) decimal.Decimal {
	percentage, err := decimal.NewFromString(cfg.Commission.Percentage)
	if err != nil {
		logrus.Warnf("Percentual de comissão inválido: %s, usando 0.40", cfg.Commission.Percentage)
		return decimal.NewFromFloat(0.40)
	}

	return percentage
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
