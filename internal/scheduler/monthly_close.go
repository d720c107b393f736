// Package scheduler contém os serviços de agendamento da barbearia
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/barber-manager-api/infrastructure/repository"
	"github.com/vfg2006/barber-manager-api/internal/config"
	"github.com/vfg2006/barber-manager-api/internal/domain"
	"github.com/vfg2006/barber-manager-api/internal/usecases/commission"
	"github.com/vfg2006/barber-manager-api/pkg/utils"
)

type MonthlyCloseConfig struct {
	CronSchedule string
	Enabled      bool
}

// MonthlyCloseService fecha o mês anterior: calcula o relatório de comissão
// e grava o snapshot para consulta histórica e pagamento
type MonthlyCloseService struct {
	scheduler           *gocron.Scheduler
	commissionService   commission.CommissionService
	reportRepo          repository.CommissionReportRepository
	config              MonthlyCloseConfig
	closeRunning        bool
	closeMutex          sync.Mutex
	lastCloseStartedAt  time.Time
	lastCloseFinishedAt time.Time
}

func NewMonthlyCloseService(
	commissionService commission.CommissionService,
	reportRepo repository.CommissionReportRepository,
	cfg *config.Config,
) *MonthlyCloseService {
	closeConfig := MonthlyCloseConfig{
		CronSchedule: cfg.MonthlyClose.CronSchedule, // Default: 5h da manhã do primeiro dia do mês
		Enabled:      cfg.MonthlyClose.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": closeConfig.CronSchedule,
	}).Info("Configuração do agendador de fechamento mensal carregada")

	return &MonthlyCloseService{
		scheduler:         scheduler,
		commissionService: commissionService,
		reportRepo:        reportRepo,
		config:            closeConfig,
	}
}

func (s *MonthlyCloseService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de fechamento mensal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de fechamento mensal")

	// Agendar o fechamento do mês anterior
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CloseMonth(domain.CurrentMonthKey().PreviousMonthKey()); err != nil {
			logrus.WithError(err).Error("Erro no fechamento mensal de comissão")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento mensal: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de fechamento mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// CloseMonth calcula e persiste o relatório de comissão do mês informado.
// Executar novamente para o mesmo mês sobrescreve o snapshot anterior.
func (s *MonthlyCloseService) CloseMonth(month domain.MonthKey) error {
	s.closeMutex.Lock()
	defer s.closeMutex.Unlock()

	if s.closeRunning {
		logrus.Warn("Fechamento mensal já está em execução")
		return nil
	}

	s.closeRunning = true
	s.lastCloseStartedAt = time.Now()
	defer func() {
		s.closeRunning = false
		s.lastCloseFinishedAt = time.Now()
	}()

	logrus.WithField("month", month.String()).Info("Iniciando fechamento mensal de comissão")

	report, err := s.commissionService.GetMonthlyReport(month)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular relatório de comissão do fechamento")
		return err
	}

	logrus.Debugf("Relatório de comissão calculado: %s", utils.PrettyJson(report))

	if err := s.reportRepo.SaveOrUpdate(report); err != nil {
		logrus.WithError(err).Error("Erro ao gravar snapshot do relatório de comissão")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"month":         month.String(),
		"barbers":       len(report.Results),
		"total_minutes": report.TotalMinutes,
	}).Info("Fechamento mensal de comissão concluído")

	return nil
}

// TriggerManualClose inicia manualmente o fechamento do mês anterior
func (s *MonthlyCloseService) TriggerManualClose() {
	s.closeMutex.Lock()
	if s.closeRunning {
		s.closeMutex.Unlock()
		logrus.Info("Fechamento mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.closeMutex.Unlock()

	logrus.Info("Iniciando fechamento mensal manual")
	go s.CloseMonth(domain.CurrentMonthKey().PreviousMonthKey())
}

// GetStatus retorna o status atual do agendador
func (s *MonthlyCloseService) GetStatus() map[string]any {
	return map[string]any{
		"close_enabled":          s.config.Enabled,
		"close_cron":             s.config.CronSchedule,
		"last_close_started_at":  s.lastCloseStartedAt,
		"last_close_finished_at": s.lastCloseFinishedAt,
	}
}
