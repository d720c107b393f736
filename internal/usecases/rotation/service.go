package rotation

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/barber-manager-api/infrastructure/repository"
	"github.com/vfg2006/barber-manager-api/internal/domain"
	"github.com/vfg2006/barber-manager-api/pkg/utils"
)

type RotationService interface {
	GetQueue(month domain.MonthKey) (*domain.RotationQueueResponse, error)
	RecordService(barberID string, date time.Time) (*domain.RotationEvent, error)
	PassTurn(barberID string, date time.Time) (*domain.RotationEvent, error)
}

type Service struct {
	barberRepo repository.BarberRepository
	eventRepo  repository.RotationEventRepository
	options    Options
	now        func() time.Time
}

func NewService(
	barberRepo repository.BarberRepository,
	eventRepo repository.RotationEventRepository,
	options Options,
) *Service {
	return &Service{
		barberRepo: barberRepo,
		eventRepo:  eventRepo,
		options:    options,
		now:        time.Now,
	}
}

// GetQueue monta a lista da vez do mês informado. O estado é sempre derivado
// do log de eventos carregado por inteiro; nada é cacheado entre consultas.
func (s *Service) GetQueue(month domain.MonthKey) (*domain.RotationQueueResponse, error) {
	barbers, err := s.barberRepo.ListBarbers(true)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar barbeiros ativos")
	}

	events, err := s.eventRepo.ListByMonth(month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar eventos da lista da vez")
	}

	return &domain.RotationQueueResponse{
		Month:       month,
		Queue:       Rank(events, barbers, month, s.options),
		GeneratedAt: s.now(),
	}, nil
}

// RecordService registra um atendimento do barbeiro na data informada.
// Chamadas repetidas geram eventos repetidos: a engine não deduplica.
func (s *Service) RecordService(barberID string, date time.Time) (*domain.RotationEvent, error) {
	return s.appendEvent(barberID, date, domain.EventServiceRecorded)
}

// PassTurn registra que o barbeiro passou a vez. A vez passada também conta
// como atendimento para o ranking, conforme a regra da lista da vez.
func (s *Service) PassTurn(barberID string, date time.Time) (*domain.RotationEvent, error) {
	return s.appendEvent(barberID, date, domain.EventTurnPassed)
}

func (s *Service) appendEvent(
	barberID string,
	date time.Time,
	kind domain.RotationEventKind,
) (*domain.RotationEvent, error) {
	if barberID == "" {
		return nil, ErrBarberIDMissing
	}

	if date.IsZero() {
		date = s.now()
	}

	// Apenas o mês corrente aceita novos eventos: protege contra lançamentos
	// retroativos em um período já fechado
	openMonth := domain.MonthKeyFromDate(s.now())
	month := domain.MonthKeyFromDate(date)
	if month != openMonth {
		return nil, NewRotationError(ErrInvalidMonth, "ROT_002", barberID, month.String())
	}

	barber, err := s.barberRepo.GetByID(barberID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar barbeiro")
	}
	if barber == nil {
		return nil, NewRotationError(ErrBarberNotFound, "ROT_001", barberID, "")
	}
	if !barber.Active {
		return nil, NewRotationError(ErrBarberInactive, "ROT_003", barberID, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador do evento")
	}

	event := &domain.RotationEvent{
		ID:       id,
		BarberID: barberID,
		Kind:     kind,
		Count:    1,
		Date:     date,
		Month:    month,
	}

	if err := s.eventRepo.Append(event); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar evento da lista da vez")
	}

	return event, nil
}
