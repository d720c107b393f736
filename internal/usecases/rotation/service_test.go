package rotation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/barber-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/barber-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Data de referência dos testes: 16 de maio de 2025
var testNow = time.Date(2025, 5, 16, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockBarberRepository, *mocks.MockRotationEventRepository) {
	ctrl := gomock.NewController(t)

	barberRepo := mocks.NewMockBarberRepository(ctrl)
	eventRepo := mocks.NewMockRotationEventRepository(ctrl)

	service := NewService(barberRepo, eventRepo, DefaultOptions())
	service.now = func() time.Time { return testNow }

	return service, barberRepo, eventRepo
}

func TestService_GetQueue(t *testing.T) {
	service, barberRepo, eventRepo := newTestService(t)

	month := domain.MonthKey("2025-05")

	barberRepo.EXPECT().
		ListBarbers(true).
		Return(testBarbers(), nil)

	eventRepo.EXPECT().
		ListByMonth(month).
		Return([]domain.RotationEvent{
			serviceEvent("B001", 1),
			passEvent("B002"),
		}, nil)

	queue, err := service.GetQueue(month)

	assert.NoError(t, err)
	assert.Equal(t, month, queue.Month)
	assert.Equal(t, testNow, queue.GeneratedAt)
	assert.Len(t, queue.Queue, 3)
	assert.Equal(t, "Carla", queue.Queue[0].BarberName)
	assert.True(t, queue.Queue[0].IsBarberDue)
}

func TestService_GetQueue_RepositoryError(t *testing.T) {
	service, barberRepo, _ := newTestService(t)

	barberRepo.EXPECT().
		ListBarbers(true).
		Return(nil, errors.New("conexão recusada"))

	queue, err := service.GetQueue(domain.MonthKey("2025-05"))

	assert.Error(t, err)
	assert.Nil(t, queue)
}

func TestService_RecordService(t *testing.T) {
	tests := []struct {
		name     string
		barberID string
		date     time.Time
		setup    func(barberRepo *mocks.MockBarberRepository, eventRepo *mocks.MockRotationEventRepository)
		validate func(t *testing.T, event *domain.RotationEvent, err error)
	}{
		{
			name:     "Atendimento registrado com sucesso",
			barberID: "B001",
			date:     testNow,
			setup: func(barberRepo *mocks.MockBarberRepository, eventRepo *mocks.MockRotationEventRepository) {
				barberRepo.EXPECT().
					GetByID("B001").
					Return(&domain.Barber{ID: "B001", Name: "Ana", Active: true}, nil)

				eventRepo.EXPECT().
					Append(gomock.Any()).
					DoAndReturn(func(event *domain.RotationEvent) error {
						assert.NotEmpty(t, event.ID)
						assert.Equal(t, domain.EventServiceRecorded, event.Kind)
						assert.Equal(t, 1, event.Count)
						assert.Equal(t, domain.MonthKey("2025-05"), event.Month)
						return nil
					})
			},
			validate: func(t *testing.T, event *domain.RotationEvent, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "B001", event.BarberID)
			},
		},
		{
			name:     "Data zerada usa o dia corrente",
			barberID: "B001",
			date:     time.Time{},
			setup: func(barberRepo *mocks.MockBarberRepository, eventRepo *mocks.MockRotationEventRepository) {
				barberRepo.EXPECT().
					GetByID("B001").
					Return(&domain.Barber{ID: "B001", Name: "Ana", Active: true}, nil)

				eventRepo.EXPECT().
					Append(gomock.Any()).
					DoAndReturn(func(event *domain.RotationEvent) error {
						assert.Equal(t, testNow, event.Date)
						return nil
					})
			},
			validate: func(t *testing.T, event *domain.RotationEvent, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:     "Barbeiro inexistente",
			barberID: "B999",
			date:     testNow,
			setup: func(barberRepo *mocks.MockBarberRepository, eventRepo *mocks.MockRotationEventRepository) {
				barberRepo.EXPECT().
					GetByID("B999").
					Return(nil, nil)
			},
			validate: func(t *testing.T, event *domain.RotationEvent, err error) {
				assert.ErrorIs(t, err, ErrBarberNotFound)
				assert.Nil(t, event)
			},
		},
		{
			name:     "Barbeiro inativo",
			barberID: "B002",
			date:     testNow,
			setup: func(barberRepo *mocks.MockBarberRepository, eventRepo *mocks.MockRotationEventRepository) {
				barberRepo.EXPECT().
					GetByID("B002").
					Return(&domain.Barber{ID: "B002", Name: "Bruno", Active: false}, nil)
			},
			validate: func(t *testing.T, event *domain.RotationEvent, err error) {
				assert.ErrorIs(t, err, ErrBarberInactive)
				assert.Nil(t, event)
			},
		},
		{
			name:     "Data fora do mês corrente é rejeitada",
			barberID: "B001",
			date:     time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
			setup:    func(barberRepo *mocks.MockBarberRepository, eventRepo *mocks.MockRotationEventRepository) {},
			validate: func(t *testing.T, event *domain.RotationEvent, err error) {
				assert.ErrorIs(t, err, ErrInvalidMonth)
				assert.Nil(t, event)
			},
		},
		{
			name:     "Identificador vazio é rejeitado",
			barberID: "",
			date:     testNow,
			setup:    func(barberRepo *mocks.MockBarberRepository, eventRepo *mocks.MockRotationEventRepository) {},
			validate: func(t *testing.T, event *domain.RotationEvent, err error) {
				assert.ErrorIs(t, err, ErrBarberIDMissing)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, barberRepo, eventRepo := newTestService(t)
			tt.setup(barberRepo, eventRepo)

			event, err := service.RecordService(tt.barberID, tt.date)
			tt.validate(t, event, err)
		})
	}
}

func TestService_PassTurn(t *testing.T) {
	service, barberRepo, eventRepo := newTestService(t)

	barberRepo.EXPECT().
		GetByID("B001").
		Return(&domain.Barber{ID: "B001", Name: "Ana", Active: true}, nil)

	eventRepo.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(event *domain.RotationEvent) error {
			assert.Equal(t, domain.EventTurnPassed, event.Kind)
			assert.Equal(t, 1, event.Count)
			return nil
		})

	event, err := service.PassTurn("B001", testNow)

	assert.NoError(t, err)
	assert.Equal(t, domain.EventTurnPassed, event.Kind)
}

func TestService_DuplicateCallsProduceDuplicateEvents(t *testing.T) {
	// A engine não deduplica: duas chamadas geram dois eventos e inflam a
	// contagem, cabendo ao chamador controlar repetições
	service, barberRepo, eventRepo := newTestService(t)

	barberRepo.EXPECT().
		GetByID("B001").
		Return(&domain.Barber{ID: "B001", Name: "Ana", Active: true}, nil).
		Times(2)

	appended := make([]*domain.RotationEvent, 0, 2)
	eventRepo.EXPECT().
		Append(gomock.Any()).
		DoAndReturn(func(event *domain.RotationEvent) error {
			appended = append(appended, event)
			return nil
		}).
		Times(2)

	first, err := service.RecordService("B001", testNow)
	assert.NoError(t, err)
	second, err := service.RecordService("B001", testNow)
	assert.NoError(t, err)

	assert.Len(t, appended, 2)
	assert.NotEqual(t, first.ID, second.ID)
}
