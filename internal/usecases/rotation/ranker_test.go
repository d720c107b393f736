package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

const testMonth = domain.MonthKey("2025-05")

func serviceEvent(barberID string, count int) domain.RotationEvent {
	return domain.RotationEvent{
		BarberID: barberID,
		Kind:     domain.EventServiceRecorded,
		Count:    count,
		Date:     time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Month:    testMonth,
	}
}

func passEvent(barberID string) domain.RotationEvent {
	return domain.RotationEvent{
		BarberID: barberID,
		Kind:     domain.EventTurnPassed,
		Count:    1,
		Date:     time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Month:    testMonth,
	}
}

func testBarbers() []domain.Barber {
	return []domain.Barber{
		{ID: "B001", Name: "Ana", Active: true},
		{ID: "B002", Name: "Bruno", Active: true},
		{ID: "B003", Name: "Carla", Active: true},
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name     string
		events   []domain.RotationEvent
		barbers  []domain.Barber
		options  Options
		validate func(t *testing.T, ranked []domain.RankedBarber)
	}{
		{
			name: "Barbeiro sem atividade fica em primeiro, vez passada conta como atendimento",
			events: []domain.RotationEvent{
				// Ana: 3 atendimentos
				serviceEvent("B001", 1),
				serviceEvent("B001", 1),
				serviceEvent("B001", 1),
				// Bruno: 1 atendimento + 1 vez passada = contagem 2
				serviceEvent("B002", 1),
				passEvent("B002"),
				// Carla: sem atividade
			},
			barbers: testBarbers(),
			options: DefaultOptions(),
			validate: func(t *testing.T, ranked []domain.RankedBarber) {
				assert.Len(t, ranked, 3)

				assert.Equal(t, "Carla", ranked[0].BarberName)
				assert.Equal(t, 0, ranked[0].TotalCount)
				assert.Equal(t, 1, ranked[0].Position)
				assert.True(t, ranked[0].IsBarberDue)

				assert.Equal(t, "Bruno", ranked[1].BarberName)
				assert.Equal(t, 2, ranked[1].TotalCount)
				assert.Equal(t, 1, ranked[1].DaysPassed)
				assert.False(t, ranked[1].IsBarberDue)

				assert.Equal(t, "Ana", ranked[2].BarberName)
				assert.Equal(t, 3, ranked[2].TotalCount)
				assert.False(t, ranked[2].IsBarberDue)
			},
		},
		{
			name:    "Mês sem eventos deixa todos empatados e todos da vez",
			events:  []domain.RotationEvent{},
			barbers: testBarbers(),
			options: DefaultOptions(),
			validate: func(t *testing.T, ranked []domain.RankedBarber) {
				assert.Len(t, ranked, 3)
				for _, barber := range ranked {
					assert.True(t, barber.IsBarberDue)
					assert.Equal(t, 0, barber.TotalCount)
				}
				// Desempate alfabético
				assert.Equal(t, "Ana", ranked[0].BarberName)
				assert.Equal(t, "Bruno", ranked[1].BarberName)
				assert.Equal(t, "Carla", ranked[2].BarberName)
			},
		},
		{
			name: "Empate na menor contagem marca todos os empatados como da vez",
			events: []domain.RotationEvent{
				serviceEvent("B001", 1),
				serviceEvent("B002", 1),
				serviceEvent("B003", 1),
				serviceEvent("B003", 1),
			},
			barbers: testBarbers(),
			options: DefaultOptions(),
			validate: func(t *testing.T, ranked []domain.RankedBarber) {
				assert.True(t, ranked[0].IsBarberDue)
				assert.True(t, ranked[1].IsBarberDue)
				assert.False(t, ranked[2].IsBarberDue)
				assert.Equal(t, "Carla", ranked[2].BarberName)
			},
		},
		{
			name: "Barbeiro inativo fica fora da lista",
			events: []domain.RotationEvent{
				serviceEvent("B001", 1),
			},
			barbers: []domain.Barber{
				{ID: "B001", Name: "Ana", Active: true},
				{ID: "B002", Name: "Bruno", Active: false},
			},
			options: DefaultOptions(),
			validate: func(t *testing.T, ranked []domain.RankedBarber) {
				assert.Len(t, ranked, 1)
				assert.Equal(t, "Ana", ranked[0].BarberName)
			},
		},
		{
			name: "Eventos de outro mês são ignorados",
			events: []domain.RotationEvent{
				serviceEvent("B001", 1),
				{
					BarberID: "B002",
					Kind:     domain.EventServiceRecorded,
					Count:    5,
					Date:     time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
					Month:    domain.MonthKey("2025-04"),
				},
			},
			barbers: testBarbers(),
			options: DefaultOptions(),
			validate: func(t *testing.T, ranked []domain.RankedBarber) {
				// Bruno não acumula contagem do mês anterior
				assert.Equal(t, "Bruno", ranked[0].BarberName)
				assert.Equal(t, 0, ranked[0].TotalCount)
				assert.Equal(t, "Ana", ranked[2].BarberName)
				assert.Equal(t, 1, ranked[2].TotalCount)
			},
		},
		{
			name: "Vez passada não soma quando a configuração desliga a regra",
			events: []domain.RotationEvent{
				passEvent("B001"),
				passEvent("B001"),
				serviceEvent("B002", 1),
			},
			barbers: testBarbers(),
			options: Options{CountPassedTurns: false, TieBreak: TieBreakName},
			validate: func(t *testing.T, ranked []domain.RankedBarber) {
				assert.Equal(t, "Ana", ranked[0].BarberName)
				assert.Equal(t, 0, ranked[0].TotalCount)
				assert.Equal(t, 2, ranked[0].DaysPassed)
			},
		},
		{
			name: "Desempate por menos vezes passadas quando configurado",
			events: []domain.RotationEvent{
				// Ana e Bruno empatados em 2; Ana passou a vez duas vezes
				passEvent("B001"),
				passEvent("B001"),
				serviceEvent("B002", 1),
				serviceEvent("B002", 1),
				serviceEvent("B003", 1),
				serviceEvent("B003", 1),
				serviceEvent("B003", 1),
			},
			barbers: testBarbers(),
			options: Options{CountPassedTurns: true, TieBreak: TieBreakFewestPasses},
			validate: func(t *testing.T, ranked []domain.RankedBarber) {
				assert.Equal(t, "Bruno", ranked[0].BarberName)
				assert.Equal(t, "Ana", ranked[1].BarberName)
				assert.Equal(t, "Carla", ranked[2].BarberName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.events, tt.barbers, testMonth, tt.options)
			tt.validate(t, ranked)
		})
	}
}

func TestRank_Deterministic(t *testing.T) {
	events := []domain.RotationEvent{
		serviceEvent("B001", 1),
		passEvent("B002"),
		serviceEvent("B003", 1),
		serviceEvent("B003", 1),
	}
	barbers := testBarbers()

	first := Rank(events, barbers, testMonth, DefaultOptions())
	second := Rank(events, barbers, testMonth, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestRank_MoreWorkNeverImprovesPosition(t *testing.T) {
	events := []domain.RotationEvent{
		serviceEvent("B001", 1),
		serviceEvent("B002", 1),
		serviceEvent("B002", 1),
		serviceEvent("B003", 1),
	}
	barbers := testBarbers()

	before := Rank(events, barbers, testMonth, DefaultOptions())
	after := Rank(append(events, serviceEvent("B001", 1)), barbers, testMonth, DefaultOptions())

	positionBefore := findPosition(t, before, "B001")
	positionAfter := findPosition(t, after, "B001")

	assert.GreaterOrEqual(t, positionAfter, positionBefore,
		"barbeiro que ganha atendimento nunca melhora de posição")
}

func findPosition(t *testing.T, ranked []domain.RankedBarber, barberID string) int {
	t.Helper()
	for _, barber := range ranked {
		if barber.BarberID == barberID {
			return barber.Position
		}
	}
	t.Fatalf("barbeiro %s não encontrado no ranking", barberID)
	return 0
}

func TestTally_CompensatingEvents(t *testing.T) {
	// Correções são eventos novos, nunca alterações: um atendimento lançado
	// errado é compensado com count negativo
	events := []domain.RotationEvent{
		serviceEvent("B001", 1),
		serviceEvent("B001", 1),
		serviceEvent("B001", -1),
	}

	tallies := Tally(events, testMonth, DefaultOptions())
	assert.Equal(t, 1, tallies["B001"].TotalCount)
}
