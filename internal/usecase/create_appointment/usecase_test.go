package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/appointment"
	directoryRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/directory"
	"github.com/m04kA/BRB-SchedulingService/pkg/ptr"
)

// --- фейки ---

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	// lateExisting записи, видимые только после первого FindOverlapping -
	// имитация конкурента, успевшего вставиться между пре-чеком и Create
	lateExisting []*domain.Appointment
	findCalls    int
	createErr    error
	created      *domain.Appointment
}

func (f *fakeAppointmentRepo) FindOverlapping(_ context.Context, barberID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*domain.Appointment, error) {
	f.findCalls++
	visible := f.existing
	if f.findCalls > 1 {
		visible = append(visible, f.lateExisting...)
	}

	result := make([]*domain.Appointment, 0)
	for _, appt := range visible {
		if appt.BarberID != barberID || !appt.IsActive() {
			continue
		}
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		if appt.Overlaps(start, end) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = uuid.New()
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	f.existing = append(f.existing, appt)
	return appt, nil
}

type fakeDirectoryRepo struct {
	barbers  map[uuid.UUID]*domain.Barber
	services map[uuid.UUID]*domain.Service
}

func (f *fakeDirectoryRepo) GetBarberByID(_ context.Context, id uuid.UUID) (*domain.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, directoryRepo.ErrBarberNotFound
}

func (f *fakeDirectoryRepo) GetServiceByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, directoryRepo.ErrServiceNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) IncAppointmentCreated(string) {}
func (nopMetrics) IncSchedulingConflict(string) {}

// --- хелперы ---

const testZone = "America/Sao_Paulo"

var defaultHours = BusinessHours{OpenHour: 9, CloseHour: 18, Timezone: testZone}

type fixture struct {
	uc        *UseCase
	repo      *fakeAppointmentRepo
	barberID  uuid.UUID
	serviceID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	barberID := uuid.New()
	serviceID := uuid.New()

	repo := &fakeAppointmentRepo{}
	dir := &fakeDirectoryRepo{
		barbers: map[uuid.UUID]*domain.Barber{
			barberID: {ID: barberID, Name: "Alex", Active: true},
		},
		services: map[uuid.UUID]*domain.Service{
			serviceID: {ID: serviceID, Name: "Haircut", DurationMinutes: 30, PriceCents: 5000, Active: true},
		},
	}

	return &fixture{
		uc:        NewUseCase(repo, dir, fakeTxManager{}, defaultHours, nopMetrics{}, nopLogger{}),
		repo:      repo,
		barberID:  barberID,
		serviceID: serviceID,
	}
}

func (f *fixture) request() *Request {
	return &Request{
		BarberID:   f.barberID,
		ServiceID:  f.serviceID,
		ClientName: "João",
		Date:       "2025-10-15",
		StartTime:  "10:00",
	}
}

// mustLocal возвращает UTC-момент для wall-clock времени в тестовой зоне
func mustLocal(t *testing.T, clock string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(testZone)
	require.NoError(t, err)
	parsed, err := time.ParseInLocation("2006-01-02 15:04", "2025-10-15 "+clock, loc)
	require.NoError(t, err)
	return parsed.UTC()
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, mustLocal(t, "10:00"), resp.StartsAt)
	assert.Equal(t, mustLocal(t, "10:30"), resp.EndsAt)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, int64(5000), resp.PriceCents)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	require.NotNil(t, f.repo.created)
	assert.Equal(t, domain.StatusScheduled, f.repo.created.Status)
}

func TestExecute_TrimsClientName(t *testing.T) {
	f := newFixture(t)
	req := f.request()
	req.ClientName = "  Maria  "

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Maria", resp.ClientName)
}

func TestExecute_SlotTaken_MidOverlap(t *testing.T) {
	f := newFixture(t)

	// Существующая запись 10:00-10:30 по местному времени
	f.repo.existing = append(f.repo.existing, &domain.Appointment{
		ID:       uuid.New(),
		BarberID: f.barberID,
		StartsAt: mustLocal(t, "10:00"),
		EndsAt:   mustLocal(t, "10:30"),
		Status:   domain.StatusScheduled,
	})

	req := f.request()
	req.StartTime = "10:15"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var slotErr *SlotTakenError
	require.ErrorAs(t, err, &slotErr)
	assert.True(t, slotErr.HasConflict)
	assert.Equal(t, mustLocal(t, "10:00"), slotErr.ConflictStart)
	assert.Equal(t, mustLocal(t, "10:30"), slotErr.ConflictEnd)
}

func TestExecute_BackToBackSucceeds(t *testing.T) {
	f := newFixture(t)

	f.repo.existing = append(f.repo.existing, &domain.Appointment{
		ID:       uuid.New(),
		BarberID: f.barberID,
		StartsAt: mustLocal(t, "10:00"),
		EndsAt:   mustLocal(t, "10:30"),
		Status:   domain.StatusScheduled,
	})

	// Интервалы полуоткрытые: запись ровно в ends_at предыдущей не конфликтует
	req := f.request()
	req.StartTime = "10:30"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, mustLocal(t, "10:30"), resp.StartsAt)
}

func TestExecute_OneMinuteEarlierFails(t *testing.T) {
	f := newFixture(t)

	f.repo.existing = append(f.repo.existing, &domain.Appointment{
		ID:       uuid.New(),
		BarberID: f.barberID,
		StartsAt: mustLocal(t, "10:00"),
		EndsAt:   mustLocal(t, "10:30"),
		Status:   domain.StatusScheduled,
	})

	req := f.request()
	req.StartTime = "10:29"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture(t)

	f.repo.existing = append(f.repo.existing, &domain.Appointment{
		ID:       uuid.New(),
		BarberID: f.barberID,
		StartsAt: mustLocal(t, "10:00"),
		EndsAt:   mustLocal(t, "10:30"),
		Status:   domain.StatusCancelled,
	})

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.NoError(t, err)
}

func TestExecute_BusinessHours(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		wantErr   error
	}{
		{name: "at open", startTime: "09:00"},
		{name: "exactly at close", startTime: "18:00"},
		{name: "one minute past close", startTime: "18:01", wantErr: ErrOutsideBusinessHours},
		{name: "before open", startTime: "08:59", wantErr: ErrOutsideBusinessHours},
		{name: "late evening", startTime: "19:00", wantErr: ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := f.request()
			req.StartTime = tt.startTime

			_, err := f.uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecute_UnknownBarber(t *testing.T) {
	f := newFixture(t)
	req := f.request()
	req.BarberID = uuid.New()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_InactiveBarber(t *testing.T) {
	f := newFixture(t)
	inactiveID := uuid.New()

	dir := &fakeDirectoryRepo{
		barbers: map[uuid.UUID]*domain.Barber{
			inactiveID: {ID: inactiveID, Name: "Gone", Active: false},
		},
		services: map[uuid.UUID]*domain.Service{},
	}
	uc := NewUseCase(f.repo, dir, fakeTxManager{}, defaultHours, nopMetrics{}, nopLogger{})

	req := f.request()
	req.BarberID = inactiveID

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	f := newFixture(t)
	req := f.request()
	req.ServiceID = uuid.New()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_BlankClientName(t *testing.T) {
	f := newFixture(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		req := f.request()
		req.ClientName = name

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidClient)
	}
}

func TestExecute_InvalidTimeInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Request)
	}{
		{name: "bad date", modify: func(r *Request) { r.Date = "15/10/2025" }},
		{name: "bad time", modify: func(r *Request) { r.StartTime = "25:00" }},
		{name: "unknown timezone", modify: func(r *Request) { r.Timezone = "Mars/Olympus" }},
		{name: "empty date", modify: func(r *Request) { r.Date = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := f.request()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeInput)
		})
	}
}

func TestExecute_ConstraintRaceMapsToSlotTaken(t *testing.T) {
	f := newFixture(t)

	// Победивший гонку конкурент: пре-чек его еще не видит, вставка отклонена
	// constraint'ом, а повторный поиск пересечений уже находит его запись
	f.repo.createErr = appointmentRepo.ErrOverlapConstraint
	f.repo.lateExisting = append(f.repo.lateExisting, &domain.Appointment{
		ID:       uuid.New(),
		BarberID: f.barberID,
		StartsAt: mustLocal(t, "10:00"),
		EndsAt:   mustLocal(t, "10:30"),
		Status:   domain.StatusScheduled,
	})

	_, err := f.uc.Execute(context.Background(), f.request())
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var slotErr *SlotTakenError
	require.ErrorAs(t, err, &slotErr)
	assert.True(t, slotErr.HasConflict)
}

func TestExecute_ConstraintRaceWithoutRecoverableConflict(t *testing.T) {
	f := newFixture(t)
	f.repo.createErr = appointmentRepo.ErrOverlapConstraint

	_, err := f.uc.Execute(context.Background(), f.request())
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var slotErr *SlotTakenError
	require.ErrorAs(t, err, &slotErr)
	assert.False(t, slotErr.HasConflict)
}

func TestExecute_RepoFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	f.repo.createErr = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_DurationSnapshot(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)
	require.Equal(t, 30, resp.DurationMinutes)

	// Изменение длительности услуги в справочнике не должно влиять на уже
	// созданную запись - длительность снапшотится при бронировании
	assert.Equal(t, 30, f.repo.created.DurationMinutes)
	assert.Equal(t, resp.StartsAt.Add(30*time.Minute), f.repo.created.EndsAt)
}

func TestExecute_OptionalPhone(t *testing.T) {
	f := newFixture(t)
	req := f.request()
	req.ClientPhone = ptr.Ptr("51900000000")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.ClientPhone)
	assert.Equal(t, "51900000000", *resp.ClientPhone)
}
