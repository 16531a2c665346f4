package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/appointment"
	directoryRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/directory"
	"github.com/m04kA/BRB-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/BRB-SchedulingService/pkg/civiltime"
)

// Service сервис для чтения агенды и управления жизненным циклом записей
type Service struct {
	appointmentRepo AppointmentRepository
	directoryRepo   DirectoryRepository
	defaultTimezone string
	metrics         MetricsRecorder
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	directoryRepo DirectoryRepository,
	defaultTimezone string,
	metricsRecorder MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		directoryRepo:   directoryRepo,
		defaultTimezone: defaultTimezone,
		metrics:         metricsRecorder,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetDayAgenda возвращает записи барбера на гражданскую дату по возрастанию
// времени начала. День без записей - пустой список, не ошибка.
//
// Абсолютное окно дня: [00:00:00, 23:59:59] в запрошенной зоне, обе границы
// включительно.
func (s *Service) GetDayAgenda(ctx context.Context, req *models.GetAgendaRequest) (*models.AgendaResponse, error) {
	zone := req.Timezone
	if zone == "" {
		zone = s.defaultTimezone
	}

	s.logger.Info("GetDayAgenda: barber=%s, date=%s, zone=%s", req.BarberID, req.Date, zone)

	if req.BarberID == uuid.Nil {
		return nil, fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}

	// Существование барбера проверяем явно, чтобы отличать "нет записей"
	// от "нет такого барбера"
	if _, err := s.directoryRepo.GetBarberByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, directoryRepo.ErrBarberNotFound) {
			s.logger.Warn("GetDayAgenda: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetDayAgenda: directory error for barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetDayAgenda - directory error: %v", ErrInternal, err)
	}

	from, err := civiltime.StartOfDay(req.Date, zone)
	if err != nil {
		s.logger.Warn("GetDayAgenda: invalid window start: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeInput, err)
	}

	to, err := civiltime.EndOfDay(req.Date, zone)
	if err != nil {
		s.logger.Warn("GetDayAgenda: invalid window end: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeInput, err)
	}

	filter := domain.AgendaFilter{
		BarberID:         req.BarberID,
		From:             from,
		To:               to,
		IncludeCancelled: true, // Агенда показывает и отмененные записи (история дня)
	}

	list, err := s.appointmentRepo.GetByBarberAndRange(ctx, filter)
	if err != nil {
		s.logger.Error("GetDayAgenda: repository error for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetDayAgenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayAgenda: fetched %d appointments for barber=%s, date=%s", len(list), req.BarberID, req.Date)

	return &models.AgendaResponse{
		BarberID:     req.BarberID,
		Date:         req.Date,
		Timezone:     zone,
		Appointments: models.FromDomainAppointmentList(list),
	}, nil
}

// Advance переводит запись в терминальный статус (done или cancelled).
// Разрешены только переходы из scheduled; повторный перевод терминальной
// записи возвращает ErrInvalidTransition. Никакие другие поля при переходе
// не меняются; отмененные записи остаются в хранилище как история.
func (s *Service) Advance(ctx context.Context, id uuid.UUID, req *models.AdvanceRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Advance: appointment id=%s, target=%s", id, req.Target)

	target, ok := domain.ParseAppointmentStatus(req.Target)
	if !ok || target == domain.StatusScheduled {
		s.logger.Warn("Advance: invalid target status %q for appointment id=%s", req.Target, id)
		return nil, fmt.Errorf("%w: target must be %q or %q", ErrInvalidInput, domain.StatusDone, domain.StatusCancelled)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Advance: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Advance: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Advance - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(target) {
		s.logger.Warn("Advance: transition %s -> %s is not allowed for appointment id=%s",
			appt.Status, target, id)
		return nil, ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, target); err != nil {
		// UpdateStatus обновляет только записи в статусе scheduled: если строк
		// не найдено, конкурентный запрос успел перевести запись первым
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Advance: appointment id=%s already transitioned concurrently", id)
			return nil, ErrInvalidTransition
		}
		s.logger.Error("Advance: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Advance - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Advance: appointment id=%s transitioned to %s", id, target)
	s.metrics.IncStatusTransition(string(target))

	appt.Status = target
	return models.FromDomainAppointment(appt), nil
}
