package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/appointment"
	directoryRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/directory"
	"github.com/m04kA/BRB-SchedulingService/pkg/civiltime"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// UseCase use case для создания записи к барберу
type UseCase struct {
	appointmentRepo AppointmentRepository
	directoryRepo   DirectoryRepository
	txManager       TransactionManager
	hours           BusinessHours
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directoryRepo DirectoryRepository,
	txManager TransactionManager,
	hours BusinessHours,
	metricsRecorder MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directoryRepo:   directoryRepo,
		txManager:       txManager,
		hours:           hours,
		metrics:         metricsRecorder,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
//
// Проверка пересечений внутри транзакции - оптимизация, дающая раннее
// качественное сообщение об ошибке. Финальный арбитр - exclusion constraint
// appointments_no_overlap: два конкурентных запроса могут пройти
// предварительную проверку, но вставку выиграет ровно один, второй получит
// тот же типизированный отказ ErrSlotNotAvailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: barber=%s, service=%s, date=%s, time=%s",
		req.BarberID, req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	clientName, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем барбера, к которому записываемся
	barber, err := uc.directoryRepo.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("CreateAppointment: barber id=%s is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 3. Получаем услугу
	service, err := uc.directoryRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Нормализуем гражданское время запроса в абсолютный момент
	zone := req.Timezone
	if zone == "" {
		zone = uc.hours.Timezone
	}

	startsAt, err := civiltime.ToAbsolute(req.Date, req.StartTime, zone)
	if err != nil {
		uc.logger.Warn("CreateAppointment: time normalization failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeInput, err)
	}
	endsAt := startsAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// 5. Проверяем рабочие часы (только время начала; запись может
	// закончиться после закрытия)
	startClock, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateAppointment: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeInput, err)
	}
	if err := civiltime.ValidateBusinessHours(startClock, uc.hours.OpenHour, uc.hours.CloseHour); err != nil {
		uc.logger.Warn("CreateAppointment: %s is outside business hours %02d:00-%02d:00",
			startClock, uc.hours.OpenHour, uc.hours.CloseHour)
		return nil, fmt.Errorf("%w: %v", ErrOutsideBusinessHours, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем проверку пересечений и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Предварительная проверка пересечений с блокировкой (FOR UPDATE)
		overlapping, err := uc.appointmentRepo.FindOverlapping(txCtx, req.BarberID, startsAt, endsAt, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to find overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to find overlapping appointments: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			conflict := overlapping[0]
			uc.logger.Warn("CreateAppointment: slot taken for barber=%s, conflict=%s - %s",
				req.BarberID, conflict.StartsAt.Format(time.RFC3339), conflict.EndsAt.Format(time.RFC3339))
			uc.metrics.IncSchedulingConflict("precheck")
			return &SlotTakenError{
				ConflictStart: conflict.StartsAt,
				ConflictEnd:   conflict.EndsAt,
				HasConflict:   true,
			}
		}

		// 6.2. Создаем запись со снапшотом данных услуги
		appt := &domain.Appointment{
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			ClientName:      clientName,
			ClientPhone:     req.ClientPhone,
			StartsAt:        startsAt,
			EndsAt:          endsAt,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			// Денормализация данных услуги
			ServiceName: service.Name,
			PriceCents:  service.PriceCents,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		// Гонка, проигранная на constraint базы, переводится в тот же отказ,
		// что и предварительная проверка
		if errors.Is(err, appointmentRepo.ErrOverlapConstraint) {
			uc.logger.Warn("CreateAppointment: insert rejected by no-overlap constraint, barber=%s", req.BarberID)
			uc.metrics.IncSchedulingConflict("constraint")
			return nil, uc.slotTakenFromConstraint(ctx, req, startsAt, endsAt)
		}
		var slotErr *SlotTakenError
		if errors.As(err, &slotErr) {
			return nil, slotErr
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)
	uc.metrics.IncAppointmentCreated(result.BarberID.String())

	return &Response{
		ID:              result.ID,
		BarberID:        result.BarberID,
		ServiceID:       result.ServiceID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		StartsAt:        result.StartsAt,
		EndsAt:          result.EndsAt,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		PriceCents:      result.PriceCents,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// slotTakenFromConstraint восстанавливает интервал конфликтующей записи после
// отказа constraint'а. Повторный запрос выполняется вне транзакции и может
// ничего не найти (например, конкурента уже отменили) - тогда интервал
// в ошибке отсутствует.
func (uc *UseCase) slotTakenFromConstraint(ctx context.Context, req *Request, start, end time.Time) error {
	overlapping, err := uc.appointmentRepo.FindOverlapping(ctx, req.BarberID, start, end, nil)
	if err != nil || len(overlapping) == 0 {
		return &SlotTakenError{}
	}

	conflict := overlapping[0]
	return &SlotTakenError{
		ConflictStart: conflict.StartsAt,
		ConflictEnd:   conflict.EndsAt,
		HasConflict:   true,
	}
}
