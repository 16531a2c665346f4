package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// BusinessHours политика рабочих часов для проверки времени начала записи
type BusinessHours struct {
	OpenHour  int    // Час открытия (0-23)
	CloseHour int    // Час закрытия; последний бронируемый момент - ровно CloseHour:00
	Timezone  string // Зона по умолчанию, если клиент не передал свою
}

// Request модель запроса на создание записи
type Request struct {
	BarberID    uuid.UUID // ID барбера
	ServiceID   uuid.UUID // ID услуги
	ClientName  string    // Имя клиента
	ClientPhone *string   // Телефон клиента (опционально)
	Date        string    // Гражданская дата "YYYY-MM-DD"
	StartTime   string    // Время начала "HH:MM"
	Timezone    string    // Таймзона запроса (опционально, иначе зона сервиса)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          uuid.UUID
	BarberID    uuid.UUID
	ServiceID   uuid.UUID
	ClientName  string
	ClientPhone *string

	StartsAt        time.Time // Абсолютный момент начала (UTC)
	EndsAt          time.Time // Абсолютный момент конца (UTC)
	DurationMinutes int
	Status          string

	// Денормализованные данные услуги
	ServiceName string
	PriceCents  int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
