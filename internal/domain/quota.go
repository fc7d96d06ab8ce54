package domain

import "time"

// QuotaConfig дневная квота выходных для пары (локация, должность)
// Задает total при первом материализации счётчика на конкретную дату
type QuotaConfig struct {
	Location   Location
	Role       Role
	DailyQuota int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuotaCounter счётчик занятых мест на (локация, дата, должность)
// Инвариант: 0 <= Used <= Total; Available всегда вычисляется как Total - Used
type QuotaCounter struct {
	Location Location
	Role     Role
	Date     time.Time
	Total    int
	Used     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Available returns the number of remaining spots for the counter's date
func (c *QuotaCounter) Available() int {
	return c.Total - c.Used
}

// IsExhausted returns true if no spots remain
func (c *QuotaCounter) IsExhausted() bool {
	return c.Available() <= 0
}

// RoleStats агрегированная статистика по должности для админ-панели
type RoleStats struct {
	DailyQuota     int
	TotalUsed      int
	TotalAvailable int
}

// LocationStats статистика по всем должностям одной локации
type LocationStats struct {
	Location Location
	Roles    map[Role]RoleStats
}

// SameDate проверяет, что два значения времени относятся к одной календарной дате
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет компонент времени, оставляя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
