package domain

// Business validation constants
const (
	MinFullNameLength   = 3
	MinEmployeeIDLength = 3
	MaxEmployeeIDLength = 10

	// MaxSelectedDates максимум дат в одной заявке на выходные
	MaxSelectedDates = 2

	MinDailyQuota = 0
	MaxDailyQuota = 100

	// MaxWindowDays максимальное окно поиска свободных дат
	MaxWindowDays     = 90
	DefaultWindowDays = 30
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
