package domain

import "time"

// WizardState состояние диалога заказа выходных
// Переходы между состояниями описаны в service/wizard; любое состояние
// сбрасывается в idle командами cancel/start
type WizardState string

const (
	StateIdle               WizardState = "idle"
	StateSelectingLocation  WizardState = "selecting_location"
	StateSelectingRole      WizardState = "selecting_role"
	StateEnteringFullName   WizardState = "entering_fullname"
	StateEnteringEmployeeID WizardState = "entering_employee_id"
	StateSelectingDates     WizardState = "selecting_dates"
	StateConfirming         WizardState = "confirming"
)

// WizardDraft черновик заявки, собираемый мастером по шагам
// Черновик живет только в памяти сессии и уничтожается при submit/cancel
type WizardDraft struct {
	Location      Location
	Role          Role
	FullName      string
	EmployeeID    string
	SelectedDates []time.Time
}

// HasDate returns true if the date is already selected in the draft
func (d *WizardDraft) HasDate(date time.Time) bool {
	for _, sel := range d.SelectedDates {
		if SameDate(sel, date) {
			return true
		}
	}
	return false
}

// DatesFull returns true if the draft already holds the maximum number of dates
func (d *WizardDraft) DatesFull() bool {
	return len(d.SelectedDates) >= MaxSelectedDates
}
