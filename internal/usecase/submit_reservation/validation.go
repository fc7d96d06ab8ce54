package submit_reservation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

func validateRequest(req Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if len([]rune(strings.TrimSpace(req.FullName))) < domain.MinFullNameLength {
		return fmt.Errorf("%w: full name must contain at least %d characters", ErrInvalidInput, domain.MinFullNameLength)
	}

	if err := validateEmployeeID(req.EmployeeID); err != nil {
		return err
	}

	if _, ok := domain.ParseLocation(string(req.Location)); !ok {
		return fmt.Errorf("%w: unknown location %q", ErrInvalidInput, req.Location)
	}

	if _, ok := domain.ParseRole(string(req.Role)); !ok {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}
	if len(req.Dates) > domain.MaxSelectedDates {
		return fmt.Errorf("%w: at most %d dates are allowed", ErrInvalidInput, domain.MaxSelectedDates)
	}

	seen := make(map[string]struct{}, len(req.Dates))
	for _, d := range req.Dates {
		key := d.Format(domain.DateFormat)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: date %s is selected twice", ErrInvalidInput, key)
		}
		seen[key] = struct{}{}
	}

	return nil
}

func validateEmployeeID(id string) error {
	if len(id) < domain.MinEmployeeIDLength || len(id) > domain.MaxEmployeeIDLength {
		return fmt.Errorf("%w: employee id length must be in range %d..%d",
			ErrInvalidInput, domain.MinEmployeeIDLength, domain.MaxEmployeeIDLength)
	}
	for _, r := range id {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: employee id must contain digits only", ErrInvalidInput)
		}
	}
	return nil
}
