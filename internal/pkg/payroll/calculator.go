// Package payroll derives gross and net pay from worked-hour categories.
package payroll

import (
	"fmt"
	"math"
)

// Rate multipliers per hour category
const (
	RegularMultiplier           = 1.00
	OvertimeMultiplier          = 1.25
	NightDifferentialMultiplier = 1.10
	SundayMultiplier            = 1.30
	SundayOvertimeMultiplier    = 1.69
	HolidayMultiplier           = 2.00
	HolidayOvertimeMultiplier   = 2.60
)

// Hours holds worked hours per category
type Hours struct {
	Regular           float64
	Overtime          float64
	NightDifferential float64
	Sunday            float64
	SundayOvertime    float64
	Holiday           float64
	HolidayOvertime   float64
}

// Deductions holds statutory and other deductions; zero means none
type Deductions struct {
	SSS        float64
	PhilHealth float64
	PagIBIG    float64
	Tax        float64
	Other      float64
}

// Total returns the sum of all deductions
func (d Deductions) Total() float64 {
	return d.SSS + d.PhilHealth + d.PagIBIG + d.Tax + d.Other
}

// Result is the outcome of a payroll computation
type Result struct {
	GrossPay        float64
	TotalDeductions float64
	NetPay          float64
}

// ValidationError reports an input that cannot be used in a computation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Gross computes gross pay for the given rate and hours
func Gross(rate float64, h Hours) (float64, error) {
	if err := ValidateRate(rate); err != nil {
		return 0, err
	}
	if err := ValidateHours(h); err != nil {
		return 0, err
	}

	gross := h.Regular*rate +
		h.Overtime*rate*OvertimeMultiplier +
		h.NightDifferential*rate*NightDifferentialMultiplier +
		h.Sunday*rate*SundayMultiplier +
		h.SundayOvertime*rate*SundayOvertimeMultiplier +
		h.Holiday*rate*HolidayMultiplier +
		h.HolidayOvertime*rate*HolidayOvertimeMultiplier

	return gross, nil
}

// Net computes net pay from gross pay and deductions
func Net(gross float64, d Deductions) float64 {
	return gross - d.Total()
}

// Calculate computes gross and net pay
func Calculate(rate float64, h Hours, d Deductions) (Result, error) {
	if err := ValidateDeductions(d); err != nil {
		return Result{}, err
	}

	gross, err := Gross(rate, h)
	if err != nil {
		return Result{}, err
	}

	return Result{
		GrossPay:        gross,
		TotalDeductions: d.Total(),
		NetPay:          Net(gross, d),
	}, nil
}

// ValidateRate checks that the rate is a finite positive number
func ValidateRate(rate float64) error {
	if !finite(rate) || rate <= 0 {
		return &ValidationError{Field: "rate", Reason: "must be greater than 0"}
	}
	return nil
}

// ValidateHours checks that every hour category is finite and non-negative
func ValidateHours(h Hours) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"regularHours", h.Regular},
		{"overtimeHours", h.Overtime},
		{"nightDifferentialHours", h.NightDifferential},
		{"sundayHours", h.Sunday},
		{"sundayOvertimeHours", h.SundayOvertime},
		{"holidayHours", h.Holiday},
		{"holidayOvertimeHours", h.HolidayOvertime},
	}
	for _, f := range fields {
		if !finite(f.value) || f.value < 0 {
			return &ValidationError{Field: f.name, Reason: "must be 0 or greater"}
		}
	}
	return nil
}

// ValidateDeductions checks that every deduction is finite and non-negative
func ValidateDeductions(d Deductions) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"deductions.sss", d.SSS},
		{"deductions.philhealth", d.PhilHealth},
		{"deductions.pagibig", d.PagIBIG},
		{"deductions.tax", d.Tax},
		{"deductions.other", d.Other},
	}
	for _, f := range fields {
		if !finite(f.value) || f.value < 0 {
			return &ValidationError{Field: f.name, Reason: "must be 0 or greater"}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
