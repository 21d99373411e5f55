package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/models"
)

var ErrUnknownFinancialField = errors.New("unknown financial field")

const (
	FieldRentDueThisWeek = "rentDueThisWeek"
	FieldTotalPaid       = "totalPaid"
	FieldTotalOwed       = "totalOwed"
)

// CoerceAmount turns free-form numeric input into a usable amount. Empty
// input means zero, and anything unparseable also collapses to zero so a
// stray keystroke can never plant NaN in a resident's ledger.
func CoerceAmount(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ApplyFinancialField produces a replacement record with one of the three
// numeric ledger fields updated. Any other field name is rejected; the
// manager edits finances field by field, never arbitrary attributes.
func ApplyFinancialField(user models.User, field string, raw string) (models.User, error) {
	amount := CoerceAmount(raw)
	updated := user.Clone()
	switch field {
	case FieldRentDueThisWeek:
		updated.RentDueThisWeek = amount
	case FieldTotalPaid:
		updated.TotalPaid = amount
	case FieldTotalOwed:
		updated.TotalOwed = amount
	default:
		return models.User{}, ErrUnknownFinancialField
	}
	return updated, nil
}
