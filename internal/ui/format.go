package ui

import (
	"fmt"

	"github.com/mrenard/pointage/internal/model"
)

// French day and month names for the long date headline.
var (
	frenchDays = [...]string{
		"dimanche", "lundi", "mardi", "mercredi",
		"jeudi", "vendredi", "samedi",
	}
	frenchMonths = [...]string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	}
)

// FrenchDate renders a day as "jeudi 07 mars 2024".
func FrenchDate(d model.QuizzDate) string {
	t := d.ToDate()
	return fmt.Sprintf("%s %02d %s %04d",
		frenchDays[int(t.Weekday())],
		d.Day,
		frenchMonths[d.Month],
		d.Year,
	)
}
