package contract

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// formatBRL renders a monetary value as pt-BR currency, rounded to cents.
// Formatting is hand-rolled so output never depends on locale data.
func formatBRL(value float64) string {
	cents := int64(math.Round(value * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	reais := cents / 100
	rest := cents % 100

	digits := fmt.Sprintf("%d", reais)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("%sR$ %s,%02d", sign, strings.Join(groups, "."), rest)
}

// formatLongDate renders a date in the pt-BR long form, e.g.
// "16 de janeiro de 2025".
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
