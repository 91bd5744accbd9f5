package videos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		iso  string
		want string
	}{
		{"PT4M5S", "4:05"},
		{"PT1H2M3S", "1:02:03"},
		{"PT2H0M1S", "2:00:01"},
		{"PT1H", "1:00:00"},
		{"PT45S", "0:45"},
		{"PT10M", "10:00"},
		{"PT0S", "0:00"},
		{"", "0:00"},
		{"lixo", "0:00"},
		{"P1D", "0:00"},
	}
	for _, tc := range cases {
		t.Run(tc.iso, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDuration(tc.iso))
		})
	}
}

func TestRelativeLabel(t *testing.T) {
	// Meio-dia fixo para não depender da hora do teste.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"mesmo dia", now.Add(-3 * time.Hour), "hoje"},
		{"ontem", now.AddDate(0, 0, -1), "há 1 dia"},
		{"tres dias", now.AddDate(0, 0, -3), "há 3 dias"},
		{"seis dias", now.AddDate(0, 0, -6), "há 6 dias"},
		{"sete dias", now.AddDate(0, 0, -7), "há 1 semana"},
		{"dez dias", now.AddDate(0, 0, -10), "há 1 semana"},
		{"quinze dias", now.AddDate(0, 0, -15), "há 2 semanas"},
		{"vinte e nove dias", now.AddDate(0, 0, -29), "há 4 semanas"},
		{"trinta dias", now.AddDate(0, 0, -30), "há 1 mês"},
		{"quarenta dias", now.AddDate(0, 0, -40), "há 1 mês"},
		{"noventa dias", now.AddDate(0, 0, -90), "há 3 meses"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeLabel(tc.t, now))
		})
	}
}

// Publicado ontem à noite conta como "há 1 dia" mesmo com menos de 24h corridas:
// a régua é dia de calendário, não horas.
func TestRelativeLabel_DiaDeCalendarioNaoHorasCorridas(t *testing.T) {
	now := time.Date(2026, 3, 15, 1, 0, 0, 0, time.Local)
	published := time.Date(2026, 3, 14, 23, 30, 0, 0, time.Local)
	assert.Equal(t, "há 1 dia", RelativeLabel(published, now))
}
