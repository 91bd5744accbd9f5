package videos

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// durationRe campos H/M/S da codificação compacta ISO-8601; qualquer um pode faltar.
var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration converte "PT1H2M3S" em "1:02:03" e "PT4M5S" em "4:05".
// Segundos sempre com dois dígitos; minutos com dois dígitos quando há horas.
// Codificação sem nenhum campo (ou irreconhecível) vira "0:00".
func FormatDuration(iso string) string {
	m := durationRe.FindStringSubmatch(iso)
	if m == nil {
		return "0:00"
	}
	h := atoiOrZero(m[1])
	min := atoiOrZero(m[2])
	s := atoiOrZero(m[3])
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, s)
	}
	return fmt.Sprintf("%d:%02d", min, s)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

// RelativeLabel converte um timestamp absoluto em rótulo relativo grosso em pt-BR.
// Faixas: mesmo dia do calendário -> "hoje"; 1 dia -> "há 1 dia"; 2–6 -> "há N dias";
// 7–29 -> semanas (dias/7); 30+ -> meses (dias/30).
func RelativeLabel(t, now time.Time) string {
	days := calendarDays(t, now)
	switch {
	case days <= 0:
		return "hoje"
	case days == 1:
		return "há 1 dia"
	case days < 7:
		return fmt.Sprintf("há %d dias", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "há 1 semana"
		}
		return fmt.Sprintf("há %d semanas", weeks)
	default:
		months := days / 30
		if months == 1 {
			return "há 1 mês"
		}
		return fmt.Sprintf("há %d meses", months)
	}
}

// calendarDays dias de calendário entre t e now no fuso local (0 = mesmo dia).
func calendarDays(t, now time.Time) int {
	ty, tm, td := t.Local().Date()
	ny, nm, nd := now.Local().Date()
	start := time.Date(ty, tm, td, 0, 0, 0, 0, time.Local)
	end := time.Date(ny, nm, nd, 0, 0, 0, 0, time.Local)
	return int(end.Sub(start).Hours() / 24)
}
