package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Months é a ordem fixa do calendário usada por todos os agregados
var Months = [12]time.Month{
	time.January, time.February, time.March, time.April, time.May, time.June,
	time.July, time.August, time.September, time.October, time.November, time.December,
}

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var monthLabels [12]string

func init() {
	caser := cases.Title(language.BrazilianPortuguese)
	for i, name := range monthNames {
		monthLabels[i] = caser.String(name)
	}
}

// MonthLabel retorna o rótulo de exibição do mês (ex: "Março")
func MonthLabel(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthLabels[m-1]
}

// ParseMonth aceita o número do mês (1-12) ou o nome em português, com ou sem acento
func ParseMonth(s string) (time.Month, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return 0, fmt.Errorf("mês não informado")
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("mês fora do intervalo: %d", n)
		}
		return time.Month(n), nil
	}

	plain := stripAccents(value)
	for i, name := range monthNames {
		if plain == stripAccents(name) {
			return Months[i], nil
		}
	}

	return 0, fmt.Errorf("mês inválido: %s", s)
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// MonthlyBuckets acumula valores por mês do calendário. As 12 posições
// existem sempre, com zero como padrão.
type MonthlyBuckets [12]float64

// Add soma value ao mês m
func (b *MonthlyBuckets) Add(m time.Month, value float64) {
	b[m-1] += value
}

// Get retorna a soma do mês m
func (b MonthlyBuckets) Get(m time.Month) float64 {
	return b[m-1]
}

// Total soma os 12 meses
func (b MonthlyBuckets) Total() float64 {
	var total float64
	for _, v := range b {
		total += v
	}
	return total
}
