package utils

import (
	"fmt"
	"strings"
	"time"
)

var localLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.DateTime,
}

// ParseSaleDate interpreta a data de uma venda no fuso loc. Datas sem fuso
// (como "2024-03-15") são lidas como horário local de loc e timestamps
// RFC3339 são convertidos para loc.
func ParseSaleDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	if date, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return date.In(loc), nil
	}

	for _, layout := range localLayouts {
		if date, err := time.ParseInLocation(layout, value, loc); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data inválido: %s", value)
}
