package view

import (
	"html/template"
	"strconv"
	"time"

	"redcolabora/internal/domain/entity"
)

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"deref":         deref,
		"stars":         stars,
		"longDate":      longDate,
		"businessCount": businessCount,
		"fieldError":    fieldError,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// stars returns one flag per star of the indicator, filled ones first.
func stars(filled int) []bool {
	out := make([]bool, entity.MaxRating)
	for i := range out {
		out[i] = i < filled
	}

	return out
}

// longDate formats like "14 de marzo de 2025".
func longDate(t time.Time) string {
	if t.IsZero() {
		return "Fecha no disponible"
	}

	return strconv.Itoa(t.Day()) + " de " + monthsES[t.Month()-1] + " de " + strconv.Itoa(t.Year())
}

func businessCount(n int) string {
	if n == 1 {
		return "1 negocio encontrado"
	}

	return strconv.Itoa(n) + " negocios encontrados"
}

func fieldError(errs map[string]string, field string) string {
	return errs[field]
}
