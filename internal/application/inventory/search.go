package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// fold normaliza para búsqueda: sin acentos y sin distinción de mayúsculas ("Litière" == "litiere").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// Search filtra por nombre o ubicación (insensible a acentos) o por subcadena de EAN.
// Término vacío devuelve todo el catálogo.
func (e *Engine) Search(term string) []entity.Product {
	term = strings.TrimSpace(term)
	products := e.Products()
	if term == "" {
		return products
	}
	needle := fold(term)
	out := make([]entity.Product, 0)
	for _, p := range products {
		if strings.Contains(p.EAN, term) ||
			strings.Contains(fold(p.Name), needle) ||
			strings.Contains(fold(p.Location), needle) {
			out = append(out, p)
		}
	}
	return out
}
