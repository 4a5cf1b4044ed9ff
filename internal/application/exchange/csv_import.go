package exchange

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// Campos de producto que admite el mapeo de columnas.
const (
	FieldEAN         = "ean"
	FieldName        = "name"
	FieldSupplier    = "supplier"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"
	FieldUnit        = "unit"
	FieldCategory    = "category"
	FieldAnimal      = "animal"
	FieldBrand       = "brand"
	FieldLocation    = "location"
	FieldReference   = "reference"
	FieldDescription = "description"
)

// Fields orden de presentación de los campos mapeables.
var Fields = []string{
	FieldEAN, FieldName, FieldSupplier, FieldPrice, FieldQuantity, FieldUnit,
	FieldCategory, FieldAnimal, FieldBrand, FieldLocation, FieldReference, FieldDescription,
}

// Table CSV ya parseado: cabecera + filas con celdas recortadas.
type Table struct {
	Delimiter string     `json:"delimiter"`
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
}

// Mapping campo → índice de columna.
type Mapping map[string]int

// Validate rechaza campos desconocidos e índices negativos.
func (m Mapping) Validate() error {
	for field, idx := range m {
		if !slices.Contains(Fields, field) {
			return fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, field)
		}
		if idx < 0 {
			return fmt.Errorf("%w: índice negativo para %q", domain.ErrInvalidInput, field)
		}
	}
	return nil
}

// ParseMapping interpreta "ean=0,name=1,...".
func ParseMapping(s string) (Mapping, error) {
	m := Mapping{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, idx, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: se esperaba campo=columna en %q", domain.ErrInvalidInput, part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, fmt.Errorf("%w: columna inválida en %q", domain.ErrInvalidInput, part)
		}
		m[strings.TrimSpace(field)] = n
	}
	return m, m.Validate()
}

// Parse decodifica el contenido (UTF-8 o Windows-1252), detecta el delimitador en la primera
// línea (';' si aparece, si no ',') y separa cabecera y filas. Las líneas vacías se omiten.
func Parse(content []byte) (*Table, error) {
	text, err := decode(content)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: archivo CSV vacío", domain.ErrInvalidInput)
	}

	first, _, _ := strings.Cut(text, "\n")
	delimiter := ','
	if strings.ContainsRune(first, ';') {
		delimiter = ';'
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	table := &Table{Delimiter: string(delimiter), Rows: [][]string{}}
	for {
		record, readErr := r.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, readErr)
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if table.Headers == nil {
			table.Headers = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode devuelve el texto en UTF-8. Los exportes de Excel en Windows llegan en CP1252.
func decode(content []byte) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if utf8.Valid(content) {
		return string(content), nil
	}
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(content), charmap.Windows1252.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("%w: decodificar CSV: %v", domain.ErrInvalidInput, err)
	}
	return string(out), nil
}

// BuildProducts construye productos nuevos a partir de las filas según el mapeo.
// id = now en milisegundos + índice de fila; stock 0, umbral 5, sin inicializar.
func BuildProducts(table *Table, mapping Mapping, now time.Time) []entity.Product {
	products := make([]entity.Product, 0, len(table.Rows))
	base := now.UnixMilli()
	for idx, row := range table.Rows {
		get := func(field string) string {
			i, ok := mapping[field]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		supplier := get(FieldSupplier)
		if supplier == "" {
			supplier = entity.SupplierOther
		}
		products = append(products, entity.Product{
			ID:             base + int64(idx),
			Supplier:       supplier,
			EAN:            get(FieldEAN),
			Name:           get(FieldName),
			Reference:      get(FieldReference),
			Description:    get(FieldDescription),
			Price:          parsePrice(get(FieldPrice)),
			Quantity:       get(FieldQuantity),
			Unit:           get(FieldUnit),
			Category:       get(FieldCategory),
			Animal:         get(FieldAnimal),
			Brand:          get(FieldBrand),
			Location:       get(FieldLocation),
			CurrentStock:   0,
			AlertThreshold: entity.DefaultAlertThreshold,
			Movements:      []entity.StockMovement{},
			CreatedAt:      now,
		})
	}
	return products
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+([.,]\d*)?|[.,]\d+)([eE][+-]?\d+)?`)

// parsePrice toma el número inicial de la celda ("12,50 €" → 12.5); sin número → nil.
// La coma cuenta como separador decimal: un parseFloat estricto se detendría en ella y
// "12,50" daría 12. Solo se convierte la primera coma ("1,2,3" → 1.2).
func parsePrice(s string) *float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.Replace(m, ",", ".", 1), 64)
	if err != nil {
		return nil
	}
	return &v
}
