// seed_catalog genera un script SQL para poblar un catálogo inicial de
// categorías e insumos agrícolas a partir de un CSV (nombre;unidad;item;precio).
// Los catálogos agropecuarios oficiales suelen distribuirse en ISO-8859-1,
// por eso el lector convierte a UTF-8 antes de parsear.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
)

type catalogRow struct {
	category string
	unit     string
	item     string
	price    decimal.Decimal
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Catálogos oficiales vienen en ISO-8859-1; convertimos a UTF-8.
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 4

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsear CSV: %v\n", err)
		os.Exit(1)
	}

	var rows []catalogRow
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "categoria") {
			continue // encabezado
		}
		category := strings.TrimSpace(rec[0])
		unit := strings.TrimSpace(rec[1])
		item := strings.TrimSpace(rec[2])
		if category == "" || item == "" {
			continue
		}
		if !entity.ValidUnit(unit) {
			fmt.Fprintf(os.Stderr, "Fila %d: unidad %q no admitida, se omite\n", i+1, unit)
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil || price.IsNegative() {
			fmt.Fprintf(os.Stderr, "Fila %d: precio inválido %q, se omite\n", i+1, rec[3])
			continue
		}
		rows = append(rows, catalogRow{category: category, unit: unit, item: item, price: price})
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de categorías e insumos agrícolas\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n")
	out.WriteString("-- Sustituir :owner_id por el UUID del usuario destino antes de ejecutar.\n\n")

	seenCategories := make(map[string]bool)
	for _, r := range rows {
		catName := escapeSQL(r.category)
		if !seenCategories[r.category] {
			seenCategories[r.category] = true
			fmt.Fprintf(out, "INSERT INTO categories (id, owner_id, category_name, unit)\n")
			fmt.Fprintf(out, "VALUES (gen_random_uuid(), :owner_id, '%s', '%s')\n", catName, r.unit)
			out.WriteString("ON CONFLICT (owner_id, category_name) DO NOTHING;\n\n")
		}
		fmt.Fprintf(out, "INSERT INTO items (id, item_name, category_id, price)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid(), '%s', id, %s FROM categories\n",
			escapeSQL(r.item), r.price.String())
		fmt.Fprintf(out, "WHERE owner_id = :owner_id AND category_name = '%s'\n", catName)
		out.WriteString("ON CONFLICT (category_id, item_name) DO NOTHING;\n\n")
	}

	fmt.Printf("Generado %s: %d categorías, %d ítems\n", outPath, len(seenCategories), len(rows))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
