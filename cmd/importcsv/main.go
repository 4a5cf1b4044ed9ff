// importcsv importa un catálogo CSV directamente en el almacén local configurado,
// sin pasar por la API.
//
// Uso: go run ./cmd/importcsv -file catalogue.csv -map ean=0,name=1,supplier=2,price=3
//
//	-preview  solo muestra cabeceras y primeras filas (para elegir el mapeo)
//
// El archivo puede venir en UTF-8 o Windows-1252 (exportaciones de Excel).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-stock/internal/application/exchange"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/application/state"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/storage"
	"github.com/jhoicas/Inventario-stock/pkg/config"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

// stderrNotifier muestra los toasts en la consola.
type stderrNotifier struct{}

func (stderrNotifier) Show(message string, _ entity.ToastType) {
	fmt.Fprintln(os.Stderr, message)
}

func main() {
	file := flag.String("file", "", "ruta del CSV")
	mapFlag := flag.String("map", "", "mapeo campo=columna, ej. ean=0,name=1")
	preview := flag.Bool("preview", false, "mostrar cabeceras sin importar")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Uso: importcsv -file catalogue.csv -map ean=0,name=1 [-preview]")
		os.Exit(2)
	}
	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	if *preview {
		table, err := exchange.Parse(content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parsear CSV: %v\n", err)
			os.Exit(1)
		}
		printPreview(table)
		return
	}

	mapping, err := exchange.ParseMapping(*mapFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Mapeo: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	kv, closeStore, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := run(ctx, state.NewStore(kv, log.Component("state")), content, mapping, log.Component("import")); err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		closeStore()
		os.Exit(1)
	}
}

func run(ctx context.Context, store *state.Store, content []byte, mapping exchange.Mapping, log zerolog.Logger) error {
	loaded, err := store.Load(ctx)
	if err != nil {
		return err
	}
	engine := inventory.NewEngine(stderrNotifier{}, log)
	engine.Restore(inventory.State{Products: loaded.Products, Suppliers: loaded.Suppliers, Settings: loaded.Settings})

	res, err := exchange.NewUseCase(engine, stderrNotifier{}, nil, log).Import(content, mapping)
	if err != nil {
		return err
	}

	auth := state.AuthRecord{}
	if loaded.Auth != nil {
		auth = *loaded.Auth
	}
	if err := store.Save(ctx, auth, engine.Snapshot()); err != nil {
		return err
	}
	fmt.Printf("Importados: %d productos\n", res.Imported)
	fmt.Printf("Proveedores: %s\n", strings.Join(res.Suppliers, ", "))
	fmt.Printf("Catálogo total: %d productos, %d alertas\n", len(engine.Products()), len(engine.Alerts()))
	return nil
}

func printPreview(t *exchange.Table) {
	fmt.Printf("Delimitador: %q\n", t.Delimiter)
	for i, h := range t.Headers {
		fmt.Printf("  %2d  %s\n", i, h)
	}
	n := min(5, len(t.Rows))
	fmt.Printf("Filas: %d (primeras %d)\n", len(t.Rows), n)
	for _, r := range t.Rows[:n] {
		fmt.Println("  " + strings.Join(r, " | "))
	}
}
