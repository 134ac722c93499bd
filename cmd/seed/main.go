// seed reinicia la ranura de almacenamiento configurada con los datos de arranque de la feria.
//
// Uso: go run ./cmd/seed [-customers clientes.csv] [-latin1] [-seed 42]
// Con -customers el directorio de clientes se toma del CSV (columnas id, zona, nombre_comercial,
// giro, email, telefono, encargado y opcional saldo) en lugar del empotrado.
// -latin1 decodifica el archivo como ISO-8859-1 (exportaciones de Excel).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	appstate "github.com/jhoicas/feria-pos/internal/application/state"
	"github.com/jhoicas/feria-pos/internal/fixtures"
	"github.com/jhoicas/feria-pos/internal/infrastructure/storage"
	"github.com/jhoicas/feria-pos/pkg/config"
	"github.com/jhoicas/feria-pos/pkg/logger"
)

func main() {
	customersPath := flag.String("customers", "", "CSV de clientes a importar")
	latin1 := flag.Bool("latin1", false, "el CSV viene en ISO-8859-1")
	seedFlag := flag.Uint64("seed", 0, "semilla de los datos aleatorios (0 = SEED_RANDOM o reloj)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	seedRandom := *seedFlag
	if seedRandom == 0 {
		seedRandom = cfg.App.SeedRandom
	}
	if seedRandom == 0 {
		seedRandom = uint64(time.Now().UnixNano())
	}

	now := time.Now()
	snap, err := fixtures.Seed(fixtures.NewRand(seedRandom), now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar datos de arranque: %v\n", err)
		os.Exit(1)
	}

	if *customersPath != "" {
		f, err := os.Open(*customersPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
			os.Exit(1)
		}
		customers, err := fixtures.ParseCustomersCSV(f, *latin1)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
		snap.Customers = customers
		snap.Sales = fixtures.Sales(fixtures.NewRand(seedRandom), now, len(customers))
	}

	ctx := context.Background()
	repo, closeStore, err := storage.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	uc := appstate.NewStateUseCase(repo, nil, log)
	if err := uc.Replace(ctx, snap); err != nil {
		fmt.Fprintf(os.Stderr, "Guardar snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ranura %q (%s) reiniciada: %d productos, %d clientes, %d ventas, semilla %d\n",
		cfg.Storage.Key, cfg.Storage.Driver, len(snap.Products), len(snap.Customers), len(snap.Sales), seedRandom)
}
