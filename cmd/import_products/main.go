// import_products carga el catálogo de productos desde un CSV.
//
// Uso: go run ./cmd/import_products -file productos.csv [-charset windows-1252] [-sep ';']
//
// La primera fila es la cabecera (prCode, name, mrp, expiryDate obligatorias). Los productos
// cuyo prCode ya existe se omiten; las filas inválidas se reportan y no detienen la carga.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"unicode/utf8"

	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/farmacia-api/pkg/config"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

func main() {
	file := flag.String("file", "productos.csv", "ruta del CSV")
	charset := flag.String("charset", "utf-8", "utf-8, iso-8859-1 o windows-1252")
	sep := flag.String("sep", ",", "separador de campos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("import_products")

	comma, size := utf8.DecodeRuneInString(*sep)
	if size == 0 || size != len(*sep) {
		log.Fatal().Str("sep", *sep).Msg("el separador debe ser un único carácter")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir CSV")
	}
	defer f.Close()

	r, err := decodeReader(f, *charset)
	if err != nil {
		log.Fatal().Err(err).Msg("charset")
	}
	rows, bad, err := readProducts(r, comma)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}
	for _, re := range bad {
		log.Warn().Int("line", re.Line).Err(re.Err).Msg("fila omitida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool), cfg.Inventory.DefaultLowStockThreshold)
	created, skipped, failed := 0, 0, len(bad)
	for _, row := range rows {
		_, err := productUC.Create(ctx, row.Req)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		default:
			failed++
			log.Warn().Int("line", row.Line).Int64("prCode", row.Req.PrCode).Err(err).Msg("producto no importado")
		}
	}

	log.Info().
		Int("created", created).
		Int("skipped", skipped).
		Int("failed", failed).
		Msg("importación finalizada")
}
