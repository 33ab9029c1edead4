package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/planclip/planclip/internal/common"
	"github.com/planclip/planclip/internal/extract"
	"github.com/planclip/planclip/internal/template"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	out := flag.String("o", "", "output table path, .csv or .xlsx (defaults to PLANCLIP_OUTPUT)")
	flag.Parse()

	if flag.NArg() != 2 {
		printError("Uso: extract-batch [-o salida.csv] PLANTILLA.json RUTA/AL/PDF_O_CARPETA\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	templatePath := flag.Arg(0)
	inputPath := flag.Arg(1)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	logger := common.NewLogger(cfg.Log)
	slog.SetDefault(logger)

	if *out == "" {
		*out = cfg.Output.Path
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// An unusable template is fatal: every extraction depends on it.
	tpl, err := template.Load(templatePath)
	if err != nil {
		logger.Error("failed to load template", "path", templatePath, "error", err)
		os.Exit(1)
	}

	inputs, err := extract.ResolveInputs(inputPath)
	if err != nil {
		logger.Error("failed to resolve input path", "path", inputPath, "error", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		fmt.Println("No hay documentos PDF para procesar.")
		return
	}

	batch := extract.NewBatch(extract.NewPDFSource(), tpl, *out, logger)
	res, err := batch.Run(ctx, inputs)
	if err != nil {
		logger.Error("batch interrupted", "error", err)
		os.Exit(1)
	}

	// Individual document failures are reported, not fatal.
	fmt.Printf("Archivo actualizado: %s\n", *out)
	fmt.Println(res.Summary())
}
