package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/planclip/planclip/constants"
	"github.com/planclip/planclip/internal/capture"
	"github.com/planclip/planclip/internal/common"
	"github.com/planclip/planclip/internal/extract"
	"github.com/planclip/planclip/internal/geom"
	"github.com/planclip/planclip/internal/pdf"
	"github.com/planclip/planclip/internal/preview"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		templatePath = flag.String("template", constants.DefaultTemplateFile, "template file to write")
		out          = flag.String("out", "", "output table path (defaults to PLANCLIP_OUTPUT)")
		dpi          = flag.Int("dpi", 0, "preview render DPI (defaults to PLANCLIP_DPI)")
		previewPath  = flag.String("preview", "", "preview PNG path (defaults to <pdf>_preview.png)")
		captureCSV   = flag.String("capturecsv", "", "optional CSV with the captured rows themselves")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		printError("Uso: capture [flags] RUTA/AL/PDF.pdf\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	pdfPath := flag.Arg(0)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.Log.Format == "json" {
		// capture is interactive; keep log lines readable next to the prompts
		cfg.Log.Format = "text"
	}
	logger := common.NewLogger(cfg.Log)
	slog.SetDefault(logger)

	if *out == "" {
		*out = cfg.Output.Path
	}
	if *dpi <= 0 {
		*dpi = cfg.Capture.DPI
	}
	if *previewPath == "" {
		*previewPath = pdf.Stem(pdfPath) + "_preview.png"
	}

	// Input errors are fatal before any interaction starts.
	doc, err := pdf.Open(pdfPath)
	if err != nil {
		logger.Error("failed to open reference document", "path", pdfPath, "error", err)
		os.Exit(1)
	}

	pageW, pageH := doc.PageSize()
	scale := geom.FromDPI(*dpi)
	canvas := preview.Render(doc.Runs(), pageW, pageH, scale, cfg.Capture.PreviewMaxWidth)
	logger.Info("page rendered",
		"path", pdfPath,
		"page_w", pageW, "page_h", pageH,
		"dpi", *dpi,
		"scale", float64(canvas.Scale()))

	view := capture.NewPromptView(os.Stdin, os.Stdout)
	sess := capture.NewSession(doc, canvas, view, logger)

	tpl, rows, save, err := sess.Run(*previewPath)
	if err != nil {
		logger.Error("capture session failed", "error", err)
		os.Exit(1)
	}
	if !save {
		fmt.Println("Plantilla no guardada.")
		return
	}

	if err := tpl.Save(*templatePath); err != nil {
		logger.Error("failed to save template", "path", *templatePath, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Plantilla guardada en %s (%d rectángulos).\n", *templatePath, tpl.Len())

	if *captureCSV != "" {
		if err := capture.WriteRows(rows, *captureCSV); err != nil {
			logger.Error("failed to write capture csv", "path", *captureCSV, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Capturas exportadas a %s.\n", *captureCSV)
	}

	// Seed the output table with the reference document itself, the same
	// pass the batch extractor would run.
	batch := extract.NewBatch(extract.NewPDFSource(), tpl, *out, logger)
	res, err := batch.Run(context.Background(), []string{pdfPath})
	if err != nil {
		logger.Error("seed extraction failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Tabla %s actualizada: %s\n", *out, res.Summary())
}
