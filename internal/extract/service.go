// Package extract replays a captured template over one or many documents
// and maintains the output table, one row per document identifier.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/planclip/planclip/constants"
	"github.com/planclip/planclip/internal/pdf"
	"github.com/planclip/planclip/internal/table"
	"github.com/planclip/planclip/internal/template"
)

// DocStatus is the outcome for one document of a batch.
type DocStatus struct {
	Path   string
	Stem   string
	Status constants.DocStatus
	Err    string
}

// Result aggregates a batch run.
type Result struct {
	Processed []DocStatus
	Failed    []DocStatus
}

// Summary renders the operator-facing closing line: which identifiers
// succeeded and which failed.
func (r Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "procesados=%d fallidos=%d", len(r.Processed), len(r.Failed))
	if len(r.Processed) > 0 {
		b.WriteString(" ok=[")
		for i, d := range r.Processed {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(d.Stem)
		}
		b.WriteByte(']')
	}
	if len(r.Failed) > 0 {
		b.WriteString(" error=[")
		for i, d := range r.Failed {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(d.Stem)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Batch applies one template to a sequence of documents, persisting the
// output table after every document so a crash mid-batch loses at most the
// in-flight one.
type Batch struct {
	src     Source
	tpl     *template.Template
	outPath string
	logger  *slog.Logger
}

func NewBatch(src Source, tpl *template.Template, outPath string, logger *slog.Logger) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{src: src, tpl: tpl, outPath: outPath, logger: logger}
}

// Run processes inputs strictly in order. A failing document is recorded
// and skipped; only context cancellation stops the loop early. The error
// return is reserved for that cancellation — per-document problems never
// propagate past the batch boundary.
func (b *Batch) Run(ctx context.Context, inputs []string) (Result, error) {
	logger := b.logger.With("run_id", uuid.NewString())
	logger.Info("extract.batch.start", "documents", len(inputs), "output", b.outPath)

	var result Result
	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		status := b.processOne(path)
		if status.Err != "" {
			logger.Error("extract.doc.failed", "path", path, "error", status.Err)
			result.Failed = append(result.Failed, status)
			continue
		}
		logger.Info("extract.doc.ok", "path", path, "id", status.Stem)
		result.Processed = append(result.Processed, status)
	}

	logger.Info("extract.batch.done",
		"processed", len(result.Processed),
		"failed", len(result.Failed))
	return result, nil
}

// processOne runs the full per-document pipeline: open, extract every
// label, upsert into the freshly loaded table, persist. Any error becomes
// a failed status for this document only.
func (b *Batch) processOne(path string) DocStatus {
	doc, err := b.src.Open(path)
	if err != nil {
		return DocStatus{Path: path, Stem: pdf.Stem(path), Status: constants.DocStatusFailed, Err: err.Error()}
	}
	defer doc.Close()

	fields := make(map[string]string, b.tpl.Len())
	for _, label := range b.tpl.Labels() {
		rect, _ := b.tpl.Get(label)
		fields[label] = doc.ExtractRect(rect)
	}

	tbl, err := table.Load(b.outPath, b.tpl.Labels())
	if err != nil {
		return DocStatus{Path: path, Stem: doc.Stem(), Status: constants.DocStatusFailed, Err: err.Error()}
	}
	tbl.Upsert(doc.Stem(), fields)
	if err := tbl.Save(b.outPath); err != nil {
		return DocStatus{Path: path, Stem: doc.Stem(), Status: constants.DocStatusFailed, Err: err.Error()}
	}

	return DocStatus{Path: path, Stem: doc.Stem(), Status: constants.DocStatusOK}
}
