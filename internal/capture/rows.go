package capture

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/planclip/planclip/internal/common"
)

// WriteRows exports the per-capture rows (label, extracted text, rectangle)
// as a side CSV, a record of the capture session itself rather than of the
// output table.
func WriteRows(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return common.NewAppError(common.ErrCodePersist, "create capture csv", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"etiqueta", "texto", "x0", "y0", "x1", "y1"}); err != nil {
		return common.NewAppError(common.ErrCodePersist, "write capture csv", err)
	}
	for _, row := range rows {
		rec := []string{
			row.Label,
			row.Text,
			fmt.Sprintf("%.2f", row.Rect.X0),
			fmt.Sprintf("%.2f", row.Rect.Y0),
			fmt.Sprintf("%.2f", row.Rect.X1),
			fmt.Sprintf("%.2f", row.Rect.Y1),
		}
		if err := w.Write(rec); err != nil {
			return common.NewAppError(common.ErrCodePersist, "write capture csv", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return common.NewAppError(common.ErrCodePersist, "write capture csv", err)
	}
	return nil
}
