package table

import (
	"encoding/csv"
	"os"

	"github.com/planclip/planclip/internal/common"
)

func loadCSV(path string, labels []string) (*Table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return New(labels), nil
	}
	if err != nil {
		return nil, common.NewAppError(common.ErrCodePersist, "open output table", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate rows written with an older column set
	records, err := r.ReadAll()
	if err != nil {
		return nil, common.NewAppError(common.ErrCodePersist, "read output table", err)
	}
	if len(records) == 0 {
		return New(labels), nil
	}
	return fromRecords(records[0], records[1:], labels), nil
}

// saveCSV writes atomically: temp file in the target directory, then rename,
// so a failed write never truncates rows persisted by earlier documents.
func (t *Table) saveCSV(path string) error {
	tmp, err := os.CreateTemp(dirOf(path), ".planclip-*.csv")
	if err != nil {
		return common.NewAppError(common.ErrCodePersist, "create temp table", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(t.records()); err != nil {
		tmp.Close()
		return common.NewAppError(common.ErrCodePersist, "write output table", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return common.NewAppError(common.ErrCodePersist, "write output table", err)
	}
	if err := tmp.Close(); err != nil {
		return common.NewAppError(common.ErrCodePersist, "close temp table", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return common.NewAppError(common.ErrCodePersist, "replace output table", err)
	}
	return nil
}
