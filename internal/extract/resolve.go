package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/planclip/planclip/constants"
	"github.com/planclip/planclip/internal/common"
)

// ResolveInputs turns a file-or-directory path into the ordered list of
// documents to process. A file is taken as-is; a directory yields its PDF
// files, hidden entries skipped, in lexicographic order so batch runs are
// deterministic for a fixed listing.
func ResolveInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeInput, fmt.Sprintf("input path %s", path), err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeInput, fmt.Sprintf("list directory %s", path), err)
	}

	var inputs []string
	for _, e := range entries {
		if e.IsDir() || isHidden(e.Name()) {
			continue
		}
		if !constants.IsPDFExt(filepath.Ext(e.Name())) {
			continue
		}
		inputs = append(inputs, filepath.Join(path, e.Name()))
	}
	sort.Strings(inputs)
	return inputs, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
