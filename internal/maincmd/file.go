package maincmd

import (
	"os"

	"github.com/mna/lox/lang/token"
)

// readFile reads path and registers it with a fresh FileSet, returning the
// *token.File used to translate byte offsets into line/column positions
// throughout the rest of the pipeline. A missing or unreadable file is
// reported with the §6.3 "cannot open input file" exit code (66).
func readFile(path string) (*token.FileSet, *token.File, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fileError(err)
	}
	fset := token.NewFileSet()
	f := fset.AddFile(path, len(data))
	return fset, f, data, nil
}
