// Package report renders a finished enumeration run, either as a flat text
// listing of every formula or as a paginated HTML report showing each truth
// table with its minimal and equivalent formulas. It only reads the catalog;
// the engine never depends on it.
package report

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lootsmuggler/logictools/enum"
)

// TextFileName is the name of the flat formula listing.
const TextFileName = "formulalist.txt"

// WriteText writes every formula of the run to w, one per line, grouped by
// truth table in discovery order.
func WriteText(w io.Writer, res *enum.Result) error {
	bw := bufio.NewWriter(w)
	for _, e := range res.Catalog.Entries() {
		for _, f := range e.All {
			if _, err := bw.WriteString(f.String()); err != nil {
				return errors.Wrap(err, "write formula list")
			}
			if err := bw.WriteByte('\n'); err != nil {
				return errors.Wrap(err, "write formula list")
			}
		}
	}
	return errors.Wrap(bw.Flush(), "write formula list")
}

// WriteTextFile writes the formula listing to dir and returns the path of
// the file it created.
func WriteTextFile(dir string, res *enum.Result) (string, error) {
	path := filepath.Join(dir, TextFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", path)
	}
	if err := WriteText(f, res); err != nil {
		f.Close()
		return "", err
	}
	return path, errors.Wrapf(f.Close(), "close %s", path)
}

// EnsureOutputDir creates the output directory tree if it does not exist.
func EnsureOutputDir(path string) error {
	return errors.Wrapf(os.MkdirAll(path, 0o755), "create output directory %s", path)
}
