package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lootsmuggler/logictools/enum"
	"github.com/lootsmuggler/logictools/logic"
)

// Each HTML file shows at most this many truth tables.
const tablesPerPage = 256

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
{{range .Tables}}<h3>Truth table {{.Index}}</h3>
<table border="1">
<tr>{{range .Names}}<th>{{.}}</th>{{end}}<th>{{.Index}}</th></tr>
{{range .Rows}}<tr>{{range .Values}}<td>{{.}}</td>{{end}}<td>{{.Out}}</td></tr>
{{end}}</table>
<p>Minimum formula ({{.MinOps}} binary operators):</p>
<ul>
{{range .Minimal}}<li>{{.}}</li>
{{end}}</ul>
<p>All formulas with this truth table:</p>
<ul>
{{range .All}}<li>{{.}}</li>
{{end}}</ul>
{{end}}</body>
</html>
`))

type htmlPage struct {
	Title  string
	Tables []htmlTable
}

type htmlTable struct {
	Index   int
	Names   []string
	Rows    []htmlRow
	MinOps  int
	Minimal []string
	All     []string
}

type htmlRow struct {
	Values []string
	Out    string
}

// WriteHTML writes the paginated truth table report to dir, one file per
// group of tables in discovery order, and returns the paths of the files it
// created.
func WriteHTML(dir string, res *enum.Result) ([]string, error) {
	entries := res.Catalog.Entries()
	names := make([]string, res.N)
	for v := range names {
		names[v] = logic.VarName(v)
	}

	var paths []string
	for page := 0; page < numPages(len(entries)); page++ {
		lo := page * tablesPerPage
		hi := lo + tablesPerPage
		if hi > len(entries) {
			hi = len(entries)
		}
		data := htmlPage{Title: fmt.Sprintf("Truth tables %d-%d", lo, hi-1)}
		for i, e := range entries[lo:hi] {
			data.Tables = append(data.Tables, makeHTMLTable(lo+i, names, e))
		}

		path := filepath.Join(dir, fmt.Sprintf("truthtables%d.htm", page))
		f, err := os.Create(path)
		if err != nil {
			return paths, errors.Wrapf(err, "create %s", path)
		}
		if err := pageTmpl.Execute(f, data); err != nil {
			f.Close()
			return paths, errors.Wrapf(err, "render %s", path)
		}
		if err := f.Close(); err != nil {
			return paths, errors.Wrapf(err, "close %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func makeHTMLTable(index int, names []string, e *enum.Entry) htmlTable {
	ht := htmlTable{
		Index:  index,
		Names:  names,
		MinOps: e.MinOps,
	}
	for a := uint32(0); int(a) < e.Table.Len(); a++ {
		row := htmlRow{Out: tf(e.Table.Bit(a))}
		for v := range names {
			row.Values = append(row.Values, tf(a&(1<<uint(v)) != 0))
		}
		ht.Rows = append(ht.Rows, row)
	}
	for _, f := range e.Minimal {
		ht.Minimal = append(ht.Minimal, f.String())
	}
	for _, f := range e.All {
		ht.All = append(ht.All, f.String())
	}
	return ht
}

func tf(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

func numPages(tables int) int {
	if tables == 0 {
		return 0
	}
	return (tables + tablesPerPage - 1) / tablesPerPage
}
