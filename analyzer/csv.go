package analyzer

import (
	"encoding/csv"
	"os"

	"github.com/tidwall/gjson"
)

// WriteCSV creates or truncates outputFile and writes a header row followed
// by one row per record. An empty table produces an empty file. A failure
// part way through leaves a partial file behind.
func (a *Analyzer) WriteCSV(table *Table, outputFile string) (err error) {
	f, err := os.Create(outputFile)
	if err != nil {
		return ioError(err, "cannot create %s", outputFile)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioError(cerr, "cannot close %s", outputFile)
		}
	}()

	if len(table.Columns) == 0 {
		a.l.Debugw("no columns, csv left empty", "file", outputFile)
		return nil
	}

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return ioError(err, "cannot write header to %s", outputFile)
	}
	for i := range table.Records {
		if err := w.Write(table.Records[i].row(table.Columns)); err != nil {
			return ioError(err, "cannot write row %d to %s", i, outputFile)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ioError(err, "cannot write %s", outputFile)
	}
	a.l.Debugw("csv written", "file", outputFile, "rows", len(table.Records))
	return nil
}

func (r *Record) row(columns []string) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		if c == fieldExecutedOn {
			row[i] = FormatTimestamp(r.ExecutedOn)
			continue
		}
		row[i] = cell(r.Fields[c])
	}
	return row
}

// cell renders a JSON value the way it reads in the input: strings
// unquoted, numbers with their original text, objects and arrays compacted.
func cell(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	case gjson.JSON:
		return gjson.Get(v.Raw, "@ugly").Raw
	default:
		return v.Raw
	}
}
