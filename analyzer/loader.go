package analyzer

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// ParseJSON loads the test cases from jsonFile, normalizes executed_on and
// exports the table to outputFile as CSV. Nothing is written when loading
// fails. It returns the parsed document along with the table.
func (a *Analyzer) ParseJSON(jsonFile, outputFile string) (gjson.Result, *Table, error) {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return gjson.Result{}, nil, ioError(err, "cannot read %s", jsonFile)
	}
	a.l.Debugw("input read", "file", jsonFile, "bytes", len(data))

	doc, err := ParseDocument(data)
	if err != nil {
		return gjson.Result{}, nil, err
	}
	table, err := NewTable(doc)
	if err != nil {
		return gjson.Result{}, nil, err
	}
	a.l.Infow("test cases loaded", "records", table.Len(), "columns", len(table.Columns))

	if err := a.WriteCSV(table, outputFile); err != nil {
		return gjson.Result{}, nil, err
	}
	fmt.Fprintf(a.out, "%s was exported successfully to %s\n", jsonFile, outputFile)
	return doc, table, nil
}

// ParseDocument validates data as a UTF-8 encoded JSON object.
func ParseDocument(data []byte) (gjson.Result, error) {
	if !utf8.Valid(data) {
		return gjson.Result{}, parseError("input is not valid UTF-8")
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, parseError("input is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return gjson.Result{}, parseError("top-level JSON value must be an object")
	}
	return doc, nil
}

// NewTable builds the table from the test_cases list of doc, keeping the
// list order and the key order of each object. When test_cases appears more
// than once the last one wins.
func NewTable(doc gjson.Result) (*Table, error) {
	var list gjson.Result
	doc.ForEach(func(key, value gjson.Result) bool {
		if key.String() == testCasesKey {
			list = value
		}
		return true
	})
	if !list.Exists() {
		return nil, parseError("missing %q list", testCasesKey)
	}
	if !list.IsArray() {
		return nil, parseError("%q must be a list, got %s", testCasesKey, list.Type)
	}

	table := &Table{Records: []Record{}}
	seen := map[string]bool{}
	var err error
	list.ForEach(func(_, item gjson.Result) bool {
		var rec Record
		rec, err = newRecord(len(table.Records), item)
		if err != nil {
			return false
		}
		for _, k := range rec.keys {
			if !seen[k] {
				seen[k] = true
				table.Columns = append(table.Columns, k)
			}
		}
		table.Records = append(table.Records, rec)
		return true
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func newRecord(idx int, item gjson.Result) (Record, error) {
	if !item.IsObject() {
		return Record{}, parseError("test case %d: expected an object, got %s", idx, item.Type)
	}
	rec := Record{Fields: map[string]gjson.Result{}}
	item.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if _, dup := rec.Fields[k]; !dup {
			rec.keys = append(rec.keys, k)
		}
		rec.Fields[k] = value
		return true
	})

	status := rec.Fields[fieldStatus]
	if status.Type != gjson.String {
		return Record{}, parseError("test case %d: %q must be a string", idx, fieldStatus)
	}
	rec.Status = status.Str

	execTime := rec.Fields[fieldExecutionTime]
	if execTime.Type != gjson.Number {
		return Record{}, parseError("test case %d: %q must be a number", idx, fieldExecutionTime)
	}
	rec.ExecutionTime = execTime.Num

	executedOn := rec.Fields[fieldExecutedOn]
	if !executedOn.Exists() || executedOn.Type == gjson.Null {
		return Record{}, parseError("test case %d: %q is missing", idx, fieldExecutedOn)
	}
	if executedOn.Type != gjson.String {
		return Record{}, formatError("test case %d: %q is not a date/time: %s", idx, fieldExecutedOn, executedOn.Raw)
	}
	t, ok := ParseTimestamp(executedOn.Str)
	if !ok {
		return Record{}, formatError("test case %d: %q is not a date/time: %q", idx, fieldExecutedOn, executedOn.Str)
	}
	rec.ExecutedOn = t
	return rec, nil
}
