package analyzer

import "github.com/cockroachdb/errors"

// Error classes. Concrete errors are marked with one of these, test with errors.Is.
var (
	// ErrIO covers an unreadable input file or an unwritable output file.
	ErrIO = errors.New("io error")

	// ErrParse covers invalid JSON, a missing test_cases list and missing
	// or mistyped required record fields.
	ErrParse = errors.New("parse error")

	// ErrFormat covers executed_on values that are not a date/time.
	ErrFormat = errors.New("format error")
)

func ioError(err error, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrIO)
}

func parseError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrParse)
}

func formatError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrFormat)
}
