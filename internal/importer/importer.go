// Package importer parses question CSV files for bulk upload to the
// back office. The expected layout is one question per row:
//
//	statement,category_id,difficulty,correct,option1,option2,option3,option4[,explanation]
//
// where correct is the 1-based index of the correct option.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nmoreno/quizrush/internal/api"
)

// RowError reports a single rejected CSV row.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Result holds the parsed drafts plus per-row rejections. A file with
// some bad rows still yields the good ones.
type Result struct {
	Drafts []api.QuestionDraft
	Errors []*RowError
}

// Parse reads question rows from r. A header row is detected and
// skipped when the first cell is "statement". Parse only fails outright
// on unreadable CSV; malformed rows are collected in Result.Errors.
func Parse(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	res := &Result{}
	line := 0

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				res.Errors = append(res.Errors, &RowError{Line: line, Err: err})
				continue
			}
			return nil, fmt.Errorf("read CSV: %w", err)
		}

		if line == 1 && isHeader(record) {
			continue
		}
		if isBlank(record) {
			continue
		}

		draft, err := parseRow(record)
		if err != nil {
			res.Errors = append(res.Errors, &RowError{Line: line, Err: err})
			continue
		}
		res.Drafts = append(res.Drafts, *draft)
	}

	return res, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "statement")
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func parseRow(record []string) (*api.QuestionDraft, error) {
	if len(record) < 8 {
		return nil, fmt.Errorf("expected at least 8 fields, got %d", len(record))
	}

	statement := strings.TrimSpace(record[0])
	if statement == "" {
		return nil, fmt.Errorf("statement is empty")
	}

	categoryID, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid category_id %q", record[1])
	}

	difficulty, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid difficulty %q", record[2])
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, fmt.Errorf("difficulty %v out of range 1-5", difficulty)
	}

	correct, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil || correct < 1 || correct > 4 {
		return nil, fmt.Errorf("invalid correct option index %q (want 1-4)", record[3])
	}

	draft := &api.QuestionDraft{
		Statement:  statement,
		CategoryID: categoryID,
		Difficulty: difficulty,
	}

	for i := range 4 {
		text := strings.TrimSpace(record[4+i])
		if text == "" {
			return nil, fmt.Errorf("option %d is empty", i+1)
		}
		draft.Options = append(draft.Options, api.OptionDraft{
			Text:      text,
			IsCorrect: i+1 == correct,
		})
	}

	if len(record) > 8 {
		draft.Explanation = strings.TrimSpace(record[8])
	}

	return draft, nil
}
