package importer

import (
	"strings"
	"testing"
)

const sampleCSV = `statement,category_id,difficulty,correct,option1,option2,option3,option4,explanation
Which planet is known as the Red Planet?,7,2,2,Venus,Mars,Jupiter,Mercury,Iron oxide gives Mars its color.
What is the chemical symbol for gold?,7,1.5,1,Au,Ag,Go,Gd,
`

func TestParse_ValidFile(t *testing.T) {
	res, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("expected no row errors, got %v", res.Errors)
	}
	if len(res.Drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(res.Drafts))
	}

	q := res.Drafts[0]
	if q.Statement != "Which planet is known as the Red Planet?" {
		t.Errorf("unexpected statement: %q", q.Statement)
	}
	if q.CategoryID != 7 {
		t.Errorf("expected category 7, got %d", q.CategoryID)
	}
	if q.Difficulty != 2 {
		t.Errorf("expected difficulty 2, got %v", q.Difficulty)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if !q.Options[1].IsCorrect {
		t.Error("expected option 2 to be correct")
	}
	if q.Explanation != "Iron oxide gives Mars its color." {
		t.Errorf("unexpected explanation: %q", q.Explanation)
	}

	if res.Drafts[1].Explanation != "" {
		t.Errorf("expected empty explanation, got %q", res.Drafts[1].Explanation)
	}
	if !res.Drafts[1].Options[0].IsCorrect {
		t.Error("expected option 1 to be correct in second draft")
	}
}

func TestParse_NoHeader(t *testing.T) {
	csv := "Which ocean is the largest?,3,1,4,Atlantic,Indian,Arctic,Pacific\n"
	res, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(res.Drafts))
	}
	if !res.Drafts[0].Options[3].IsCorrect {
		t.Error("expected option 4 to be correct")
	}
}

func TestParse_BadRowsCollected(t *testing.T) {
	csv := strings.Join([]string{
		"statement,category_id,difficulty,correct,option1,option2,option3,option4",
		"Good question?,1,2,1,a,b,c,d",
		"Missing fields,1,2,1,a",
		"Bad difficulty?,1,nine,1,a,b,c,d",
		"Bad correct?,1,2,5,a,b,c,d",
		",1,2,1,a,b,c,d",
	}, "\n")

	res, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(res.Drafts))
	}
	if len(res.Errors) != 4 {
		t.Fatalf("expected 4 row errors, got %d: %v", len(res.Errors), res.Errors)
	}
	if res.Errors[0].Line != 3 {
		t.Errorf("expected first error on line 3, got %d", res.Errors[0].Line)
	}
}

func TestParse_DifficultyOutOfRange(t *testing.T) {
	csv := "Too hard?,1,6,1,a,b,c,d\n"
	res, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Drafts) != 0 || len(res.Errors) != 1 {
		t.Fatalf("expected 1 error and no drafts, got %d drafts %d errors", len(res.Drafts), len(res.Errors))
	}
}

func TestParse_SkipsBlankLines(t *testing.T) {
	csv := "Good question?,1,2,1,a,b,c,d\n\n  , , , , , , , \n"
	res, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Drafts) != 1 || len(res.Errors) != 0 {
		t.Fatalf("expected 1 draft and no errors, got %d drafts %d errors", len(res.Drafts), len(res.Errors))
	}
}
