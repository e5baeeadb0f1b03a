package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/finprep/creditclean/internal/schema"
	"github.com/finprep/creditclean/internal/table"
)

// uciSample is a miniature of the real source pathology: a generic
// positional header, the true label row stacked below it as data, then
// client records.
const uciSample = "" +
	"X1,X2,X3,X4,X5,X6,X7,X8,X9,X10,X11,X12,X13,X14,X15,X16,X17,X18,X19,X20,X21,X22,X23,X24,X25\n" +
	"ID,LIMIT_BAL,SEX,EDUCATION,MARRIAGE,AGE,PAY_0,PAY_2,PAY_3,PAY_4,PAY_5,PAY_6,BILL_AMT1,BILL_AMT2,BILL_AMT3,BILL_AMT4,BILL_AMT5,BILL_AMT6,PAY_AMT1,PAY_AMT2,PAY_AMT3,PAY_AMT4,PAY_AMT5,PAY_AMT6,default payment next month\n" +
	"1,20000,2,2,1,24,2,2,-1,-1,-2,-2,3913,3102,689,0,0,0,0,689,0,0,0,0,1\n" +
	"2,120000,2,2,2,26,-1,2,0,0,0,2,2682,1725,2682,3272,3455,3261,0,1000,1000,1000,0,2000,1\n"

func creditSpec(t *testing.T) schema.DatasetSpec {
	t.Helper()
	spec, ok := schema.Get(schema.CreditDefaultKey)
	if !ok {
		t.Fatalf("dataset %q not registered", schema.CreditDefaultKey)
	}
	return spec
}

func TestRun(t *testing.T) {
	t.Run("credit default end to end", func(t *testing.T) {
		spec := creditSpec(t)

		tbl, report, err := Run(context.Background(), strings.NewReader(uciSample), spec, Options{})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}

		if report.Phase != PhaseComplete {
			t.Errorf("Phase = %q, want %q", report.Phase, PhaseComplete)
		}
		if report.RunID == "" {
			t.Error("RunID is empty")
		}
		if tbl.NumRows() != 2 {
			t.Errorf("NumRows() = %d, want 2 (label row excised)", tbl.NumRows())
		}
		if tbl.NumCols() != 25 {
			t.Errorf("NumCols() = %d, want 25", tbl.NumCols())
		}

		// Renamed numeric value survives the full pipeline.
		c, err := tbl.Cell(0, "CREDIT_AMOUNT")
		if err != nil {
			t.Fatal(err)
		}
		if v, ok := c.Number(); !ok || v != 20000.0 {
			t.Errorf("CREDIT_AMOUNT row 0 = %v, want 20000", c)
		}

		// Coded demographics are relabeled.
		for _, tc := range []struct {
			column string
			want   string
		}{
			{"GENDER", "Female"},
			{"EDUCATION", "University"},
			{"MARITAL_STATUS", "Married"},
		} {
			c, err := tbl.Cell(0, tc.column)
			if err != nil {
				t.Fatal(err)
			}
			if s, ok := c.Label(); !ok || s != tc.want {
				t.Errorf("%s row 0 = %v, want label %q", tc.column, c, tc.want)
			}
		}

		// Column types after the run.
		for column, want := range map[string]table.ColumnType{
			"CLIENT_ID":      table.TypeIdentifier,
			"CREDIT_AMOUNT":  table.TypeNumeric,
			"GENDER":         table.TypeCategorical,
			"PAY_STATUS_SEP": table.TypeNumeric,
		} {
			if ct, _ := tbl.Type(column); ct != want {
				t.Errorf("Type(%s) = %v, want %v", column, ct, want)
			}
		}

		// Clean source: no coercions, no unmapped codes.
		if n := report.CoercedToMissing.Total(); n != 0 {
			t.Errorf("CoercedToMissing.Total() = %d, want 0", n)
		}
		if n := report.UnmappedTotal(); n != 0 {
			t.Errorf("UnmappedTotal() = %d, want 0", n)
		}
		if report.HeaderLabels["X2"] != "LIMIT_BAL" {
			t.Errorf("HeaderLabels[X2] = %q, want LIMIT_BAL", report.HeaderLabels["X2"])
		}
	})

	t.Run("unparseable cell coerces to missing", func(t *testing.T) {
		spec := schema.DatasetSpec{
			Key:         "mini",
			ColumnCount: 3,
			Renames:     map[string]string{"LIMIT_BAL": "CREDIT_AMOUNT"},
		}
		src := "pos_col1,pos_col2,pos_col3\n" +
			"ID,LIMIT_BAL,AGE\n" +
			"1,N/A,24\n" +
			"2,20000,26\n"

		tbl, report, err := Run(context.Background(), strings.NewReader(src), spec, Options{})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}

		if got := report.CoercedToMissing["pos_col2"]; got != 1 {
			t.Errorf("CoercedToMissing[pos_col2] = %d, want 1", got)
		}
		c, err := tbl.Cell(0, "CREDIT_AMOUNT")
		if err != nil {
			t.Fatal(err)
		}
		if !c.IsMissing() {
			t.Errorf("CREDIT_AMOUNT row 0 = %v, want missing", c)
		}
		c, err = tbl.Cell(1, "CREDIT_AMOUNT")
		if err != nil {
			t.Fatal(err)
		}
		if v, ok := c.Number(); !ok || v != 20000.0 {
			t.Errorf("CREDIT_AMOUNT row 1 = %v, want 20000", c)
		}
	})

	t.Run("unmapped code is diagnostic not error", func(t *testing.T) {
		spec := schema.DatasetSpec{
			Key:         "mini",
			ColumnCount: 2,
			Renames:     map[string]string{"MARRIAGE": "MARITAL_STATUS"},
			Categories: map[string]schema.CategoryMap{
				"MARITAL_STATUS": {1: "Married", 2: "Single", 3: "Other"},
			},
		}
		src := "a,b\nID,MARRIAGE\n1,0\n2,1\n"

		tbl, report, err := Run(context.Background(), strings.NewReader(src), spec, Options{})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}

		if got := report.UnmappedCodes["MARITAL_STATUS"][0]; got != 1 {
			t.Errorf("UnmappedCodes[MARITAL_STATUS][0] = %d, want 1", got)
		}
		c, err := tbl.Cell(0, "MARITAL_STATUS")
		if err != nil {
			t.Fatal(err)
		}
		if !c.IsMissing() {
			t.Errorf("MARITAL_STATUS row 0 = %v, want missing", c)
		}
	})

	t.Run("column count mismatch is fatal", func(t *testing.T) {
		spec := creditSpec(t)
		src := "a,b\nID,LIMIT_BAL\n1,20000\n"

		_, report, err := Run(context.Background(), strings.NewReader(src), spec, Options{})
		if !errors.Is(err, table.ErrMalformedSource) {
			t.Fatalf("error = %v, want ErrMalformedSource", err)
		}
		if report == nil || report.Phase != PhaseFailed {
			t.Errorf("report = %+v, want PhaseFailed", report)
		}
		if report.Error == "" {
			t.Error("report.Error is empty on failure")
		}
	})

	t.Run("numeric first row is fatal", func(t *testing.T) {
		spec := schema.DatasetSpec{Key: "mini", ColumnCount: 2}
		src := "a,b\n1,20000\n2,120000\n"

		_, report, err := Run(context.Background(), strings.NewReader(src), spec, Options{})
		if !errors.Is(err, table.ErrNoHeaderRow) {
			t.Fatalf("error = %v, want ErrNoHeaderRow", err)
		}
		if report.Phase != PhaseFailed {
			t.Errorf("Phase = %q, want %q", report.Phase, PhaseFailed)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := Run(ctx, strings.NewReader(uciSample), creditSpec(t), Options{})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	})
}

func TestRunFile(t *testing.T) {
	t.Run("missing file is unavailable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.csv")
		_, _, err := RunFile(context.Background(), path, creditSpec(t), Options{})
		if !errors.Is(err, table.ErrSourceUnavailable) {
			t.Fatalf("error = %v, want ErrSourceUnavailable", err)
		}
	})
}
