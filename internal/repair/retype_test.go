package repair

import (
	"errors"
	"testing"

	"github.com/finprep/creditclean/internal/table"
)

func rawTable(t *testing.T, columns []string, rows ...[]string) *table.Table {
	t.Helper()

	tbl, err := table.New(columns)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		cells := make([]table.Cell, len(row))
		for i, s := range row {
			cells[i] = table.Label(s)
		}
		if err := tbl.AppendRow(cells); err != nil {
			t.Fatal(err)
		}
	}
	return tbl
}

func TestRetype(t *testing.T) {
	t.Run("clean column produces zero diagnostics", func(t *testing.T) {
		tbl := rawTable(t,
			[]string{"amount"},
			[]string{"100"},
			[]string{"250.5"},
			[]string{"-3"},
		)

		diags, err := Retype(tbl)
		if err != nil {
			t.Fatal(err)
		}
		if diags.Total() != 0 {
			t.Errorf("Total() = %d on clean data, want 0", diags.Total())
		}

		if ct, _ := tbl.Type("amount"); ct != table.TypeNumeric {
			t.Errorf("Type(amount) = %v, want TypeNumeric", ct)
		}
		c, err := tbl.Cell(1, "amount")
		if err != nil {
			t.Fatal(err)
		}
		if v, ok := c.Number(); !ok || v != 250.5 {
			t.Errorf("Cell(1, amount) = %v ok=%v, want 250.5", v, ok)
		}
	})

	t.Run("unparseable value coerced and counted once", func(t *testing.T) {
		tbl := rawTable(t,
			[]string{"amount"},
			[]string{"100"},
			[]string{"N/A"},
			[]string{"300"},
		)

		diags, err := Retype(tbl)
		if err != nil {
			t.Fatal(err)
		}
		if diags["amount"] != 1 {
			t.Errorf("diags[amount] = %d, want 1", diags["amount"])
		}

		c, err := tbl.Cell(1, "amount")
		if err != nil {
			t.Fatal(err)
		}
		if !c.IsMissing() {
			t.Errorf("Cell(1, amount) = %v, want missing", c)
		}
		// The column is numeric regardless of coercions.
		if ct, _ := tbl.Type("amount"); ct != table.TypeNumeric {
			t.Errorf("Type(amount) = %v, want TypeNumeric", ct)
		}
	})

	t.Run("empty cell becomes missing without counting", func(t *testing.T) {
		tbl := rawTable(t,
			[]string{"amount"},
			[]string{""},
			[]string{"42"},
		)

		diags, err := Retype(tbl)
		if err != nil {
			t.Fatal(err)
		}
		if diags.Total() != 0 {
			t.Errorf("Total() = %d, want 0 (empty is absence, not parse failure)", diags.Total())
		}

		c, err := tbl.Cell(0, "amount")
		if err != nil {
			t.Fatal(err)
		}
		if !c.IsMissing() {
			t.Errorf("Cell(0, amount) = %v, want missing", c)
		}
	})

	t.Run("non-raw columns untouched", func(t *testing.T) {
		tbl := rawTable(t,
			[]string{"code", "amount"},
			[]string{"won't-parse", "100"},
		)
		if err := tbl.SetType("code", table.TypeCategorical); err != nil {
			t.Fatal(err)
		}

		diags, err := Retype(tbl)
		if err != nil {
			t.Fatal(err)
		}
		if diags.Total() != 0 {
			t.Errorf("Total() = %d, want 0", diags.Total())
		}

		c, err := tbl.Cell(0, "code")
		if err != nil {
			t.Fatal(err)
		}
		if s, ok := c.Label(); !ok || s != "won't-parse" {
			t.Errorf("categorical cell rewritten: got %v", c)
		}
	})
}

func TestRetypeColumns(t *testing.T) {
	t.Run("only named columns coerced", func(t *testing.T) {
		tbl := rawTable(t,
			[]string{"a", "b"},
			[]string{"1", "2"},
		)

		if _, err := RetypeColumns(tbl, "a"); err != nil {
			t.Fatal(err)
		}

		if ct, _ := tbl.Type("a"); ct != table.TypeNumeric {
			t.Errorf("Type(a) = %v, want TypeNumeric", ct)
		}
		if ct, _ := tbl.Type("b"); ct != table.TypeRaw {
			t.Errorf("Type(b) = %v, want TypeRaw", ct)
		}
	})

	t.Run("unknown column is fatal", func(t *testing.T) {
		tbl := rawTable(t, []string{"a"}, []string{"1"})
		_, err := RetypeColumns(tbl, "nope")
		if !errors.Is(err, table.ErrUnknownColumn) {
			t.Fatalf("error = %v, want ErrUnknownColumn", err)
		}
	})
}
