package schema

import "github.com/finprep/creditclean/internal/table"

// CreditDefaultKey is the registry key of the built-in UCI credit card
// default dataset (30k Taiwanese clients, April-September 2005).
const CreditDefaultKey = "uci-credit-default"

// creditRenames maps the labels recovered from the excised header row
// to the working column names used downstream. Labels not listed here
// (BILL_AMT1..6, PAY_AMT1..6, AGE, EDUCATION) keep their recovered name.
var creditRenames = map[string]string{
	"ID":        "CLIENT_ID",
	"LIMIT_BAL": "CREDIT_AMOUNT",
	"SEX":       "GENDER",
	"MARRIAGE":  "MARITAL_STATUS",

	// Repayment status columns are numbered oddly in the source
	// (PAY_0 then PAY_2..PAY_6); rename them to the month they cover.
	"PAY_0": "PAY_STATUS_SEP",
	"PAY_2": "PAY_STATUS_AUG",
	"PAY_3": "PAY_STATUS_JUL",
	"PAY_4": "PAY_STATUS_JUN",
	"PAY_5": "PAY_STATUS_MAY",
	"PAY_6": "PAY_STATUS_APR",

	"default payment next month": "DEFAULT_NEXT_MONTH",
}

// creditCategories holds one code-to-label table per coded demographic
// column. Codes observed in the data but absent here (e.g. EDUCATION 0,
// 5, 6 and MARRIAGE 0) are surfaced as unmapped diagnostics; the data
// dictionary does not define them and the pipeline does not guess.
var creditCategories = map[string]CategoryMap{
	"GENDER": {
		1: "Male",
		2: "Female",
	},
	"EDUCATION": {
		1: "Graduate School",
		2: "University",
		3: "High School",
		4: "Other",
	},
	"MARITAL_STATUS": {
		1: "Married",
		2: "Single",
		3: "Other",
	},
}

func init() {
	Register(DatasetSpec{
		Key:         CreditDefaultKey,
		Label:       "UCI Credit Card Default",
		ColumnCount: 25,
		Renames:     creditRenames,
		Types: map[string]table.ColumnType{
			"CLIENT_ID": table.TypeIdentifier,
		},
		Categories: creditCategories,
	})
}
