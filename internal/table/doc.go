// Package table defines the in-memory tabular data model shared by every
// stage of the repair pipeline.
//
// A [Table] is an ordered set of named columns plus rows of [Cell] values.
// Cells are a tagged union over three shapes: a numeric value, a free-form
// label, or an explicit missing marker. Columns carry a declared
// [ColumnType] assigned by policy, not inferred from data.
//
// # Invariants
//
// Every row holds exactly one cell per column, in column order. Mutating
// operations (AppendRow, DropRow, RenameColumns) preserve this invariant
// or fail. After a column is retyped to numeric it contains only numeric
// cells or the missing marker, never free-form labels.
//
// # Ownership
//
// A Table is owned by exactly one caller at a time. The pipeline mutates
// it in place, stage by stage, on a single goroutine; nothing in this
// package is safe for concurrent use.
package table
