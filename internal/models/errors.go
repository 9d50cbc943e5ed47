package models

import (
	"errors"
	"fmt"
	"strings"
)

// Typed error taxonomy returned by the repositories. Every store operation
// reports failure through one of these so handlers can render a specific
// user-facing message; nothing domain-level escapes as a raw pg error.

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// DuplicateNameError reports a supplier/material name collision.
type DuplicateNameError struct {
	Entity string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s name %q already exists", e.Entity, e.Name)
}

// DuplicateInvoiceNoError reports reuse of an invoice number.
type DuplicateInvoiceNoError struct {
	InvoiceNo string
}

func (e *DuplicateInvoiceNoError) Error() string {
	return fmt.Sprintf("invoice number %q already exists", e.InvoiceNo)
}

// ForeignKeyError reports a reference to a nonexistent supplier/material/challan.
type ForeignKeyError struct {
	Reference string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("referenced %s does not exist", e.Reference)
}

// NoSnapshotError reports a restore attempt on an invoice that has no
// recorded challan linkage.
type NoSnapshotError struct {
	InvoiceID int64
}

func (e *NoSnapshotError) Error() string {
	return fmt.Sprintf("invoice %d has no challan snapshot to restore from", e.InvoiceID)
}

// ConflictError reports a state-machine conflict. For restore failures
// ChallanIDs lists the specific challans blocking the operation so the
// caller can surface them.
type ConflictError struct {
	Reason     string
	ChallanIDs []int64
}

func (e *ConflictError) Error() string {
	if len(e.ChallanIDs) == 0 {
		return e.Reason
	}
	ids := make([]string, len(e.ChallanIDs))
	for i, id := range e.ChallanIDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%s (challans: %s)", e.Reason, strings.Join(ids, ", "))
}

// ValidationError reports invalid caller input (non-positive quantity or
// amount, unknown payment mode, missing fields).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
