// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceAudit is the predicate function for invoiceaudit builders.
type InvoiceAudit func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Vendor is the predicate function for vendor builders.
type Vendor func(*sql.Selector)
