package constants

// ReconciliationStatus is the canonical status for rows in invoices.
type ReconciliationStatus string

// Stable values (store these exact strings in DB).
const (
	StatusNeedsReview ReconciliationStatus = "needs_review" // default after extraction
	StatusAutoMatched ReconciliationStatus = "auto_matched" // engine matched with score >= 90
	StatusManual      ReconciliationStatus = "manual"       // human edit
	StatusIgnored     ReconciliationStatus = "ignored"      // human action
)

// ReconciliationStatuses holds the allowed values for the reconciliation_status field.
var ReconciliationStatuses = []string{
	string(StatusNeedsReview),
	string(StatusAutoMatched),
	string(StatusManual),
	string(StatusIgnored),
}

// EngineCanTransition reports whether the reconciliation engine may move a
// record from one status to another. The engine only ever promotes
// needs_review to auto_matched; manual and ignored belong to humans.
func EngineCanTransition(from, to ReconciliationStatus) bool {
	if from == to {
		return true
	}
	return (from == "" || from == StatusNeedsReview) && to == StatusAutoMatched
}
