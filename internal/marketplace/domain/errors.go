package domain

import "fmt"

// FailureKind tags the closed set of domain-service error categories. Each
// service contributes one block of kinds; a service never returns another
// service's kind.
type FailureKind string

// User service failure kinds.
const (
	FailedToCreateUser        FailureKind = "failed-to-create-user"
	FailedToRetrieveUser      FailureKind = "failed-to-retrieve-user"
	FailedToSetAccountBalance FailureKind = "failed-to-set-account-balance"
)

// Widget service failure kinds.
const (
	FailedToCreateWidget   FailureKind = "failed-to-create-widget"
	FailedToRetrieveWidget FailureKind = "failed-to-retrieve-widget"
	FailedToSetPurchased   FailureKind = "failed-to-set-purchased"
)

// Transaction service failure kinds.
const (
	FailedToCreateTransaction FailureKind = "failed-to-create-transaction"
)

// Fee service failure kinds.
const (
	FailedToRetrieveFee FailureKind = "failed-to-retrieve-fee"
)

// Failure is a domain-service error: a storage operation succeeded at the
// wire level but its reported effect did not satisfy the service's
// postcondition, or the facade itself failed and the service gave the outcome
// a domain meaning.
type Failure struct {
	Kind   FailureKind
	Reason string
	Cause  error
}

// NewFailure builds a domain failure for a recognized kind. An unrecognized
// kind is a missing case in this switch, not a runtime condition, so it panics.
func NewFailure(kind FailureKind, cause error) *Failure {
	var reason string

	switch kind {
	case FailedToCreateUser:
		reason = "Failed to create a new user in the database"
	case FailedToRetrieveUser:
		reason = "Failed to retrieve the specified user from the database"
	case FailedToSetAccountBalance:
		reason = "Failed to update the account balance associated with the specified user"
	case FailedToCreateWidget:
		reason = "Failed to create a new widget in the database"
	case FailedToRetrieveWidget:
		reason = "Failed to retrieve the specified widget from the database"
	case FailedToSetPurchased:
		reason = "Failed to update the purchased status associated with the specified widget"
	case FailedToCreateTransaction:
		reason = "Failed to create a new transaction record in the database"
	case FailedToRetrieveFee:
		reason = "Failed to retrieve the marketplace fee from the database"
	default:
		panic(fmt.Sprintf("unrecognized domain failure kind: %q", kind))
	}

	return &Failure{Kind: kind, Reason: reason, Cause: cause}
}

func (e *Failure) Error() string {
	if e.Cause != nil {
		return e.Reason + ": " + e.Cause.Error()
	}

	return e.Reason
}

func (e *Failure) Unwrap() error {
	return e.Cause
}

// Is matches any domain failure when the target carries no kind, or exactly
// one kind when it does.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}

	return t.Kind == "" || t.Kind == e.Kind
}

// PurchaseFailureKind tags the closed set of purchase-workflow business rule
// violations.
type PurchaseFailureKind string

const (
	WidgetUnavailable PurchaseFailureKind = "widget-unavailable"
	InsufficientFunds PurchaseFailureKind = "insufficient-funds"
	BuyerOwnsWidget   PurchaseFailureKind = "buyer-owns-widget"
)

// PurchaseFailure reports a violated business invariant of the purchase
// workflow. The Cause stays nil; rule violations have no underlying error.
type PurchaseFailure struct {
	Kind   PurchaseFailureKind
	Reason string
	Cause  error
}

// NewPurchaseFailure builds a workflow failure for a recognized kind and
// panics on anything else.
func NewPurchaseFailure(kind PurchaseFailureKind) *PurchaseFailure {
	var reason string

	switch kind {
	case WidgetUnavailable:
		reason = "This widget has already been purchased"
	case InsufficientFunds:
		reason = "Buyer has insufficient funds to complete this transaction"
	case BuyerOwnsWidget:
		reason = "Buyer and seller cannot be the same user"
	default:
		panic(fmt.Sprintf("unrecognized purchase failure kind: %q", kind))
	}

	return &PurchaseFailure{Kind: kind, Reason: reason}
}

func (e *PurchaseFailure) Error() string {
	if e.Cause != nil {
		return e.Reason + ": " + e.Cause.Error()
	}

	return e.Reason
}

func (e *PurchaseFailure) Unwrap() error {
	return e.Cause
}

func (e *PurchaseFailure) Is(target error) bool {
	t, ok := target.(*PurchaseFailure)
	if !ok {
		return false
	}

	return t.Kind == "" || t.Kind == e.Kind
}
