package models

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusKind identifies the stage of an application.
type StatusKind int

// StatusKind constants define the four stages in declaration order.
// The order carries no domain meaning beyond a stable sort.
const (
	StatusApplied StatusKind = iota
	StatusInterview
	StatusOffer
	StatusRejected
)

// Status is the application stage together with its stage-specific payload:
// the interview round for StatusInterview, the offered amount for StatusOffer.
// The zero value is Applied.
type Status struct {
	Kind StatusKind

	// Round is the interview round. Only meaningful for StatusInterview.
	Round uint8

	// Amount is the offered amount. Signed so that caller-supplied
	// placeholders (including negative ones) pass through untouched.
	// Only meaningful for StatusOffer.
	Amount int32
}

// Applied returns the Applied status.
func Applied() Status { return Status{Kind: StatusApplied} }

// Interview returns an Interview status with the given round.
func Interview(round uint8) Status { return Status{Kind: StatusInterview, Round: round} }

// Offer returns an Offer status with the given amount.
func Offer(amount int32) Status { return Status{Kind: StatusOffer, Amount: amount} }

// Rejected returns the Rejected status.
func Rejected() Status { return Status{Kind: StatusRejected} }

// status wire prefixes for the payload-carrying kinds
const (
	interviewPrefix = "interview:"
	offerPrefix     = "offer:"
)

// Encode renders the status in its stored text form:
// "applied", "rejected", "interview:<round>" or "offer:<amount>".
// This encoding is the wire format persisted in the database and must
// stay stable; ParseStatus accepts everything Encode can produce.
func (s Status) Encode() string {
	switch s.Kind {
	case StatusInterview:
		return interviewPrefix + strconv.FormatUint(uint64(s.Round), 10)
	case StatusOffer:
		return offerPrefix + strconv.FormatInt(int64(s.Amount), 10)
	case StatusRejected:
		return "rejected"
	default:
		return "applied"
	}
}

// String returns the encoded form.
func (s Status) String() string { return s.Encode() }

// ParseStatus decodes a stored status string. It recognizes exactly the
// four shapes Encode produces and rejects everything else: an unknown
// status text, an interview round outside 0-255, or a non-numeric payload.
func ParseStatus(s string) (Status, error) {
	switch {
	case s == "applied":
		return Applied(), nil
	case s == "rejected":
		return Rejected(), nil
	case strings.HasPrefix(s, interviewPrefix):
		raw := strings.TrimPrefix(s, interviewPrefix)
		round, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return Status{}, fmt.Errorf("invalid interview round: %s", raw)
		}
		return Interview(uint8(round)), nil
	case strings.HasPrefix(s, offerPrefix):
		raw := strings.TrimPrefix(s, offerPrefix)
		amount, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Status{}, fmt.Errorf("invalid offer amount: %s", raw)
		}
		return Offer(int32(amount)), nil
	default:
		return Status{}, fmt.Errorf("unknown status: %s", s)
	}
}

// Compare orders statuses by kind in declaration order, then by payload.
// Returns -1, 0 or 1.
func (s Status) Compare(o Status) int {
	if s.Kind != o.Kind {
		if s.Kind < o.Kind {
			return -1
		}
		return 1
	}
	switch s.Kind {
	case StatusInterview:
		return cmpInt(int64(s.Round), int64(o.Round))
	case StatusOffer:
		return cmpInt(int64(s.Amount), int64(o.Amount))
	default:
		return 0
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
