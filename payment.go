package lotbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received against a loan, with the split of the
// amount over penalty, principal and interest as applied at the time.
type Payment struct {
	ID               int64
	LoanID           int64
	PaymentDate      Date
	Amount           decimal.Decimal
	AppliedToPeriod  int
	Type             string
	PenaltyApplied   decimal.Decimal
	PrincipalApplied decimal.Decimal
	InterestApplied  decimal.Decimal
	Note             string // optional
	RecordedBy       string
	RecordedAt       time.Time
}

const paymentFieldCount = 12

func encodePayment(p Payment) string {
	return joinFields(
		encID(p.ID),
		encID(p.LoanID),
		encDate(p.PaymentDate),
		encDecimal(p.Amount),
		encInt(p.AppliedToPeriod),
		encString(p.Type),
		encDecimal(p.PenaltyApplied),
		encDecimal(p.PrincipalApplied),
		encDecimal(p.InterestApplied),
		encOptString(p.Note),
		encString(p.RecordedBy),
		encOptTime(p.RecordedAt),
	)
}

func decodePayment(line string) (Payment, error) {
	f, err := splitFields(line, paymentFieldCount)
	if err != nil {
		return Payment{}, err
	}
	var p Payment
	if p.ID, err = decID(f[0]); err != nil {
		return Payment{}, err
	}
	if p.LoanID, err = decID(f[1]); err != nil {
		return Payment{}, err
	}
	if p.PaymentDate, err = decDate(f[2]); err != nil {
		return Payment{}, err
	}
	if p.Amount, err = decDecimal(f[3]); err != nil {
		return Payment{}, err
	}
	if p.AppliedToPeriod, err = decInt(f[4]); err != nil {
		return Payment{}, err
	}
	p.Type = f[5]
	if p.PenaltyApplied, err = decDecimal(f[6]); err != nil {
		return Payment{}, err
	}
	if p.PrincipalApplied, err = decDecimal(f[7]); err != nil {
		return Payment{}, err
	}
	if p.InterestApplied, err = decDecimal(f[8]); err != nil {
		return Payment{}, err
	}
	p.Note = decOptString(f[9])
	p.RecordedBy = f[10]
	if p.RecordedAt, err = decOptTime(f[11]); err != nil {
		return Payment{}, err
	}
	return p, nil
}
