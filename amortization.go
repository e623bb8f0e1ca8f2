package lotbook

import "github.com/shopspring/decimal"

// AmortizationRow is one period of a loan's payment schedule. Rows are
// stored, never generated here: computing the schedule is the caller's
// concern.
type AmortizationRow struct {
	ID               int64
	LoanID           int64
	PeriodIndex      int
	DueDate          Date
	OpeningBalance   decimal.Decimal
	ScheduledPayment decimal.Decimal
	PrincipalPaid    decimal.Decimal
	InterestPaid     decimal.Decimal
	PenaltyAmount    decimal.Decimal
	ExtraPayment     decimal.Decimal
	ClosingBalance   decimal.Decimal
	Paid             bool
	PaidDate         Date // optional
}

const amortizationFieldCount = 13

func encodeAmortizationRow(a AmortizationRow) string {
	return joinFields(
		encID(a.ID),
		encID(a.LoanID),
		encInt(a.PeriodIndex),
		encDate(a.DueDate),
		encDecimal(a.OpeningBalance),
		encDecimal(a.ScheduledPayment),
		encDecimal(a.PrincipalPaid),
		encDecimal(a.InterestPaid),
		encDecimal(a.PenaltyAmount),
		encDecimal(a.ExtraPayment),
		encDecimal(a.ClosingBalance),
		encBool(a.Paid),
		encOptDate(a.PaidDate),
	)
}

func decodeAmortizationRow(line string) (AmortizationRow, error) {
	f, err := splitFields(line, amortizationFieldCount)
	if err != nil {
		return AmortizationRow{}, err
	}
	var a AmortizationRow
	if a.ID, err = decID(f[0]); err != nil {
		return AmortizationRow{}, err
	}
	if a.LoanID, err = decID(f[1]); err != nil {
		return AmortizationRow{}, err
	}
	if a.PeriodIndex, err = decInt(f[2]); err != nil {
		return AmortizationRow{}, err
	}
	if a.DueDate, err = decDate(f[3]); err != nil {
		return AmortizationRow{}, err
	}
	if a.OpeningBalance, err = decDecimal(f[4]); err != nil {
		return AmortizationRow{}, err
	}
	if a.ScheduledPayment, err = decDecimal(f[5]); err != nil {
		return AmortizationRow{}, err
	}
	if a.PrincipalPaid, err = decDecimal(f[6]); err != nil {
		return AmortizationRow{}, err
	}
	if a.InterestPaid, err = decDecimal(f[7]); err != nil {
		return AmortizationRow{}, err
	}
	if a.PenaltyAmount, err = decDecimal(f[8]); err != nil {
		return AmortizationRow{}, err
	}
	if a.ExtraPayment, err = decDecimal(f[9]); err != nil {
		return AmortizationRow{}, err
	}
	if a.ClosingBalance, err = decDecimal(f[10]); err != nil {
		return AmortizationRow{}, err
	}
	if a.Paid, err = decBool(f[11]); err != nil {
		return AmortizationRow{}, err
	}
	if a.PaidDate, err = decOptDate(f[12]); err != nil {
		return AmortizationRow{}, err
	}
	return a, nil
}
