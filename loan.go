package lotbook

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Loan statuses. Status is a plain label with no enforced transition
// graph: callers set it directly. Only pending and active participate
// in availability and active-loan queries.
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusDefaulted = "defaulted"
	StatusCancelled = "cancelled"
)

// Loan ties a customer to a car together with the financing terms and
// the computed totals. CustomerID and CarID are plain identifiers:
// deleting the referenced record leaves them dangling.
type Loan struct {
	ID               int64
	CustomerID       int64
	CarID            int64
	Principal        decimal.Decimal
	APR              decimal.Decimal // annual rate, percent
	Compounding      string
	TermMonths       int
	PaymentFrequency string
	StartDate        Date // optional
	PenaltyRate      decimal.Decimal
	PenaltyType      string
	GracePeriodDays  int
	DownPayment      decimal.Decimal
	TradeInValue     decimal.Decimal
	SalesTaxRate     decimal.Decimal
	RegistrationFee  decimal.Decimal
	MonthlyPayment   decimal.Decimal
	TotalInterest    decimal.Decimal
	TotalAmount      decimal.Decimal
	Status           string
	CreatedAt        time.Time
}

// statusIs compares loan statuses case-insensitively.
func statusIs(status, want string) bool { return strings.EqualFold(status, want) }

const loanFieldCount = 21

func encodeLoan(l Loan) string {
	return joinFields(
		encID(l.ID),
		encID(l.CustomerID),
		encID(l.CarID),
		encDecimal(l.Principal),
		encDecimal(l.APR),
		encString(l.Compounding),
		encInt(l.TermMonths),
		encString(l.PaymentFrequency),
		encOptDate(l.StartDate),
		encDecimal(l.PenaltyRate),
		encString(l.PenaltyType),
		encInt(l.GracePeriodDays),
		encDecimal(l.DownPayment),
		encDecimal(l.TradeInValue),
		encDecimal(l.SalesTaxRate),
		encDecimal(l.RegistrationFee),
		encDecimal(l.MonthlyPayment),
		encDecimal(l.TotalInterest),
		encDecimal(l.TotalAmount),
		encString(l.Status),
		encOptTime(l.CreatedAt),
	)
}

func decodeLoan(line string) (Loan, error) {
	f, err := splitFields(line, loanFieldCount)
	if err != nil {
		return Loan{}, err
	}
	var l Loan
	if l.ID, err = decID(f[0]); err != nil {
		return Loan{}, err
	}
	if l.CustomerID, err = decID(f[1]); err != nil {
		return Loan{}, err
	}
	if l.CarID, err = decID(f[2]); err != nil {
		return Loan{}, err
	}
	if l.Principal, err = decDecimal(f[3]); err != nil {
		return Loan{}, err
	}
	if l.APR, err = decDecimal(f[4]); err != nil {
		return Loan{}, err
	}
	l.Compounding = f[5]
	if l.TermMonths, err = decInt(f[6]); err != nil {
		return Loan{}, err
	}
	l.PaymentFrequency = f[7]
	if l.StartDate, err = decOptDate(f[8]); err != nil {
		return Loan{}, err
	}
	if l.PenaltyRate, err = decDecimal(f[9]); err != nil {
		return Loan{}, err
	}
	l.PenaltyType = f[10]
	if l.GracePeriodDays, err = decInt(f[11]); err != nil {
		return Loan{}, err
	}
	if l.DownPayment, err = decDecimal(f[12]); err != nil {
		return Loan{}, err
	}
	if l.TradeInValue, err = decDecimal(f[13]); err != nil {
		return Loan{}, err
	}
	if l.SalesTaxRate, err = decDecimal(f[14]); err != nil {
		return Loan{}, err
	}
	if l.RegistrationFee, err = decDecimal(f[15]); err != nil {
		return Loan{}, err
	}
	if l.MonthlyPayment, err = decDecimal(f[16]); err != nil {
		return Loan{}, err
	}
	if l.TotalInterest, err = decDecimal(f[17]); err != nil {
		return Loan{}, err
	}
	if l.TotalAmount, err = decDecimal(f[18]); err != nil {
		return Loan{}, err
	}
	l.Status = f[19]
	if l.CreatedAt, err = decOptTime(f[20]); err != nil {
		return Loan{}, err
	}
	return l, nil
}
