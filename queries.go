package lotbook

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// This file holds the referential queries: everything whose answer
// depends on relationships between entity types rather than a single
// type's fields.

// LoanDetails is a loan joined with its referenced customer and car.
// A join target whose id no longer exists is left nil rather than
// erroring; foreign keys are not enforced anywhere in this store.
type LoanDetails struct {
	Loan
	Customer *Customer
	Car      *Car
}

// AvailableCars returns cars flagged available whose id is not
// referenced by any loan with status "active".
//
// Pending loans do not exclude a car here, even though they do count
// in CarInActiveLoan. The asymmetry is deliberate: a pending loan
// blocks opening a second loan on the car, but the car still shows on
// the lot until the loan is activated.
func (r *Repository) AvailableCars() []Car {
	onActiveLoan := make(map[int64]bool)
	for _, l := range r.loans.records {
		if statusIs(l.Status, StatusActive) {
			onActiveLoan[l.CarID] = true
		}
	}

	var out []Car
	for _, c := range r.cars.records {
		if c.Available && !onActiveLoan[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// SearchCars matches the query case-insensitively as a substring of
// make, model, year or category. An empty query returns all cars.
func (r *Repository) SearchCars(query string) []Car {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.Cars()
	}
	q := strings.ToLower(query)

	var out []Car
	for _, c := range r.cars.records {
		if containsFold(c.Make, q) ||
			containsFold(c.Model, q) ||
			containsFold(encInt(c.Year), q) ||
			containsFold(c.Category, q) {
			out = append(out, c)
		}
	}
	return out
}

// SearchCustomers matches the query case-insensitively as a substring
// of name, contact number or email. An empty query returns all
// customers.
func (r *Repository) SearchCustomers(query string) []Customer {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.Customers()
	}
	q := strings.ToLower(query)

	var out []Customer
	for _, c := range r.custs.records {
		if containsFold(c.FullName, q) ||
			containsFold(c.Contact, q) ||
			containsFold(c.Email, q) {
			out = append(out, c)
		}
	}
	return out
}

// containsFold reports whether q, already lowercased, is a substring
// of s under case folding.
func containsFold(s, q string) bool { return strings.Contains(strings.ToLower(s), q) }

// CustomerHasActiveLoans reports whether any loan referencing the
// customer is active or pending.
func (r *Repository) CustomerHasActiveLoans(customerID int64) bool {
	for _, l := range r.loans.records {
		if l.CustomerID == customerID && (statusIs(l.Status, StatusActive) || statusIs(l.Status, StatusPending)) {
			return true
		}
	}
	return false
}

// CustomerHasLoans reports whether any loan references the customer,
// regardless of status.
func (r *Repository) CustomerHasLoans(customerID int64) bool {
	for _, l := range r.loans.records {
		if l.CustomerID == customerID {
			return true
		}
	}
	return false
}

// CarInActiveLoan reports whether any loan referencing the car is
// active or pending.
func (r *Repository) CarInActiveLoan(carID int64) bool {
	for _, l := range r.loans.records {
		if l.CarID == carID && (statusIs(l.Status, StatusActive) || statusIs(l.Status, StatusPending)) {
			return true
		}
	}
	return false
}

// LoanWithDetails joins one loan with its customer and car.
func (r *Repository) LoanWithDetails(id int64) (LoanDetails, bool) {
	l, ok := r.loans.get(id)
	if !ok {
		return LoanDetails{}, false
	}
	return r.join(l), true
}

// AllLoansWithDetails joins every loan with its customer and car.
func (r *Repository) AllLoansWithDetails() []LoanDetails {
	out := make([]LoanDetails, 0, r.loans.len())
	for _, l := range r.loans.records {
		out = append(out, r.join(l))
	}
	return out
}

// LoansByStatus filters loans by status label, case-insensitively, and
// joins each with its customer and car.
func (r *Repository) LoansByStatus(status string) []LoanDetails {
	var out []LoanDetails
	for _, l := range r.loans.records {
		if statusIs(l.Status, status) {
			out = append(out, r.join(l))
		}
	}
	return out
}

func (r *Repository) join(l Loan) LoanDetails {
	d := LoanDetails{Loan: l}
	if c, ok := r.custs.get(l.CustomerID); ok {
		d.Customer = &c
	}
	if c, ok := r.cars.get(l.CarID); ok {
		d.Car = &c
	}
	return d
}

// PaymentsByLoan returns the payments recorded against a loan, ordered
// by payment date ascending.
func (r *Repository) PaymentsByLoan(loanID int64) []Payment {
	var out []Payment
	for _, p := range r.pays.records {
		if p.LoanID == loanID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PaymentDate.Before(out[j].PaymentDate)
	})
	return out
}

// TotalPaidForLoan sums the payment amounts for a loan, starting from
// zero. The sum is exact decimal arithmetic.
func (r *Repository) TotalPaidForLoan(loanID int64) decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.pays.records {
		if p.LoanID == loanID {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// AmortizationByLoan returns a loan's schedule rows ordered by period
// index ascending.
func (r *Repository) AmortizationByLoan(loanID int64) []AmortizationRow {
	var out []AmortizationRow
	for _, a := range r.rows.records {
		if a.LoanID == loanID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PeriodIndex < out[j].PeriodIndex
	})
	return out
}

// NextUnpaidRow returns the unpaid amortization row with the smallest
// period index for a loan, or false if every row is paid or none
// exist.
func (r *Repository) NextUnpaidRow(loanID int64) (AmortizationRow, bool) {
	var best AmortizationRow
	found := false
	for _, a := range r.rows.records {
		if a.LoanID != loanID || a.Paid {
			continue
		}
		if !found || a.PeriodIndex < best.PeriodIndex {
			best = a
			found = true
		}
	}
	return best, found
}

// InsertAmortizationRows bulk-inserts schedule rows. Every row gets
// its own freshly allocated id; the file is rewritten once for the
// whole batch. The allocated ids are returned in row order.
func (r *Repository) InsertAmortizationRows(rows []AmortizationRow) []int64 {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, len(rows))
	for i := range rows {
		rows[i].ID = r.seq.NextID(kindAmortization)
		ids[i] = rows[i].ID
	}
	r.rows.append(rows...)
	return ids
}

// DeleteAmortizationByLoan removes every schedule row of a loan with a
// single file rewrite, returning the count removed.
func (r *Repository) DeleteAmortizationByLoan(loanID int64) int {
	return r.rows.removeIf(func(a AmortizationRow) bool { return a.LoanID == loanID })
}
