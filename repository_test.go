package lotbook

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	r, err := Open(t.TempDir())
	require.NoError(t, err)
	return r
}

func testLoan(customerID, carID int64, status string) Loan {
	return Loan{
		CustomerID:       customerID,
		CarID:            carID,
		Principal:        dec("25000.00"),
		APR:              dec("5.5"),
		Compounding:      "monthly",
		TermMonths:       36,
		PaymentFrequency: "monthly",
		StartDate:        MustParseDate("2025-04-01"),
		PenaltyRate:      dec("2.0"),
		PenaltyType:      "percent",
		GracePeriodDays:  7,
		MonthlyPayment:   dec("754.85"),
		TotalInterest:    dec("2174.60"),
		TotalAmount:      dec("27174.60"),
		Status:           status,
	}
}

func TestAddCarPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	r, err := Open(dir)
	require.NoError(t, err)

	id := r.AddCar(Car{
		Make: "Mazda", Model: "MX-5", Year: 2024,
		Price: dec("33250.50"), Category: "Roadster", Color: "Red",
		Efficiency: "26 mpg", Available: true,
	})
	want, ok := r.Car(id)
	require.True(t, ok)
	assert.False(t, want.CreatedAt.IsZero(), "AddCar should stamp CreatedAt")

	reopened, err := Open(dir)
	require.NoError(t, err)
	got, ok := reopened.Car(id)
	require.True(t, ok, "car must survive a reopen")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("car changed across reopen (-want +got):\n%s", diff)
	}
	assert.True(t, got.Price.Equal(dec("33250.50")), "decimal price must survive exactly, got %s", got.Price)
}

func TestIdentifiersNeverReused(t *testing.T) {
	r := openTestRepo(t)
	id := r.AddCustomer(Customer{FullName: "Ana Ruiz", Contact: "555", Email: "a@example.com", Address: "x"})
	require.True(t, r.DeleteCustomer(id))
	next := r.AddCustomer(Customer{FullName: "Ben Okafor", Contact: "556", Email: "b@example.com", Address: "y"})
	assert.Greater(t, next, id, "a deleted id must not be handed out again")
}

func TestAvailableCarsExcludesOnlyActiveLoans(t *testing.T) {
	r := openTestRepo(t)
	custID := r.AddCustomer(Customer{FullName: "Test Buyer", Contact: "555", Email: "t@example.com", Address: "z"})

	activeCar := r.AddCar(Car{Make: "A", Model: "One", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})
	pendingCar := r.AddCar(Car{Make: "B", Model: "Two", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})
	freeCar := r.AddCar(Car{Make: "C", Model: "Three", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})
	hiddenCar := r.AddCar(Car{Make: "D", Model: "Four", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: false})

	r.AddLoan(testLoan(custID, activeCar, StatusActive))
	r.AddLoan(testLoan(custID, pendingCar, StatusPending))

	avail := make(map[int64]bool)
	for _, c := range r.AvailableCars() {
		avail[c.ID] = true
	}
	assert.False(t, avail[activeCar], "car on an active loan must not be available")
	assert.True(t, avail[pendingCar], "a pending loan does not hide the car from the lot")
	assert.True(t, avail[freeCar])
	assert.False(t, avail[hiddenCar], "unavailable flag always hides the car")

	// Both pending and active block a second loan on the same car.
	assert.True(t, r.CarInActiveLoan(activeCar))
	assert.True(t, r.CarInActiveLoan(pendingCar))
	assert.False(t, r.CarInActiveLoan(freeCar))
}

func TestAvailabilityFollowsStatusChanges(t *testing.T) {
	r := openTestRepo(t)
	custID := r.AddCustomer(Customer{FullName: "Test Buyer", Contact: "555", Email: "t@example.com", Address: "z"})
	carID := r.AddCar(Car{Make: "A", Model: "One", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})
	loanID := r.AddLoan(testLoan(custID, carID, StatusActive))

	inAvailable := func() bool {
		for _, c := range r.AvailableCars() {
			if c.ID == carID {
				return true
			}
		}
		return false
	}
	assert.False(t, inAvailable())

	require.True(t, r.UpdateLoanStatus(loanID, StatusCompleted))
	assert.True(t, inAvailable(), "completing the loan frees the car")
	assert.False(t, r.CarInActiveLoan(carID))

	// Status matching is case-insensitive.
	require.True(t, r.UpdateLoanStatus(loanID, "Active"))
	assert.False(t, inAvailable())
	assert.False(t, r.UpdateLoanStatus(999, StatusActive))
}

func TestCustomerLoanChecks(t *testing.T) {
	r := openTestRepo(t)
	borrower := r.AddCustomer(Customer{FullName: "Borrower", Contact: "1", Email: "b@example.com", Address: "x"})
	pastClient := r.AddCustomer(Customer{FullName: "Past", Contact: "2", Email: "p@example.com", Address: "y"})
	walkIn := r.AddCustomer(Customer{FullName: "Walk In", Contact: "3", Email: "w@example.com", Address: "z"})
	carID := r.AddCar(Car{Make: "A", Model: "One", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})

	r.AddLoan(testLoan(borrower, carID, StatusPending))
	r.AddLoan(testLoan(pastClient, carID, StatusCompleted))

	assert.True(t, r.CustomerHasActiveLoans(borrower), "pending counts as active for the customer check")
	assert.False(t, r.CustomerHasActiveLoans(pastClient))
	assert.False(t, r.CustomerHasActiveLoans(walkIn))

	assert.True(t, r.CustomerHasLoans(borrower))
	assert.True(t, r.CustomerHasLoans(pastClient))
	assert.False(t, r.CustomerHasLoans(walkIn))
}

func TestSearchCars(t *testing.T) {
	r := openTestRepo(t)

	// The seeded inventory includes a Toyota.
	matches := r.SearchCars("toy")
	require.NotEmpty(t, matches, "case-insensitive substring search should hit the seeded Toyota")
	for _, c := range matches {
		assert.Equal(t, "Toyota", c.Make)
	}

	assert.NotEmpty(t, r.SearchCars("SUV"), "category is searchable")
	assert.NotEmpty(t, r.SearchCars("2021"), "year is searchable as text")
	assert.Empty(t, r.SearchCars("zeppelin"))
	assert.Len(t, r.SearchCars("  "), len(r.Cars()), "blank query returns the whole inventory")
}

func TestSearchCustomers(t *testing.T) {
	r := openTestRepo(t)
	matches := r.SearchCustomers("maria")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Maria Santos", matches[0].FullName)

	assert.NotEmpty(t, r.SearchCustomers("0178"), "contact number is searchable")
	assert.NotEmpty(t, r.SearchCustomers("example.com"), "email is searchable")
	assert.Len(t, r.SearchCustomers(""), len(r.Customers()))
}

func TestTotalPaidForLoan(t *testing.T) {
	r := openTestRepo(t)
	custID := r.AddCustomer(Customer{FullName: "Payer", Contact: "1", Email: "p@example.com", Address: "x"})
	carID := r.AddCar(Car{Make: "A", Model: "One", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})
	loanID := r.AddLoan(testLoan(custID, carID, StatusActive))
	otherLoan := r.AddLoan(testLoan(custID, carID, StatusActive))

	r.AddPayment(Payment{LoanID: loanID, PaymentDate: MustParseDate("2025-05-01"), Amount: dec("5000.00"), AppliedToPeriod: 1, Type: "regular", RecordedBy: "admin"})
	r.AddPayment(Payment{LoanID: loanID, PaymentDate: MustParseDate("2025-06-01"), Amount: dec("3200.50"), AppliedToPeriod: 2, Type: "regular", RecordedBy: "admin"})
	r.AddPayment(Payment{LoanID: otherLoan, PaymentDate: MustParseDate("2025-06-01"), Amount: dec("999.99"), AppliedToPeriod: 1, Type: "regular", RecordedBy: "admin"})

	total := r.TotalPaidForLoan(loanID)
	assert.True(t, total.Equal(dec("8200.50")), "total = %s, want 8200.50", total)
	assert.True(t, r.TotalPaidForLoan(12345).Equal(decimal.Zero), "unknown loan sums to zero")
}

func TestPaymentsByLoanOrderedByDate(t *testing.T) {
	r := openTestRepo(t)
	custID := r.AddCustomer(Customer{FullName: "Payer", Contact: "1", Email: "p@example.com", Address: "x"})
	carID := r.AddCar(Car{Make: "A", Model: "One", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})
	loanID := r.AddLoan(testLoan(custID, carID, StatusActive))

	// Inserted out of order on purpose.
	r.AddPayment(Payment{LoanID: loanID, PaymentDate: MustParseDate("2025-07-01"), Amount: dec("3"), AppliedToPeriod: 3, Type: "regular", RecordedBy: "admin"})
	r.AddPayment(Payment{LoanID: loanID, PaymentDate: MustParseDate("2025-05-01"), Amount: dec("1"), AppliedToPeriod: 1, Type: "regular", RecordedBy: "admin"})
	r.AddPayment(Payment{LoanID: loanID, PaymentDate: MustParseDate("2025-06-01"), Amount: dec("2"), AppliedToPeriod: 2, Type: "regular", RecordedBy: "admin"})

	pays := r.PaymentsByLoan(loanID)
	require.Len(t, pays, 3)
	for i := 1; i < len(pays); i++ {
		assert.False(t, pays[i].PaymentDate.Before(pays[i-1].PaymentDate),
			"payments out of date order: %v before %v", pays[i].PaymentDate, pays[i-1].PaymentDate)
	}
}

func TestAmortizationLifecycle(t *testing.T) {
	r := openTestRepo(t)
	custID := r.AddCustomer(Customer{FullName: "Payer", Contact: "1", Email: "p@example.com", Address: "x"})
	carID := r.AddCar(Car{Make: "A", Model: "One", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})
	loanID := r.AddLoan(testLoan(custID, carID, StatusActive))

	rows := []AmortizationRow{
		{LoanID: loanID, PeriodIndex: 2, DueDate: MustParseDate("2025-06-01"), OpeningBalance: dec("24359.74"), ScheduledPayment: dec("754.85"), ClosingBalance: dec("23716.23")},
		{LoanID: loanID, PeriodIndex: 1, DueDate: MustParseDate("2025-05-01"), OpeningBalance: dec("25000.00"), ScheduledPayment: dec("754.85"), ClosingBalance: dec("24359.74")},
		{LoanID: loanID, PeriodIndex: 3, DueDate: MustParseDate("2025-07-01"), OpeningBalance: dec("23716.23"), ScheduledPayment: dec("754.85"), ClosingBalance: dec("23069.77")},
	}
	ids := r.InsertAmortizationRows(rows)
	require.Len(t, ids, 3)
	for i, id := range ids {
		assert.Positive(t, id, "row %d got no id", i)
	}

	sched := r.AmortizationByLoan(loanID)
	require.Len(t, sched, 3)
	for i, row := range sched {
		assert.Equal(t, i+1, row.PeriodIndex, "schedule must come back ordered by period")
	}

	next, ok := r.NextUnpaidRow(loanID)
	require.True(t, ok)
	assert.Equal(t, 1, next.PeriodIndex)

	next.Paid = true
	next.PaidDate = MustParseDate("2025-05-02")
	require.True(t, r.UpdateAmortizationRow(next))

	next, ok = r.NextUnpaidRow(loanID)
	require.True(t, ok)
	assert.Equal(t, 2, next.PeriodIndex, "paying a period advances the next unpaid row")

	assert.Equal(t, 3, r.DeleteAmortizationByLoan(loanID))
	assert.Empty(t, r.AmortizationByLoan(loanID))
	_, ok = r.NextUnpaidRow(loanID)
	assert.False(t, ok)
}

func TestLoanJoins(t *testing.T) {
	r := openTestRepo(t)
	custID := r.AddCustomer(Customer{FullName: "Joined", Contact: "1", Email: "j@example.com", Address: "x"})
	carID := r.AddCar(Car{Make: "A", Model: "One", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})
	loanID := r.AddLoan(testLoan(custID, carID, StatusActive))

	d, ok := r.LoanWithDetails(loanID)
	require.True(t, ok)
	require.NotNil(t, d.Customer)
	require.NotNil(t, d.Car)
	assert.Equal(t, "Joined", d.Customer.FullName)
	assert.Equal(t, "One", d.Car.Model)

	// Deleting a referenced record leaves a nil join target, not an error.
	require.True(t, r.DeleteCustomer(custID))
	d, ok = r.LoanWithDetails(loanID)
	require.True(t, ok)
	assert.Nil(t, d.Customer, "dangling customer reference joins as nil")
	assert.NotNil(t, d.Car)

	_, ok = r.LoanWithDetails(99999)
	assert.False(t, ok)
}

func TestLoansByStatus(t *testing.T) {
	r := openTestRepo(t)
	custID := r.AddCustomer(Customer{FullName: "Filter", Contact: "1", Email: "f@example.com", Address: "x"})
	carID := r.AddCar(Car{Make: "A", Model: "One", Year: 2020, Price: dec("100"), Category: "Sedan", Color: "Grey", Efficiency: "30 mpg", Available: true})

	r.AddLoan(testLoan(custID, carID, StatusActive))
	r.AddLoan(testLoan(custID, carID, "ACTIVE"))
	r.AddLoan(testLoan(custID, carID, StatusDefaulted))

	assert.Len(t, r.LoansByStatus("active"), 2, "status filter folds case")
	assert.Len(t, r.LoansByStatus(StatusDefaulted), 1)
	assert.Empty(t, r.LoansByStatus(StatusCancelled))
	assert.Len(t, r.AllLoansWithDetails(), 3)
}
