package lotbook

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// File names inside the data directory.
const (
	carsFile         = "cars.txt"
	customersFile    = "customers.txt"
	loansFile        = "loans.txt"
	paymentsFile     = "payments.txt"
	amortizationFile = "amortization.txt"
	settingsFile     = "settings.txt"
	sequencesFile    = "sequences.txt"
)

// Repository composes the entity stores, the settings store and the
// sequence allocator into the single data-access surface of the
// application. Construct one with Open at process startup and pass it
// to every consumer.
//
// Reads are served from memory. Mutations change the in-memory list
// and synchronously rewrite that entity's whole backing file. Apart
// from identifier allocation, operations are not internally
// synchronized; the repository assumes a single logical writer.
type Repository struct {
	dir string

	seq      *sequences
	cars     *table[Car]
	custs    *table[Customer]
	loans    *table[Loan]
	pays     *table[Payment]
	rows     *table[AmortizationRow]
	settings *settingsStore
}

// DefaultDir returns the conventional data directory, a hidden folder
// in the user's home.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}
	return filepath.Join(home, ".lotbook"), nil
}

// Open loads a repository from the given data directory, creating the
// directory when needed and seeding defaults when the store is fresh.
//
// Malformed record lines are logged and skipped; only real I/O
// failures make Open return an error.
func Open(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}

	seq, err := loadSequences(filepath.Join(dir, sequencesFile))
	if err != nil {
		return nil, err
	}
	settings, err := loadSettings(filepath.Join(dir, settingsFile))
	if err != nil {
		return nil, err
	}

	r := &Repository{
		dir:      dir,
		seq:      seq,
		settings: settings,
		cars: newTable(filepath.Join(dir, carsFile),
			func(c Car) int64 { return c.ID }, encodeCar, decodeCar),
		custs: newTable(filepath.Join(dir, customersFile),
			func(c Customer) int64 { return c.ID }, encodeCustomer, decodeCustomer),
		loans: newTable(filepath.Join(dir, loansFile),
			func(l Loan) int64 { return l.ID }, encodeLoan, decodeLoan),
		pays: newTable(filepath.Join(dir, paymentsFile),
			func(p Payment) int64 { return p.ID }, encodePayment, decodePayment),
		rows: newTable(filepath.Join(dir, amortizationFile),
			func(a AmortizationRow) int64 { return a.ID }, encodeAmortizationRow, decodeAmortizationRow),
	}

	skipped := 0
	for _, load := range []func() (int, error){
		r.cars.load, r.custs.load, r.loans.load, r.pays.load, r.rows.load,
	} {
		n, err := load()
		if err != nil {
			return nil, err
		}
		skipped += n
	}
	if skipped > 0 {
		log.Printf("loaded store from %s, %d malformed record(s) skipped", dir, skipped)
	}

	r.bootstrap()
	return r, nil
}

// Dir returns the data directory backing this repository.
func (r *Repository) Dir() string { return r.dir }

// now stamps new records. Truncated to the second so a record decoded
// back from its file compares equal to the one that was inserted.
func now() time.Time { return time.Now().UTC().Truncate(time.Second) }

// Cars returns all cars in insertion order.
func (r *Repository) Cars() []Car { return r.cars.all() }

// Car looks a car up by id.
func (r *Repository) Car(id int64) (Car, bool) { return r.cars.get(id) }

// AddCar assigns the car a fresh id and creation timestamp, appends it
// and persists the car file. The new id is returned.
func (r *Repository) AddCar(c Car) int64 {
	c.ID = r.seq.NextID(kindCar)
	c.CreatedAt = now()
	r.cars.append(c)
	return c.ID
}

// UpdateCar replaces the car with the same id, reporting whether a
// match was found.
func (r *Repository) UpdateCar(c Car) bool { return r.cars.replace(c) }

// DeleteCar removes a car by id. Loans referencing it are left
// untouched; their CarID dangles.
func (r *Repository) DeleteCar(id int64) bool { return r.cars.remove(id) }

// Customers returns all customers in insertion order.
func (r *Repository) Customers() []Customer { return r.custs.all() }

// Customer looks a customer up by id.
func (r *Repository) Customer(id int64) (Customer, bool) { return r.custs.get(id) }

// AddCustomer assigns a fresh id and creation timestamp and persists.
func (r *Repository) AddCustomer(c Customer) int64 {
	c.ID = r.seq.NextID(kindCustomer)
	c.CreatedAt = now()
	r.custs.append(c)
	return c.ID
}

// UpdateCustomer replaces the customer with the same id.
func (r *Repository) UpdateCustomer(c Customer) bool { return r.custs.replace(c) }

// DeleteCustomer removes a customer by id. Loans referencing it are
// left untouched; their CustomerID dangles.
func (r *Repository) DeleteCustomer(id int64) bool { return r.custs.remove(id) }

// Loans returns all loans in insertion order.
func (r *Repository) Loans() []Loan { return r.loans.all() }

// Loan looks a loan up by id.
func (r *Repository) Loan(id int64) (Loan, bool) { return r.loans.get(id) }

// AddLoan assigns a fresh id and creation timestamp and persists.
func (r *Repository) AddLoan(l Loan) int64 {
	l.ID = r.seq.NextID(kindLoan)
	l.CreatedAt = now()
	r.loans.append(l)
	return l.ID
}

// UpdateLoan replaces the loan with the same id.
func (r *Repository) UpdateLoan(l Loan) bool { return r.loans.replace(l) }

// UpdateLoanStatus sets the status label on a loan. No transition
// graph is enforced.
func (r *Repository) UpdateLoanStatus(id int64, status string) bool {
	l, ok := r.loans.get(id)
	if !ok {
		return false
	}
	l.Status = status
	return r.loans.replace(l)
}

// DeleteLoan removes a loan by id. Its payments and amortization rows
// are not cascaded.
func (r *Repository) DeleteLoan(id int64) bool { return r.loans.remove(id) }

// Payments returns all payments in insertion order.
func (r *Repository) Payments() []Payment { return r.pays.all() }

// Payment looks a payment up by id.
func (r *Repository) Payment(id int64) (Payment, bool) { return r.pays.get(id) }

// AddPayment assigns a fresh id and recording timestamp and persists.
func (r *Repository) AddPayment(p Payment) int64 {
	p.ID = r.seq.NextID(kindPayment)
	p.RecordedAt = now()
	r.pays.append(p)
	return p.ID
}

// UpdatePayment replaces the payment with the same id.
func (r *Repository) UpdatePayment(p Payment) bool { return r.pays.replace(p) }

// DeletePayment removes a payment by id.
func (r *Repository) DeletePayment(id int64) bool { return r.pays.remove(id) }

// AmortizationRows returns all amortization rows in insertion order.
func (r *Repository) AmortizationRows() []AmortizationRow { return r.rows.all() }

// AmortizationRow looks an amortization row up by id.
func (r *Repository) AmortizationRow(id int64) (AmortizationRow, bool) { return r.rows.get(id) }

// UpdateAmortizationRow replaces the row with the same id.
func (r *Repository) UpdateAmortizationRow(a AmortizationRow) bool { return r.rows.replace(a) }

// Setting returns the value for a settings key.
func (r *Repository) Setting(key string) (string, bool) { return r.settings.get(key) }

// SetSetting stores a settings key and persists the settings file.
func (r *Repository) SetSetting(key, value string) { r.settings.set(key, value) }

// Settings returns a copy of all settings.
func (r *Repository) Settings() map[string]string { return r.settings.all() }
