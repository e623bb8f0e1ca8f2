package lotbook

import "time"

// Customer is a person the lot sells or finances a car to.
type Customer struct {
	ID        int64
	FullName  string
	Contact   string
	Email     string
	Address   string
	CreatedAt time.Time
}

const customerFieldCount = 6

func encodeCustomer(c Customer) string {
	return joinFields(
		encID(c.ID),
		encString(c.FullName),
		encString(c.Contact),
		encString(c.Email),
		encString(c.Address),
		encOptTime(c.CreatedAt),
	)
}

func decodeCustomer(line string) (Customer, error) {
	f, err := splitFields(line, customerFieldCount)
	if err != nil {
		return Customer{}, err
	}
	var c Customer
	if c.ID, err = decID(f[0]); err != nil {
		return Customer{}, err
	}
	c.FullName = f[1]
	c.Contact = f[2]
	c.Email = f[3]
	c.Address = f[4]
	if c.CreatedAt, err = decOptTime(f[5]); err != nil {
		return Customer{}, err
	}
	return c, nil
}
