package lotbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// Car is a vehicle on the lot, available for sale and financing.
type Car struct {
	ID         int64
	Make       string
	Model      string
	Year       int
	Price      decimal.Decimal
	Category   string
	Color      string
	Efficiency string
	Image      string // optional path or URL to a picture
	Notes      string // optional free text
	Available  bool
	CreatedAt  time.Time
}

const carFieldCount = 12

// encodeCar writes a car as one record line, fields in the fixed
// cars.txt order.
func encodeCar(c Car) string {
	return joinFields(
		encID(c.ID),
		encString(c.Make),
		encString(c.Model),
		encInt(c.Year),
		encDecimal(c.Price),
		encString(c.Category),
		encString(c.Color),
		encString(c.Efficiency),
		encOptString(c.Image),
		encOptString(c.Notes),
		encBool(c.Available),
		encOptTime(c.CreatedAt),
	)
}

// decodeCar parses one cars.txt line.
func decodeCar(line string) (Car, error) {
	f, err := splitFields(line, carFieldCount)
	if err != nil {
		return Car{}, err
	}
	var c Car
	if c.ID, err = decID(f[0]); err != nil {
		return Car{}, err
	}
	c.Make = f[1]
	c.Model = f[2]
	if c.Year, err = decInt(f[3]); err != nil {
		return Car{}, err
	}
	if c.Price, err = decDecimal(f[4]); err != nil {
		return Car{}, err
	}
	c.Category = f[5]
	c.Color = f[6]
	c.Efficiency = f[7]
	c.Image = decOptString(f[8])
	c.Notes = decOptString(f[9])
	if c.Available, err = decBool(f[10]); err != nil {
		return Car{}, err
	}
	if c.CreatedAt, err = decOptTime(f[11]); err != nil {
		return Car{}, err
	}
	return c, nil
}
