package lotbook

import (
	"log"

	"github.com/shopspring/decimal"
)

// bootstrap seeds default settings and sample records the first time
// the store is opened on an empty data directory. An empty car list
// after the initial load is the "store is fresh" signal; if any car
// exists, bootstrap does nothing.
func (r *Repository) bootstrap() {
	if r.cars.len() > 0 {
		return
	}
	log.Printf("empty store in %s, seeding defaults", r.dir)

	defaults := []struct{ key, value string }{
		{SettingCurrency, "USD"},
		{SettingDefaultAPR, "5.5"},
		{SettingDefaultTerm, "36"},
		{SettingPenaltyRate, "2.0"},
		{SettingPenaltyType, "percent"},
		{SettingGraceDays, "7"},
		{SettingSchemaVersion, "1"},
		{SettingAppVersion, "0.1.0"},
	}
	for _, d := range defaults {
		if _, ok := r.settings.get(d.key); !ok {
			r.settings.set(d.key, d.value)
		}
	}

	// Sample records go through the normal insert path so they receive
	// real allocated ids and timestamps.
	for _, c := range sampleCars() {
		r.AddCar(c)
	}
	for _, c := range sampleCustomers() {
		r.AddCustomer(c)
	}
}

func sampleCars() []Car {
	return []Car{
		{
			Make:       "Toyota",
			Model:      "Corolla Altis",
			Year:       2022,
			Price:      decimal.RequireFromString("21500.00"),
			Category:   "Sedan",
			Color:      "Silver",
			Efficiency: "31 mpg",
			Available:  true,
		},
		{
			Make:       "Honda",
			Model:      "CR-V",
			Year:       2023,
			Price:      decimal.RequireFromString("28900.00"),
			Category:   "SUV",
			Color:      "White",
			Efficiency: "28 mpg",
			Available:  true,
		},
		{
			Make:       "Ford",
			Model:      "F-150",
			Year:       2021,
			Price:      decimal.RequireFromString("33250.50"),
			Category:   "Pickup",
			Color:      "Blue",
			Efficiency: "22 mpg",
			Notes:      "single previous owner",
			Available:  true,
		},
	}
}

func sampleCustomers() []Customer {
	return []Customer{
		{
			FullName: "Maria Santos",
			Contact:  "+1 555 0134",
			Email:    "maria.santos@example.com",
			Address:  "14 Elm Street, Springfield",
		},
		{
			FullName: "James Carter",
			Contact:  "+1 555 0178",
			Email:    "j.carter@example.com",
			Address:  "220 Oak Avenue, Riverton",
		},
	}
}
