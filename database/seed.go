package database

import "doctorportal/models"

// DefaultSlots is the daily slot list every demo treatment offers.
var DefaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
	"03.00 PM - 03.30 PM",
	"03.30 PM - 04.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
}

// DefaultCatalog returns the demo treatment catalog.
func DefaultCatalog() []models.AppointmentOption {
	names := []struct {
		name  string
		price float64
	}{
		{"Teeth Orthodontics", 99},
		{"Cosmetic Dentistry", 109},
		{"Teeth Cleaning", 49},
		{"Cavity Protection", 79},
		{"Pediatric Dental", 69},
		{"Oral Surgery", 149},
	}

	opts := make([]models.AppointmentOption, 0, len(names))
	for _, n := range names {
		opts = append(opts, models.AppointmentOption{
			Name:  n.name,
			Slots: append([]string(nil), DefaultSlots...),
			Price: n.price,
		})
	}
	return opts
}
