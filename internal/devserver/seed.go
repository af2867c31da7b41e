package devserver

import (
	"github.com/sounicbehera/madina-technician-app/internal/api"
)

// Seed loads a sample technician and a spread of enquiries so the client has
// something to show out of the box. Returns the seeded technician.
func Seed(store *Store) (*Technician, error) {
	tech, err := store.AddTechnician("2389045", "Ravi Kumar", "technician")
	if err != nil {
		return nil, err
	}

	lat, lng := 17.385044, 78.486671
	samples := []*Enquiry{
		{
			Job: api.Job{
				CustomerName: "Anita Reddy",
				ServiceType:  "AC Repair",
				Status:       api.StatusEnquired,
				Phone:        "+919876543210",
				Address:      "12-3 Old Market Road, Madina",
				Landmark:     "Opposite the bus stand",
				Latitude:     &lat,
				Longitude:    &lng,
			},
			TechnicianID: tech.ID,
		},
		{
			Job: api.Job{
				CustomerName: "Suresh Babu",
				ServiceType:  "Fridge Service",
				Status:       api.StatusOnTheWay,
				Phone:        "+919812345678",
				Address:      "45 Station Road, Madina",
			},
			TechnicianID: tech.ID,
		},
		{
			Job: api.Job{
				CustomerName: "Lakshmi Devi",
				ServiceType:  "Washing Machine Install",
				Status:       api.StatusCompleted,
				Phone:        "+919800112233",
				Address:      "78 Temple Street, Madina",
			},
			TechnicianID: tech.ID,
		},
	}
	for _, enquiry := range samples {
		store.AddEnquiry(enquiry)
	}
	return tech, nil
}
