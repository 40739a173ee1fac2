package appointments

// Appointment is a committed calendar booking. Date is ISO YYYY-MM-DD and
// Time is 24-hour HH:MM; unresolved fields carry the "TBD" placeholder.
type Appointment struct {
	ID        string `json:"id" db:"id"`
	Doctor    string `json:"doctor" db:"doctor"`
	Specialty string `json:"specialty" db:"specialty"`
	Date      string `json:"date" db:"date"`
	Time      string `json:"time" db:"time"`
	Location  string `json:"location,omitempty" db:"location"`
}

// Placeholder marks a required field the dialogue could not resolve.
const Placeholder = "TBD"
