// Package finance derives income, expense, wage and profit figures from farm
// records. Every function here is pure: callers hand in a snapshot of records
// and get plain values back. Nothing in this package knows about farms,
// storage or HTTP.
package finance

// UnknownLabel is rendered wherever a referenced record cannot be found.
const UnknownLabel = "Unknown"

type EmployeeType string

const (
	EmployeeTypeDriver EmployeeType = "Driver"
	EmployeeTypeStaff  EmployeeType = "Staff"
	EmployeeTypeHelper EmployeeType = "Helper"
)

// EmployeeTypes lists every classification the engine knows a wage rule for.
var EmployeeTypes = []EmployeeType{EmployeeTypeDriver, EmployeeTypeStaff, EmployeeTypeHelper}

func (t EmployeeType) Valid() bool {
	switch t {
	case EmployeeTypeDriver, EmployeeTypeStaff, EmployeeTypeHelper:
		return true
	default:
		return false
	}
}

type Employee struct {
	ID   string
	Name string
	Type EmployeeType
}

type Group struct {
	ID          string
	Name        string
	Wage        float64 // per ton, shared by the staff present on a travel
	EmployeeIDs []string
}

type AttendanceEntry struct {
	EmployeeID string `json:"employee_id"`
	Present    bool   `json:"present"`
}

type TravelExpense struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Travel is one haulage trip. Optional numeric fields are already defaulted
// to zero by the time a Travel reaches the engine.
type Travel struct {
	ID             string
	Name           string
	Date           string // YYYY-MM-DD, may be empty
	Land           string
	DriverID       string
	DriverTip      float64
	PlateNumber    string
	Destination    string
	Ticket         string
	Tons           float64
	Bags           float64
	SugarcanePrice float64
	Molasses       float64
	MolassesPrice  float64
	GroupID        string
	Attendance     []AttendanceEntry
	Expenses       []TravelExpense
}

type Driver struct {
	ID         string
	EmployeeID string
	Wage       float64
}

type Debt struct {
	ID          string
	EmployeeID  string
	Amount      float64
	Description string
	Date        string
	Paid        bool
}

// Dataset is a materialized snapshot of one farm's records.
type Dataset struct {
	Employees []Employee
	Groups    []Group
	Drivers   []Driver
	Travels   []Travel
	Debts     []Debt
}

func (d Dataset) Ledger() *Ledger {
	return NewLedger(d.Employees, d.Groups, d.Drivers)
}
