package finance

// Ledger indexes the reference records a travel points at, so resolving a
// whole collection of travels is a series of map lookups.
type Ledger struct {
	employees map[string]Employee
	groups    map[string]Group
	drivers   map[string]Driver // keyed by employee id
}

func NewLedger(employees []Employee, groups []Group, drivers []Driver) *Ledger {
	l := &Ledger{
		employees: make(map[string]Employee, len(employees)),
		groups:    make(map[string]Group, len(groups)),
		drivers:   make(map[string]Driver, len(drivers)),
	}
	for _, e := range employees {
		l.employees[e.ID] = e
	}
	for _, g := range groups {
		l.groups[g.ID] = g
	}
	for _, d := range drivers {
		l.drivers[d.EmployeeID] = d
	}
	return l
}

func (l *Ledger) Resolve(t Travel) TravelFinancials {
	var group *Group
	if g, ok := l.groups[t.GroupID]; ok {
		group = &g
	}
	var driver *Driver
	if d, ok := l.drivers[t.DriverID]; ok {
		driver = &d
	}
	return ResolveTravel(t, group, driver, l.employees)
}

func (l *Ledger) Employee(id string) (Employee, bool) {
	e, ok := l.employees[id]
	return e, ok
}

func (l *Ledger) Group(id string) (Group, bool) {
	g, ok := l.groups[id]
	return g, ok
}

func (l *Ledger) DriverWage(employeeID string) float64 {
	return l.drivers[employeeID].Wage
}

func (l *Ledger) EmployeeName(id string) string {
	if e, ok := l.employees[id]; ok && e.Name != "" {
		return e.Name
	}
	return UnknownLabel
}

func (l *Ledger) GroupName(id string) string {
	if g, ok := l.groups[id]; ok && g.Name != "" {
		return g.Name
	}
	return UnknownLabel
}
