package events

import "time"

const RecordsChangedTopic = "farm.records.changed.v1"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Collections a RecordsChangedEvent can refer to.
const (
	CollectionEmployees    = "employees"
	CollectionGroups       = "groups"
	CollectionTravels      = "travels"
	CollectionDrivers      = "drivers"
	CollectionDebts        = "debts"
	CollectionExpenses     = "other_expenses"
	CollectionLoans        = "loans"
	CollectionComputations = "calculator_computations"
)

// RecordsChangedEvent tells readers of a farm's aggregates that their inputs
// moved. It carries no record body; consumers reload what they need.
type RecordsChangedEvent struct {
	EventType  string    `json:"event_type"`
	FarmID     string    `json:"farm_id"`
	Collection string    `json:"collection"`
	RecordID   string    `json:"record_id"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewRecordsChanged(farmID, collection, recordID, action, requestID string) RecordsChangedEvent {
	return RecordsChangedEvent{
		EventType:  collection + "." + action,
		FarmID:     farmID,
		Collection: collection,
		RecordID:   recordID,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	}
}
