package booking

import "fmt"

// ConflictError describes why a booking was not accepted.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newDuplicateError(date string) *ConflictError {
	return &ConflictError{
		Code:    "duplicateBooking",
		Message: fmt.Sprintf("You already have a booking on %s", date),
	}
}

func newSlotTakenError(b slotRef) *ConflictError {
	return &ConflictError{
		Code:    "slotTaken",
		Message: fmt.Sprintf("The %s slot for %s on %s is already booked", b.slot, b.treatment, b.date),
	}
}

func newUnknownTreatmentError(treatment string) *ConflictError {
	return &ConflictError{
		Code:    "unknownTreatment",
		Message: fmt.Sprintf("%s is not offered", treatment),
	}
}

func newUnknownSlotError(b slotRef) *ConflictError {
	return &ConflictError{
		Code:    "unknownSlot",
		Message: fmt.Sprintf("%s does not offer the %s slot", b.treatment, b.slot),
	}
}

type slotRef struct {
	treatment, date, slot string
}
