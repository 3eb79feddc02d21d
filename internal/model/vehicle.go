package model

import (
	"fmt"
	"strings"
)

// Carrier is the capability shared by every vehicle variant. A Fleet
// holds its members as Carrier values, so iterating a fleet dispatches
// Describe (and everything else) on the member's concrete type.
//
// The variant set is closed: Vehicle, Car, and Bus. Car and Bus embed
// Vehicle and satisfy the interface through it, overriding only Describe.
type Carrier interface {
	// Capacity returns the seat count the vehicle was constructed with.
	Capacity() int

	// OccupantCount returns the current number of passengers aboard.
	OccupantCount() int

	// AvailableSeats returns Capacity minus OccupantCount.
	AvailableSeats() int

	// IsFull reports whether the vehicle has no seats left.
	IsFull() bool

	// AddPassenger boards one passenger. See Vehicle.AddPassenger for
	// the full contract.
	AddPassenger(name string) error

	// RemovePassenger removes the first exact match of name and reports
	// whether a removal occurred.
	RemovePassenger(name string) bool

	// Passengers returns a copy of the passenger names in boarding order.
	Passengers() []string

	// Describe returns a one-line human-readable summary. This is the
	// operation each variant implements distinctly.
	Describe() string
}

// Vehicle is the capacity-bounded base type of the model. It owns a
// fixed seat count and an ordered list of passenger names, and enforces
// the invariant len(passengers) <= seats after every operation.
//
// Vehicle is used concretely (a generic vehicle) and as the embedded
// base of the Car and Bus variants.
type Vehicle struct {
	// seats is the capacity. Immutable after construction.
	seats int

	// passengers holds the boarded names in insertion order. The slice
	// is owned exclusively by the vehicle; constructors copy their input
	// and Passengers returns a copy.
	passengers []string

	// policy controls the at-capacity behavior of AddPassenger.
	// Defaults to PolicyReject.
	policy FullPolicy
}

// compile-time check that the closed variant set satisfies Carrier.
var (
	_ Carrier = (*Vehicle)(nil)
	_ Carrier = (*Car)(nil)
	_ Carrier = (*Bus)(nil)
)

// NewVehicle creates a Vehicle with the given seat count and optional
// initial passengers.
//
// Fails with ErrInvalidCapacity if seats is not positive. The initial
// passengers are copied into an internally owned slice, so the caller's
// slice is never aliased. Initial passengers are taken as-is: name
// trimming and capacity enforcement apply to AddPassenger, which is how
// the demo boards everyone.
func NewVehicle(seats int, passengers ...string) (*Vehicle, error) {
	if seats <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCapacity, seats)
	}

	// Copy, never alias. append to a nil slice allocates a fresh backing
	// array, so later mutation of the caller's slice cannot leak in.
	owned := append([]string(nil), passengers...)

	return &Vehicle{
		seats:      seats,
		passengers: owned,
		policy:     PolicyReject,
	}, nil
}

// SetFullPolicy selects the at-capacity behavior for AddPassenger.
// Invalid values are ignored, keeping the current policy.
func (v *Vehicle) SetFullPolicy(p FullPolicy) {
	if p.IsValid() {
		v.policy = p
	}
}

// FullPolicy returns the vehicle's current at-capacity policy.
func (v *Vehicle) FullPolicy() FullPolicy {
	return v.policy
}

// Capacity returns the seat count. Pure query.
func (v *Vehicle) Capacity() int {
	return v.seats
}

// OccupantCount returns the current passenger count. Pure query.
func (v *Vehicle) OccupantCount() int {
	return len(v.passengers)
}

// AvailableSeats returns the number of free seats. Pure query.
func (v *Vehicle) AvailableSeats() int {
	return v.seats - len(v.passengers)
}

// IsFull reports whether the passenger count has reached capacity.
// Pure query, no side effect.
func (v *Vehicle) IsFull() bool {
	return len(v.passengers) >= v.seats
}

// AddPassenger boards one passenger.
//
// The name is trimmed of surrounding whitespace first; an empty result
// fails with ErrInvalidName. When the vehicle is full, the outcome
// depends on the policy: PolicyReject fails with ErrVehicleFull,
// PolicySkip returns nil without boarding anyone. On success the trimmed
// name is appended to the end of the passenger list, preserving
// boarding order, and the count grows by exactly one.
func (v *Vehicle) AddPassenger(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	if v.IsFull() {
		if v.policy == PolicySkip {
			// Historical silent-decline behavior: no signal, no change.
			return nil
		}
		return fmt.Errorf("%w: no seat left for %q (capacity %d)", ErrVehicleFull, name, v.seats)
	}

	v.passengers = append(v.passengers, name)
	return nil
}

// RemovePassenger removes the first occurrence of an exact (case
// sensitive) match of name from the passenger list and returns whether
// a removal happened. Absence is an expected outcome, not an error, so
// a missing name returns false and leaves the list untouched. At most
// one occurrence is removed even when duplicates exist.
func (v *Vehicle) RemovePassenger(name string) bool {
	for i, p := range v.passengers {
		if p == name {
			v.passengers = append(v.passengers[:i], v.passengers[i+1:]...)
			return true
		}
	}
	return false
}

// Passengers returns a copy of the passenger names in boarding order.
// The copy keeps callers from mutating the vehicle's internal state.
func (v *Vehicle) Passengers() []string {
	return append([]string(nil), v.passengers...)
}

// Describe returns the generic vehicle summary.
// Format: "Vehicle(seats=N, passengers=M)".
func (v *Vehicle) Describe() string {
	return fmt.Sprintf("Vehicle(seats=%d, passengers=%d)", v.seats, len(v.passengers))
}
