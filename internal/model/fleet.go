package model

import (
	"strings"

	"github.com/samber/lo"
)

// Fleet is an ordered, heterogeneous collection of Carriers. It is an
// aggregate over vehicles, not itself a vehicle: it has no capacity of
// its own beyond the sum of its members'.
//
// Members are shared by reference with whoever created them. The fleet
// never copies a vehicle on AddVehicle, so boarding a passenger through
// the original *Car is immediately visible through the fleet's totals.
type Fleet struct {
	// name is an optional label, trimmed at construction. An unnamed
	// fleet is fine; a named one reads as a convoy.
	name string

	// vehicles holds the members in insertion order. Append-only through
	// AddVehicle.
	vehicles []Carrier
}

// NewFleet creates an empty Fleet with an optional name.
// Pass "" for an unnamed fleet.
func NewFleet(name string) *Fleet {
	return &Fleet{name: strings.TrimSpace(name)}
}

// Name returns the fleet's label, possibly empty.
func (f *Fleet) Name() string {
	return f.name
}

// AddVehicle appends a vehicle to the end of the member sequence.
// The fleet holds a reference, not a copy.
func (f *Fleet) AddVehicle(v Carrier) {
	f.vehicles = append(f.vehicles, v)
}

// Size returns the number of member vehicles.
func (f *Fleet) Size() int {
	return len(f.vehicles)
}

// TotalCapacity sums the seat counts of all members in order. Pure query.
func (f *Fleet) TotalCapacity() int {
	return lo.SumBy(f.vehicles, func(v Carrier) int { return v.Capacity() })
}

// TotalPassengers sums the passenger counts of all members in order.
// Pure query.
func (f *Fleet) TotalPassengers() int {
	return lo.SumBy(f.vehicles, func(v Carrier) int { return v.OccupantCount() })
}

// DescribeAll returns one description line per member, in insertion
// order. Each line comes from the member's own Describe — a *Bus member
// yields the bus rendering, a plain *Vehicle the generic one. This is
// the model's single polymorphic dispatch point.
func (f *Fleet) DescribeAll() []string {
	return lo.Map(f.vehicles, func(v Carrier, _ int) string { return v.Describe() })
}

// Vehicles returns a copy of the member sequence. The slice is a copy
// so callers cannot reorder or truncate the fleet, but the elements are
// the shared references themselves.
func (f *Fleet) Vehicles() []Carrier {
	return append([]Carrier(nil), f.vehicles...)
}
