package model

import (
	"fmt"
	"strings"
)

// Car is a Vehicle variant identified by a brand and model pair.
// All capacity and passenger behavior is inherited from the embedded
// Vehicle unchanged; only Describe is overridden.
type Car struct {
	Vehicle

	// Brand is the manufacturer name, trimmed at construction.
	Brand string

	// Model is the model name, trimmed at construction.
	Model string
}

// NewCar creates a Car. Seat and passenger initialization is delegated
// to NewVehicle, so capacity validation lives in exactly one place.
func NewCar(seats int, brand, model string, passengers ...string) (*Car, error) {
	base, err := NewVehicle(seats, passengers...)
	if err != nil {
		return nil, err
	}
	return &Car{
		Vehicle: *base,
		Brand:   strings.TrimSpace(brand),
		Model:   strings.TrimSpace(model),
	}, nil
}

// Describe overrides the base summary with the car's identity.
// Format: "Car(brand=B, model=M, seats=N, passengers=K)".
func (c *Car) Describe() string {
	return fmt.Sprintf("Car(brand=%s, model=%s, seats=%d, passengers=%d)",
		c.Brand, c.Model, c.Capacity(), c.OccupantCount())
}

// Bus is a Vehicle variant identified by a route. Like Car it inherits
// all capacity behavior and overrides only Describe, but it additionally
// supports boarding a whole group at once.
type Bus struct {
	Vehicle

	// Route is the route identifier, trimmed at construction.
	Route string
}

// NewBus creates a Bus, delegating seat and passenger initialization
// to NewVehicle.
func NewBus(seats int, route string, passengers ...string) (*Bus, error) {
	base, err := NewVehicle(seats, passengers...)
	if err != nil {
		return nil, err
	}
	return &Bus{
		Vehicle: *base,
		Route:   strings.TrimSpace(route),
	}, nil
}

// Describe overrides the base summary with the bus route.
// Format: "Bus(route=R, seats=N, passengers=K)".
func (b *Bus) Describe() string {
	return fmt.Sprintf("Bus(route=%s, seats=%d, passengers=%d)",
		b.Route, b.Capacity(), b.OccupantCount())
}

// BoardGroup boards each name in order via AddPassenger and stops at the
// first failure, which it returns. There is no rollback: names boarded
// before the failure stay aboard. Partial application is the defined
// behavior, matching how a real queue boards until the bus fills up.
func (b *Bus) BoardGroup(names []string) error {
	for _, name := range names {
		if err := b.AddPassenger(name); err != nil {
			return fmt.Errorf("boarding group on route %s: %w", b.Route, err)
		}
	}
	return nil
}
