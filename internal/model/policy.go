package model

import (
	"fmt"
	"strings"
)

// FullPolicy controls what AddPassenger does when a vehicle is already
// at capacity. Two behaviors exist in the wild for this model:
//
//   - PolicyReject: the add fails with ErrVehicleFull. This is the
//     primary, signaling behavior.
//   - PolicySkip: the add is silently declined — no error, no state
//     change. Callers that choose this policy must poll IsFull or
//     AvailableSeats beforehand, because there is no failure signal
//     by design of that historical variant.
type FullPolicy string

const (
	// PolicyReject makes AddPassenger fail with ErrVehicleFull when the
	// vehicle is at capacity. This is the default.
	PolicyReject FullPolicy = "reject"

	// PolicySkip makes AddPassenger return nil without adding when the
	// vehicle is at capacity. The passenger count is unchanged.
	PolicySkip FullPolicy = "skip"
)

// String returns the string representation of FullPolicy.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands.
func (p FullPolicy) String() string {
	return string(p)
}

// IsValid checks whether the FullPolicy value is one of the
// predefined valid policies.
func (p FullPolicy) IsValid() bool {
	switch p {
	case PolicyReject, PolicySkip:
		return true
	default:
		return false
	}
}

// ParseFullPolicy converts a string to a FullPolicy.
// Returns an error if the string does not match any valid policy.
func ParseFullPolicy(s string) (FullPolicy, error) {
	policy := FullPolicy(strings.ToLower(s))
	if !policy.IsValid() {
		return "", fmt.Errorf("invalid full-vehicle policy: %q (valid: reject, skip)", s)
	}
	return policy, nil
}
