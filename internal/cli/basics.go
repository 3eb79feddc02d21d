// basics.go implements the "basics" demo mode: one Vehicle, its
// attributes and methods, and the capacity invariant at work.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shinji-kodama/motorpool/internal/model"
)

// runBasics builds a two-seat vehicle, boards two passengers, shows the
// queries and the passenger listing, then demonstrates what happens when
// a third passenger tries to board under the active full-vehicle policy.
func runBasics(out io.Writer, policy model.FullPolicy) error {
	printHeader(out, "Basics: one vehicle")

	v, err := model.NewVehicle(2)
	if err != nil {
		return err
	}
	v.SetFullPolicy(policy)

	fmt.Fprintf(out, "Seats: %d\n", v.Capacity())

	for _, name := range []string{"Alice", "Bob"} {
		if err := v.AddPassenger(name); err != nil {
			return err
		}
		VerboseLog("Boarded %q, %d seat(s) left", name, v.AvailableSeats())
	}

	fmt.Fprintln(out, v.Describe())
	printPassengerList(out, v.Passengers())

	// The vehicle is now full. Under the reject policy the add fails
	// with a distinguishable error; under skip it declines silently, so
	// the driver reports it by polling IsFull beforehand.
	fmt.Fprintf(out, "Full: %t, available seats: %d\n", v.IsFull(), v.AvailableSeats())
	boardOrReport(out, v, "Carol")

	// Removing frees a seat; re-adding appends at the end, so ordering
	// reflects boarding order, not the original position.
	if v.RemovePassenger("Alice") {
		fmt.Fprintln(out, "Alice got off")
	}
	if err := v.AddPassenger("Carol"); err != nil {
		return err
	}
	fmt.Fprintln(out, v.Describe())
	printPassengerList(out, v.Passengers())

	return nil
}

// boardOrReport tries to board name and prints the outcome instead of
// failing the demo. Under PolicySkip a full vehicle gives no error
// signal, so the helper checks IsFull first to report the skip.
func boardOrReport(out io.Writer, v model.Carrier, name string) {
	if v.IsFull() {
		if err := v.AddPassenger(name); err != nil {
			fmt.Fprintln(out, color.RedString("boarding %s failed: %v", name, err))
		} else {
			fmt.Fprintln(out, color.YellowString("%s is full, skipping %s", vehicleKind(v), name))
		}
		return
	}

	if err := v.AddPassenger(name); err != nil {
		fmt.Fprintln(out, color.RedString("boarding %s failed: %v", name, err))
		return
	}
	fmt.Fprintf(out, "%s boarded\n", name)
}
