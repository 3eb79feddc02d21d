// inheritance.go implements the "inheritance" demo mode: variant
// construction through the shared base, overridden descriptions, and
// the bus's partial-commit group boarding.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shinji-kodama/motorpool/internal/model"
)

// runInheritance constructs one of each variant with identical capacity
// and shows that Describe renders differently per concrete type, then
// boards a group onto a bus that cannot hold all of it.
func runInheritance(out io.Writer, policy model.FullPolicy) error {
	printHeader(out, "Inheritance: variants and overrides")

	v, err := model.NewVehicle(2)
	if err != nil {
		return err
	}
	c, err := model.NewCar(2, "Toyota", "Corolla")
	if err != nil {
		return err
	}
	b, err := model.NewBus(2, "M29")
	if err != nil {
		return err
	}

	// Same capacity, same (empty) passenger state — three different
	// descriptions, each from the member's own variant.
	for _, each := range []model.Carrier{v, c, b} {
		fmt.Fprintln(out, each.Describe())
	}

	printHeader(out, "Group boarding")

	bus, err := model.NewBus(3, "M29")
	if err != nil {
		return err
	}
	bus.SetFullPolicy(policy)

	// Four names, three seats: boarding stops at the first failure and
	// everyone already aboard stays aboard.
	group := []string{"Dan", "Eve", "Fay", "Gil"}
	if err := bus.BoardGroup(group); err != nil {
		fmt.Fprintln(out, color.RedString("group boarding stopped: %v", err))
	}
	fmt.Fprintln(out, bus.Describe())
	printPassengerList(out, bus.Passengers())

	return nil
}
