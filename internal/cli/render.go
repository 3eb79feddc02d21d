// render.go holds the output helpers shared by the demo modes: the
// 1-indexed passenger listing and the fleet summary table.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/shinji-kodama/motorpool/internal/model"
)

// FormatPassengerList renders passenger names as a 1-indexed listing,
// one line per passenger in boarding order. An empty sequence renders
// as a single "(no passengers)" line.
//
// This function is exported for testing purposes (tested in render_test.go).
//
// Example:
//
//	["Alice", "Bob"] → ["1. Alice", "2. Bob"]
//	[]               → ["(no passengers)"]
func FormatPassengerList(names []string) []string {
	if len(names) == 0 {
		return []string{"(no passengers)"}
	}

	lines := make([]string, 0, len(names))
	for i, name := range names {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, name))
	}
	return lines
}

// printPassengerList writes the FormatPassengerList lines to out.
func printPassengerList(out io.Writer, names []string) {
	for _, line := range FormatPassengerList(names) {
		fmt.Fprintln(out, line)
	}
}

// printHeader writes a colored section header for a demo step.
func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out, color.CyanString("== %s ==", title))
}

// vehicleKind returns the display label for a fleet member's concrete
// variant. The variant set is closed, so the default arm is unreachable
// in practice.
func vehicleKind(v model.Carrier) string {
	switch v.(type) {
	case *model.Car:
		return "car"
	case *model.Bus:
		return "bus"
	default:
		return "vehicle"
	}
}

// printFleetTable renders the fleet summary as a borderless text table.
//
//	#  TYPE     SEATS  ABOARD  FREE
//	1  vehicle  2      1       1
//	2  car      4      1       3
//	3  bus      5      1       4
func printFleetTable(out io.Writer, fleet *model.Fleet) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Type", "Seats", "Aboard", "Free"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, v := range fleet.Vehicles() {
		table.Append([]string{
			strconv.Itoa(i + 1),
			vehicleKind(v),
			strconv.Itoa(v.Capacity()),
			strconv.Itoa(v.OccupantCount()),
			strconv.Itoa(v.AvailableSeats()),
		})
	}

	table.SetFooter([]string{
		"",
		"total",
		strconv.Itoa(fleet.TotalCapacity()),
		strconv.Itoa(fleet.TotalPassengers()),
		strconv.Itoa(fleet.TotalCapacity() - fleet.TotalPassengers()),
	})

	table.Render()
}
