package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/motorpool/internal/model"
)

// runCommand executes the root command with the given args and returns
// its stdout output. --no-color keeps the output free of ANSI escapes
// regardless of the test environment.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

// TestRoot_DefaultModeIsBasics checks that invoking without a mode runs
// the basics demonstration.
func TestRoot_DefaultModeIsBasics(t *testing.T) {
	out, err := runCommand(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Basics: one vehicle")
	assert.Contains(t, out, "Seats: 2")
	assert.Contains(t, out, "Vehicle(seats=2, passengers=2)")
	assert.Contains(t, out, "1. Alice")
	assert.Contains(t, out, "2. Bob")
}

// TestRoot_UnknownMode verifies the friendly message: no error, no
// demo output, just the list of valid modes.
func TestRoot_UnknownMode(t *testing.T) {
	out, err := runCommand(t, "teleport")
	require.NoError(t, err)

	assert.Contains(t, out, `unknown mode "teleport"`)
	assert.Contains(t, out, "basics, inheritance, fleet")
	assert.NotContains(t, out, "Seats:")
}

// TestRoot_InvalidOnFullFlag checks the flag validation error path.
func TestRoot_InvalidOnFullFlag(t *testing.T) {
	_, err := runCommand(t, "basics", "--on-full", "explode")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestBasics_FullVehicleByPolicy verifies the at-capacity outcome under
// both policies: a reported failure under reject, a reported skip under
// skip, with the passenger count unchanged either way.
func TestBasics_FullVehicleByPolicy(t *testing.T) {
	t.Run("reject", func(t *testing.T) {
		out, err := runCommand(t, "basics")
		require.NoError(t, err)
		assert.Contains(t, out, "boarding Carol failed")
		assert.Contains(t, out, "vehicle is full")
	})

	t.Run("skip", func(t *testing.T) {
		out, err := runCommand(t, "basics", "--on-full", "skip")
		require.NoError(t, err)
		assert.Contains(t, out, "vehicle is full, skipping Carol")
		assert.NotContains(t, out, "boarding Carol failed")
	})
}

// TestBasics_RemoveThenReAdd checks the tail of the basics demo: Alice
// leaves, Carol boards, and the listing shows boarding order.
func TestBasics_RemoveThenReAdd(t *testing.T) {
	out, err := runCommand(t, "basics")
	require.NoError(t, err)

	assert.Contains(t, out, "Alice got off")
	assert.Contains(t, out, "1. Bob")
	assert.Contains(t, out, "2. Carol")
}

// TestInheritance_DistinctDescriptions verifies that all three variant
// descriptions appear, plus the partial group boarding outcome.
func TestInheritance_DistinctDescriptions(t *testing.T) {
	out, err := runCommand(t, "inheritance")
	require.NoError(t, err)

	assert.Contains(t, out, "Vehicle(seats=2, passengers=0)")
	assert.Contains(t, out, "Car(brand=Toyota, model=Corolla, seats=2, passengers=0)")
	assert.Contains(t, out, "Bus(route=M29, seats=2, passengers=0)")

	// The three-seat bus boards Dan, Eve, Fay and rejects Gil.
	assert.Contains(t, out, "group boarding stopped")
	assert.Contains(t, out, "Bus(route=M29, seats=3, passengers=3)")
	assert.Contains(t, out, "3. Fay")
	assert.NotContains(t, out, "4. Gil")
}

// TestFleet_BuiltinDemo verifies the default fleet: three members in
// order, polymorphic lines, and the 11/3 totals.
func TestFleet_BuiltinDemo(t *testing.T) {
	out, err := runCommand(t, "fleet")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	var describeLines []string
	for _, line := range lines {
		if strings.HasPrefix(line, "Vehicle(") || strings.HasPrefix(line, "Car(") || strings.HasPrefix(line, "Bus(") {
			describeLines = append(describeLines, line)
		}
	}

	require.Len(t, describeLines, 3)
	assert.Equal(t, "Vehicle(seats=2, passengers=1)", describeLines[0])
	assert.Equal(t, "Car(brand=Toyota, model=Corolla, seats=4, passengers=1)", describeLines[1])
	assert.Equal(t, "Bus(route=M29, seats=5, passengers=1)", describeLines[2])

	assert.Contains(t, out, "Total capacity: 11, total passengers: 3")
}

// TestFleet_FromRoster runs the fleet mode against a roster file.
func TestFleet_FromRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
	// two-vehicle roster
	"name": "depot",
	"vehicles": [
		{"type": "car", "seats": 4, "brand": "Honda", "model": "Jazz", "passengers": ["Dan"]},
		{"type": "bus", "seats": 6, "route": "M29"},
	]
}`), 0o644))

	out, err := runCommand(t, "fleet", "--roster", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Fleet: depot")
	assert.Contains(t, out, "Car(brand=Honda, model=Jazz, seats=4, passengers=1)")
	assert.Contains(t, out, "Bus(route=M29, seats=6, passengers=0)")
	assert.Contains(t, out, "Total capacity: 10, total passengers: 1")
}

// TestFleet_MissingRoster verifies that a missing roster file surfaces
// as a CLIError with the roster exit code.
func TestFleet_MissingRoster(t *testing.T) {
	_, err := runCommand(t, "fleet", "--roster", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitRosterError, cliErr.Code)
}
