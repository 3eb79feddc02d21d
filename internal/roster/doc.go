// Package roster loads the optional demo roster file that describes the
// fleet shown by the "fleet" mode: a fleet name plus a list of vehicle
// specs with their waiting passengers.
//
// Rosters may be written as JSONC (JSON with Comments) or YAML; the
// format is chosen by file extension. JSONC input is stripped with
// github.com/tidwall/jsonc before parsing with the standard
// encoding/json library, YAML is parsed with gopkg.in/yaml.v3.
//
// The roster is driver configuration only. Vehicles are always built
// through the internal/model constructors and boarded through
// AddPassenger, so every model invariant (positive capacity, trimmed
// non-empty names, seat limit) is enforced on load. The model itself is
// never serialized.
package roster
