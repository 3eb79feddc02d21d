package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/motorpool/internal/model"
)

// Roster is the parsed representation of a roster file. Field tags cover
// both supported formats so one struct serves the JSONC and YAML paths.
type Roster struct {
	// Name is the optional fleet name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Vehicles lists the vehicles to build, in fleet order.
	Vehicles []VehicleSpec `json:"vehicles" yaml:"vehicles"`
}

// VehicleSpec describes a single vehicle entry in a roster file.
// Which descriptor fields apply depends on Type: "car" uses brand/model,
// "bus" uses route, "vehicle" uses neither.
type VehicleSpec struct {
	// Type selects the variant to build: "vehicle", "car", or "bus".
	Type string `json:"type" yaml:"type"`

	// Seats is the vehicle capacity. Validated by the model constructor.
	Seats int `json:"seats" yaml:"seats"`

	// Brand and Model identify a car. Ignored for other types.
	Brand string `json:"brand,omitempty" yaml:"brand,omitempty"`
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Route identifies a bus. Ignored for other types.
	Route string `json:"route,omitempty" yaml:"route,omitempty"`

	// Passengers are boarded in order after construction.
	Passengers []string `json:"passengers,omitempty" yaml:"passengers,omitempty"`
}

// Load reads a roster file and parses it according to its extension:
// .json/.jsonc via JSONC comment stripping + encoding/json,
// .yaml/.yml via yaml.v3. Any other extension is rejected.
//
// Returns a CLIError with ExitRosterError if the file does not exist
// or cannot be parsed.
func Load(path string) (*Roster, error) {
	// os.ReadFile is preferred over os.Open+io.ReadAll because it
	// handles the open-read-close lifecycle in a single call.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitRosterError,
				fmt.Sprintf("roster file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var r Roster
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc":
		// Strip JSONC comments (// and /* */) and trailing commas before
		// parsing, so rosters can be annotated like any other hand-edited
		// JSON config.
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &r); err != nil {
			return nil, model.WrapCLIError(
				model.ExitRosterError,
				fmt.Sprintf("invalid roster JSON in %s", path),
				err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, model.WrapCLIError(
				model.ExitRosterError,
				fmt.Sprintf("invalid roster YAML in %s", path),
				err,
			)
		}
	default:
		return nil, model.NewCLIError(
			model.ExitRosterError,
			fmt.Sprintf("unsupported roster format %q (valid: .json, .jsonc, .yaml, .yml)", ext),
		)
	}

	if len(r.Vehicles) == 0 {
		return nil, model.NewCLIError(
			model.ExitRosterError,
			fmt.Sprintf("roster %s defines no vehicles", path),
		)
	}

	return &r, nil
}

// Build constructs the Carrier described by the spec. The model
// constructors own all validation, so a bad seat count surfaces as
// ErrInvalidCapacity here rather than a roster-specific check.
func (s VehicleSpec) Build() (model.Carrier, error) {
	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case "vehicle", "":
		return model.NewVehicle(s.Seats)
	case "car":
		return model.NewCar(s.Seats, s.Brand, s.Model)
	case "bus":
		return model.NewBus(s.Seats, s.Route)
	default:
		return nil, fmt.Errorf("unknown vehicle type %q (valid: vehicle, car, bus)", s.Type)
	}
}

// BuildFleet turns a parsed roster into a ready Fleet. Each vehicle is
// built with its declared policy for full vehicles, then its passengers
// are boarded one by one through AddPassenger so the usual trimming and
// capacity enforcement apply. The first failure aborts the build.
func (r *Roster) BuildFleet(policy model.FullPolicy) (*model.Fleet, error) {
	fleet := model.NewFleet(r.Name)

	for i, spec := range r.Vehicles {
		v, err := spec.Build()
		if err != nil {
			return nil, model.WrapCLIError(
				model.ExitRosterError,
				fmt.Sprintf("roster vehicle #%d", i+1),
				err,
			)
		}

		// Carrier does not expose policy selection; reach the embedded
		// base through the concrete types of the closed variant set.
		switch c := v.(type) {
		case *model.Vehicle:
			c.SetFullPolicy(policy)
		case *model.Car:
			c.SetFullPolicy(policy)
		case *model.Bus:
			c.SetFullPolicy(policy)
		}

		for _, name := range spec.Passengers {
			if err := v.AddPassenger(name); err != nil {
				return nil, model.WrapCLIError(
					model.ExitRosterError,
					fmt.Sprintf("roster vehicle #%d: boarding %q", i+1, name),
					err,
				)
			}
		}

		fleet.AddVehicle(v)
	}

	return fleet, nil
}
