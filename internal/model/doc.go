// Package model defines the domain types for the motorpool CLI.
//
// This package contains pure data structures with no I/O and no external
// dependencies beyond slice helpers. The object model is deliberately
// small: a capacity-bounded Vehicle base type, two specialized variants
// (Car, Bus) that override the description operation, and a Fleet
// aggregate that dispatches polymorphically over its members through the
// Carrier interface.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
