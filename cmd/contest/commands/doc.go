// Package commands defines the contest CLI, one subcommand per judge
// problem.
//
// Commands
//
//   - merkle      Merkle roots over transaction lists
//   - logscan     SQL-injection triage of a capture CSV
//   - droneroute  Minimum tax-line crossings on a city grid
//   - hull        Convex hull of a point set
//   - halfplane   Intersection of directed half-planes
//
// # Implementation
//
// Every subcommand reads the judge's stdin layout with the shared token
// scanner and writes its answer to stdout; diagnostics go to stderr via the
// logger so piped output stays clean.
package commands
