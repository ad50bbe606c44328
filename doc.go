// Package contestkit is a library of reusable competitive-programming
// templates and the judge-facing solvers built on top of them.
//
// Each template lives in its own package and has no runtime dependency on any
// other template:
//   - data structures: fenwick, segtree, lichao, dsu, linkcut, treap, rmq, mo
//   - strings: strmatch, strhash, suffixauto
//   - graphs: graph
//   - geometry: geom
//   - number theory: sieve
//
// The judge solvers (merkle, logscan, gridpath) build on the templates.
//
// Snapshots of precomputed templates can be serialized with the archive
// package. The cmd/contest binary exposes one subcommand per judge problem,
// reading the problem input on stdin and printing the expected answer.
package contestkit

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.3.0")
