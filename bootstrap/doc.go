// Package bootstrap wires seqkit's ambient stack for a host program.
//
// It loads Settings, initializes the logger, builds drive metrics and a
// tracer when enabled, and installs them as defaults for every sequence
// created afterwards.
//
// # Quick Start
//
//	rt, err := bootstrap.Setup("reports")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	total, err := sequence.New(rows).Map(price).Reduce(sum, 0)
//
// Close restores the sequence defaults that were installed before Setup.
package bootstrap
