// Package version reports which seqkit build a program is running.
//
// When seqkit is a dependency the module version comes from the host's
// build info. Release builds of seqkit itself can pin the values with
// -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=v1.2.0"
package version
