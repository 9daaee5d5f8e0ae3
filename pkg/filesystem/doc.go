// Package filesystem provides filesystem implementations for brandforge.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and test filesystems, plus the
// recursive file walker and directory helpers shared by the pipeline
// stages.
package filesystem
