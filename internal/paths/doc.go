// Package paths resolves destination paths for organized files and guarantees
// no existing file is ever clobbered.
package paths
