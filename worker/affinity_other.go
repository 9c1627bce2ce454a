//go:build !linux

// SPDX-License-Identifier: MIT

package worker

// pinCurrentThread is a stub for platforms without thread affinity support.
// The worker stays locked to its OS thread but is not bound to a CPU.
func pinCurrentThread(int) error { return ErrPinUnsupported }
