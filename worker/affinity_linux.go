//go:build linux

// SPDX-License-Identifier: MIT

package worker

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// maxCPUs bounds the scan of the affinity mask (glibc CPU_SETSIZE).
const maxCPUs = 1024

// pinCurrentThread binds the calling OS thread to the k-th CPU of the
// process' current affinity mask, k = id mod |mask|. The caller must hold
// runtime.LockOSThread.
func pinCurrentThread(id int) error {
	var allowed unix.CPUSet
	if err := unix.SchedGetaffinity(0, &allowed); err != nil {
		return fmt.Errorf("sched_getaffinity: %w", err)
	}
	n := allowed.Count()
	if n == 0 {
		return fmt.Errorf("sched_getaffinity: empty cpu mask")
	}
	want := id % n
	for cpu, seen := 0, 0; cpu < maxCPUs; cpu++ {
		if !allowed.IsSet(cpu) {
			continue
		}
		if seen == want {
			var set unix.CPUSet
			set.Set(cpu)
			if err := unix.SchedSetaffinity(0, &set); err != nil {
				return fmt.Errorf("sched_setaffinity(cpu=%d): %w", cpu, err)
			}
			return nil
		}
		seen++
	}

	return fmt.Errorf("cpu index %d not found in affinity mask", want)
}
