// Package harness provides utilities for integration testing the qcreview CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - QCREVIEW_HOME: Isolated per test (temp directory)
//   - QCREVIEW_DEBUG: Disabled to reduce noise
//   - QCREVIEW_NO_SOUND: Set so finished reviews stay silent
package harness
