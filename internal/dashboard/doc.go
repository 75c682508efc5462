// Package dashboard implements the real-time TUI for watching model
// endpoints.
//
// The dashboard probes every cataloged endpoint on a fixed interval,
// records the results, and renders latency metrics, health verdicts, and
// sparkline history with a responsive layout that adapts to terminal size.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds application state (endpoints, selection, sort, filter)
//   - Update: Processes messages (keystrokes, tick events, probe results)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// The dashboard operates on a tick-based probe cycle:
//
//  1. tickMsg fires at the configured interval (default 3s)
//  2. startProbeCmd launches one HTTP probe per endpoint in parallel
//  3. probeResultMsg arrives per endpoint as each probe completes; it
//     carries the cycle's result channel so polling survives the
//     copy-on-update model semantics
//  4. The result is recorded on its endpoint, the list re-sorts, and
//     View() re-renders with fresh metrics
//  5. probeDoneMsg clears the in-flight flag once the cycle drains
//
// All ranking and metric math lives in the engine package; the dashboard
// only records results and displays what the engine derives.
package dashboard
