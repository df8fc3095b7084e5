// Package analysis implements the text analysis passes that run over
// the draft body: spelling, tone, and readability.
//
// All passes are pure functions of a single text snapshot. There is no
// incremental or streaming state: each invocation re-scans the whole
// text, so results are always consistent with the current draft.
// Debouncing of repeated invocations is the caller's concern (see the
// analysis scheduler in core/services).
package analysis
