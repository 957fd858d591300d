// Package profile holds the account editor's core: the edit-and-sync state
// machine, field validation, and the avatar encoder.
//
// # Overview
//
// The engine reconciles three views of the account:
//
//   - the last server-confirmed profile (Profile)
//   - the in-progress edited draft (Draft)
//   - the locally cached session mirror (session.Entry)
//
// across three asynchronous operations: the fetch on mount, the save on
// demand, and the avatar file encode. Each transition mutates a defined
// subset of that state and nothing else, so the UI never observes a
// partially applied update.
//
// # State Machine
//
// Top-level phases:
//
//	Uninitialized → Unauthorized            (no token at mount; terminal)
//	Uninitialized → Fetching → Ready        (mount with token)
//	Ready → Saving → Ready                  (save failure; draft untouched)
//	Ready → Saving → Leaving                (save success; deferred exit)
//
// Per-operation lifecycles (fetch, save, encode) are tracked separately as
// OpState values and drive the in-flight affordances. Exactly one save and
// one encode may be in flight at a time.
//
// # Mutation Rules
//
//   - Mount seeds both records from the session cache (avatar falling back
//     to DefaultAvatarURL) so the form paints before the network answers.
//   - Fetch success reinitializes Profile and Draft together; fetch failure
//     changes lifecycle state only.
//   - User edits touch the Draft only.
//   - Save success advances Profile, Draft, and the session mirror together;
//     save failure leaves Draft and Profile bit-for-bit unchanged.
//   - The draft password is write-only: sent when non-empty, cleared after a
//     successful save, never read back from anywhere.
//
// # Concurrency
//
// The engine is not a concurrent object: it is driven entirely from the
// Bubble Tea update loop, one message at a time. Async results re-enter
// through the Apply* methods, which guard against late or stale deliveries
// (a phase check for fetch/save, a generation counter for avatar encodes),
// so a response that arrives after the state has moved on is a no-op.
//
// # I/O Boundaries
//
// The engine performs no network or file I/O. Callers run the blogapi
// requests and EncodeAvatar inside tea.Cmd functions and feed the results
// back in. The one injected dependency is the session.Store, read once at
// mount and written only by the save-success transition.
//
// # Notices
//
// Transitions return Notice values with the exact texts the web client
// shows, including verbatim server-reported failure messages. The zero
// Notice means nothing to display.
package profile
