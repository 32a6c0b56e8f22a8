// Package submit implements the one-shot request lifecycle shared by every
// form of the client.
//
// # Lifecycle
//
// A Controller starts Idle. Arm snapshots the form fields (and the stored
// credential for authorized flows), moves to Armed and immediately to
// InFlight, and sends exactly one request on its own goroutine. The request
// resolves into:
//
//   - success: the flow's OnSuccess continuation runs (persist a credential,
//     navigate) and the controller becomes Succeeded, or Idle again when the
//     flow sets ResetOnSuccess;
//   - failure: the controller returns to Idle and the flow's fixed failure
//     notice is shown. Nothing is persisted and nothing navigates.
//
// Arm is a no-op outside Idle, so repeated user actions while a request is
// in flight never produce a second request. There is no retry and no
// timeout: an attempt stays in flight until the transport resolves.
//
// # Observing state
//
// Renderers either poll State or register a callback with Subscribe.
// Callbacks run synchronously, in transition order, outside the controller's
// lock. Arm returns an Attempt, a future-like handle to the outcome.
package submit
