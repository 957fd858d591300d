// Package app wires Quill's pieces together.
//
// # Startup Sequence
//
//  1. Load the config (API address), falling back to defaults when missing.
//  2. Open the session file store.
//  3. Mount the profile engine, which reads the session and seeds the
//     placeholder state. No token means ErrNotLoggedIn: the editor never
//     starts and no network request is made.
//  4. Build the API client from the config address and the session token.
//  5. Hand everything to the UI, which blocks until the user leaves.
//
// The login flow itself lives in the blog platform's web app; Quill only
// consumes the session it produced.
package app
