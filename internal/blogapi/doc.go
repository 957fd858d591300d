// Package blogapi provides an HTTP client for the blog platform's user API.
//
// # Overview
//
// This package defines the API client for reading and writing the
// authenticated user's account profile. It handles HTTP communication, JSON
// serialization, bearer-token authentication, and type-safe representation
// of the profile payloads.
//
// # Client Usage
//
// Create a client using the API base address from configuration and the
// token from the session file:
//
//	client, err := blogapi.NewClient("127.0.0.1:8080", token)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	// Fetch the current profile
//	profile, err := client.FetchProfile(ctx)
//
//	// Persist edits
//	updated, err := client.UpdateProfile(ctx, blogapi.UpdateRequest{
//		Name:           "Jane",
//		Email:          "jane@example.com",
//		ProfilePicture: avatar,
//	})
//
// # API Endpoints
//
//   - GET /api/users/me: the authenticated user's profile
//   - PUT /api/users: update name, email, picture, and optionally password
//
// Both carry Authorization: Bearer <token>. The update body omits the
// password key entirely when the user did not type a new one; the server
// treats an absent password as "keep the current one".
//
// # Error Handling
//
// Any non-2xx response is decoded as {"message": "..."} and returned as an
// *APIError. The server's message is preserved verbatim because the UI shows
// it to the user unchanged ("Email already in use" and friends). When the
// failure body is not parseable, APIError falls back to a status-code text.
// Transport and decoding failures are wrapped with fmt.Errorf as usual.
//
// # URL Construction
//
// The client accepts several api_base formats:
//
//   - "127.0.0.1:8080" → http://127.0.0.1:8080
//   - "https://blog.example.com" → used as-is
//
// The scheme defaults to "http://" if not specified.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use, though the editor issues at
// most one profile request at a time by design.
package blogapi
