package blogapi

// Profile mirrors the payload returned by GET /api/users/me and by a
// successful PUT /api/users. The password is never part of this shape.
type Profile struct {
	ProfilePicture string `json:"profilePicture"`
	Name           string `json:"name"`
	Email          string `json:"email"`
}

// UpdateRequest is the body for PUT /api/users. Password is only sent when
// the user typed a new one; an empty value must not reach the wire.
type UpdateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	Password       string `json:"password,omitempty"`
}

// errorBody is the failure payload shape shared by all endpoints.
type errorBody struct {
	Message string `json:"message"`
}
