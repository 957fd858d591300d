package profile

// DefaultAvatarURL is shown when neither the session cache nor the server
// has a picture for the user.
const DefaultAvatarURL = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1600"

// Profile is the last server-confirmed view of the account. The server never
// returns a password, so this record has none.
type Profile struct {
	Avatar string
	Name   string
	Email  string
}

// Draft is the editable working copy. Password is write-only: it is sent to
// the server when non-empty and never read back.
type Draft struct {
	Avatar   string
	Name     string
	Email    string
	Password string
}

// draftFrom initializes a fresh draft from a server profile. The password
// always starts empty.
func draftFrom(p Profile) Draft {
	return Draft{
		Avatar: p.Avatar,
		Name:   p.Name,
		Email:  p.Email,
	}
}
