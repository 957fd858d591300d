package profile

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := Draft{Name: "Jane", Email: "user@example.com"}

	cases := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"valid", valid, nil},
		{"valid_with_password", Draft{Name: "Jane", Email: "user@example.com", Password: "pw"}, nil},
		{"valid_subdomain", Draft{Name: "J", Email: "a.b@mail.example.co.uk"}, nil},
		{"empty_name", Draft{Email: "user@example.com"}, ErrEmptyName},
		{"whitespace_name", Draft{Name: "   ", Email: "user@example.com"}, ErrEmptyName},
		{"empty_email", Draft{Name: "Jane"}, ErrEmptyEmail},
		{"whitespace_email", Draft{Name: "Jane", Email: "  "}, ErrEmptyEmail},
		{"no_at", Draft{Name: "Jane", Email: "abc"}, ErrMalformedEmail},
		{"no_dot", Draft{Name: "Jane", Email: "a@b"}, ErrMalformedEmail},
		{"trailing_dot", Draft{Name: "Jane", Email: "a@b."}, ErrMalformedEmail},
		{"double_at", Draft{Name: "Jane", Email: "a@@b.com"}, ErrMalformedEmail},
		{"space_inside", Draft{Name: "Jane", Email: "a b@c.com"}, ErrMalformedEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.draft)
			if !errors.Is(got, tc.want) {
				t.Fatalf("Validate(%+v) = %v, want %v", tc.draft, got, tc.want)
			}
		})
	}
}

func TestValidate_DoesNotEnforcePasswordLength(t *testing.T) {
	// The form documents a minimum length but the server owns that rule.
	d := Draft{Name: "Jane", Email: "user@example.com", Password: "x"}
	if err := Validate(d); err != nil {
		t.Fatalf("Validate = %v, want nil for short password", err)
	}
}
