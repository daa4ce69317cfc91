package record

import (
	"errors"
	"testing"
)

func TestNewUser_CPF(t *testing.T) {
	tests := []struct {
		cpf   string
		valid bool
	}{
		{"123.456.789-01", true},
		{"12345678901", true},
		{"123 456 789 01", true},
		{"123", false},
		{"", false},
		{"123.456.789-012", false},
		{"abcdefghijk", false},
		{"1234567890a", false}, // 10 digits plus a letter
	}

	for _, tt := range tests {
		_, err := NewUser("Maria Silva", tt.cpf, "maria@example.com")
		if tt.valid && err != nil {
			t.Errorf("NewUser(cpf=%q) error = %v, want nil", tt.cpf, err)
		}
		if !tt.valid {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("NewUser(cpf=%q) error = %v, want *ValidationError", tt.cpf, err)
			} else if verr.Field != "cpf" {
				t.Errorf("NewUser(cpf=%q) failed field = %q, want %q", tt.cpf, verr.Field, "cpf")
			}
		}
	}
}

func TestNewUser_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"maria.silva+tag@example.com.br", true},
		{"a@b", false},
		{"a@b.c", false}, // TLD shorter than 2
		{"@example.com", false},
		{"maria@", false},
		{"", false},
		{"maria silva@example.com", false},
	}

	for _, tt := range tests {
		_, err := NewUser("Maria Silva", "12345678901", tt.email)
		if tt.valid && err != nil {
			t.Errorf("NewUser(email=%q) error = %v, want nil", tt.email, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("NewUser(email=%q) error = nil, want validation failure", tt.email)
		}
	}
}

func TestNewUser_Name(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"Maria", true},
		{"Jo", true},
		{"A", false},
		{"", false},
		{"  A  ", false}, // trims to length 1
		{" Jo ", true},
	}

	for _, tt := range tests {
		_, err := NewUser(tt.name, "12345678901", "maria@example.com")
		if tt.valid && err != nil {
			t.Errorf("NewUser(name=%q) error = %v, want nil", tt.name, err)
		}
		if !tt.valid {
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != "name" {
				t.Errorf("NewUser(name=%q) error = %v, want name validation failure", tt.name, err)
			}
		}
	}
}

func TestUser_RowRoundTrip(t *testing.T) {
	u, err := NewUser("Maria Silva", "123.456.789-01", "maria@example.com")
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	got := UserFromRow(u.Row(), 2)

	want := u
	want.RowIndex = 2
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
