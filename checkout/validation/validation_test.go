package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFullName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        bool
		wantMessage string
	}{
		{
			name:  "valid simple name",
			input: "Maria Santos",
			want:  true,
		},
		{
			name:  "valid name with diacritics",
			input: "João Conceição",
			want:  true,
		},
		{
			name:  "valid name with hyphen and apostrophe",
			input: "Anne-Marie d'Almeida",
			want:  true,
		},
		{
			name:        "email pasted into name field",
			input:       "João Silva123@test",
			want:        false,
			wantMessage: "O nome não pode conter números nem '@'. Parece um email — confirme o campo.",
		},
		{
			name:  "digits only",
			input: "12345",
			want:  false,
		},
		{
			name:  "too short",
			input: "A",
			want:  false,
		},
		{
			name:  "empty",
			input: "",
			want:  false,
		},
		{
			name:  "disallowed punctuation",
			input: "Maria; DROP TABLE",
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateFullName(tt.input)
			assert.Equal(t, tt.want, got.IsValid)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, got.Message)
			}

			if !tt.want {
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid", input: "maria@exemplo.pt", want: true},
		{name: "valid with plus tag", input: "maria+vendas@exemplo.com", want: true},
		{name: "missing domain", input: "maria@", want: false},
		{name: "missing at sign", input: "maria.exemplo.pt", want: false},
		{name: "empty", input: "", want: false},
		{name: "surrounding spaces accepted", input: "  maria@exemplo.pt  ", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateEmail(tt.input)
			assert.Equal(t, tt.want, got.IsValid)
		})
	}
}

func TestValidateEmailMaxLength(t *testing.T) {
	local := make([]byte, 250)
	for i := range local {
		local[i] = 'a'
	}

	got := ValidateEmail(string(local) + "@x.pt")
	assert.False(t, got.IsValid)
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name        string
		countryCode string
		input       string
		want        bool
	}{
		{name: "valid portuguese mobile", countryCode: "+351", input: "912 345 678", want: true},
		{name: "valid with dashes", countryCode: "+55", input: "11-91234-5678", want: true},
		{name: "too few digits", countryCode: "+351", input: "912", want: false},
		{name: "too many digits", countryCode: "+351", input: "9123456789012345", want: false},
		{name: "letters rejected", countryCode: "+351", input: "91a345678", want: false},
		{name: "missing country code", countryCode: "", input: "912345678", want: false},
		{name: "country code without plus", countryCode: "351", input: "912345678", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePhone(tt.countryCode, tt.input)
			assert.Equal(t, tt.want, got.IsValid)
		})
	}
}

func TestSanitizersAreIdempotent(t *testing.T) {
	names := []string{"  João   Silva123@test ", "Anne-Marie d'Almeida", "Maria; DROP"}
	for _, raw := range names {
		once := SanitizeFullName(raw)
		assert.Equal(t, once, SanitizeFullName(once))
	}

	emails := []string{" Maria@Exemplo.PT ", "x@y.pt"}
	for _, raw := range emails {
		once := SanitizeEmail(raw)
		assert.Equal(t, once, SanitizeEmail(once))
	}

	phones := []string{"912 345 678", "(11) 91234-5678"}
	for _, raw := range phones {
		once := SanitizePhone(raw)
		assert.Equal(t, once, SanitizePhone(once))
	}
}

func TestSanitizeFullNameStripsDisallowed(t *testing.T) {
	assert.Equal(t, "João Silvatest", SanitizeFullName("João Silva123@test"))
}
