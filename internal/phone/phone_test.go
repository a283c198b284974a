package phone

import (
	"testing"

	"github.com/Theluxegrp/Theluxegrp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"formatted us number", "(555) 123-4567", "+15551234567"},
		{"bare ten digits", "5551234567", "+15551234567"},
		{"dotted", "555.123.4567", "+15551234567"},
		{"eleven digits with country code", "15551234567", "+15551234567"},
		{"plus one prefix", "+1 555 123 4567", "+15551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"too short", "555-1234"},
		{"nine digits", "555123456"},
		{"eleven digits without leading one", "25551234567"},
		{"twelve digits", "155512345678"},
		{"empty", ""},
		{"letters only", "call me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidPhone)
		})
	}
}

func TestSanitizeCode(t *testing.T) {
	assert.Equal(t, "482193", SanitizeCode("482193"))
	assert.Equal(t, "482193", SanitizeCode(" 48 21-93 "))
	assert.Equal(t, "482193", SanitizeCode("4821937777"))
	assert.Equal(t, "123", SanitizeCode("1a2b3c"))
	assert.Equal(t, "", SanitizeCode("none"))
}
