//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyGenSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		bits    int
		wantErr bool
	}{
		{"standard key size", 2048, false},
		{"small test key size", 512, false},
		{"minimum supported size", 16, false},
		{"zero", 0, true},
		{"negative", -2, true},
		{"below minimum", 8, true},
		{"odd bit count", 17, true},
		{"odd bit count above minimum", 1025, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &KeyGenSettings{Bits: tt.bits}
			err := settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
