package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	cases := []struct {
		cpf   string
		valid bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},

		{"529.982.247-24", false}, // dígito verificador errado
		{"52998224724", false},
		{"111.111.111-11", false}, // todos iguais
		{"00000000000", false},
		{"5299822472", false}, // 10 dígitos
		{"529982247255", false},
		{"529.982.247-2a", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.cpf, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidCPF(tc.cpf))
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeCPF("529.982.247-25"))
	assert.Equal(t, "52998224725", NormalizeCPF("52998224725"))
	assert.Equal(t, "", NormalizeCPF("---"))
}
