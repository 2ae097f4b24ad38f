package validators

import "strings"

// IsValidCPF valida o CPF pelos dois dígitos verificadores. Aceita o
// formato com ou sem pontuação (000.000.000-00).
func IsValidCPF(cpf string) bool {
	var digits []int
	for _, r := range cpf {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-':
		default:
			return false
		}
	}

	if len(digits) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no checksum mas são inválidos.
	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if checkDigit(digits[:9], 10) != digits[9] {
		return false
	}
	return checkDigit(digits[:10], 11) == digits[10]
}

func checkDigit(digits []int, weight int) int {
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// NormalizeCPF remove a pontuação.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
