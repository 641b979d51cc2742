package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTelefone(t *testing.T) {
	assert.True(t, ValidateTelefone("(11) 98765-4321"))
	assert.True(t, ValidateTelefone("+55 11 98765-4321"))
	assert.True(t, ValidateTelefone("1187654321"))

	assert.False(t, ValidateTelefone("12345"))
	assert.False(t, ValidateTelefone(""))
	assert.False(t, ValidateTelefone("abc-def-ghij"))
}

func TestFormatTelefone(t *testing.T) {
	assert.Equal(t, "+5511987654321", FormatTelefone("(11) 98765-4321"))
	assert.Equal(t, "+5511987654321", FormatTelefone("+55 11 98765-4321"))
	assert.Equal(t, "+5511987654321", FormatTelefone("5511987654321"))
}

func TestValidateHora(t *testing.T) {
	assert.True(t, ValidateHora("00:00"))
	assert.True(t, ValidateHora("09:30"))
	assert.True(t, ValidateHora("23:59"))

	assert.False(t, ValidateHora("24:00"))
	assert.False(t, ValidateHora("9:30"))
	assert.False(t, ValidateHora("09:60"))
	assert.False(t, ValidateHora("09h30"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("maria@example.com"))
	assert.True(t, ValidateEmail("pai.joao+agenda@casa.org.br"))

	assert.False(t, ValidateEmail("maria@"))
	assert.False(t, ValidateEmail("maria"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestFormatNome(t *testing.T) {
	assert.Equal(t, "Maria Da Silva", FormatNome("maria da silva"))
	assert.Equal(t, "João", FormatNome("JOÃO"))
	assert.Equal(t, "", FormatNome(""))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", SanitizeString("<script>alert('1')</script>"))
	assert.Equal(t, "texto normal", SanitizeString("texto normal"))
}
