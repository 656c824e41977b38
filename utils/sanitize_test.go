package utils_test

import (
	"testing"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "insurance about to lapse", utils.NormalizeText("  insurance   about to\tlapse \n"))
	assert.Equal(t, "", utils.NormalizeText("   \t\n"))
	assert.Equal(t, "unchanged", utils.NormalizeText("unchanged"))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "1234-ABC", utils.NormalizeCode(" 1234-abc "))
	assert.Equal(t, "B12345678", utils.NormalizeCode("b 12345678"))
	assert.Equal(t, "", utils.NormalizeCode("  "))
}
