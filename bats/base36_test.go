package bats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBase36(t *testing.T) {
	v, err := ParseBase36("1K27GA00000Y")
	assert.NoError(t, err)
	assert.Equal(t, uint64(204969015920664610), v)

	v, err = ParseBase36("000000000000")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	v, err = ParseBase36("00000000000Z")
	assert.NoError(t, err)
	assert.Equal(t, uint64(35), v)

	v, err = ParseBase36("000000000010")
	assert.NoError(t, err)
	assert.Equal(t, uint64(36), v)
}

func TestParseBase36Rejects(t *testing.T) {
	_, err := ParseBase36("00000000000a")
	assert.ErrorIs(t, err, ErrBadReferenceField)

	_, err = ParseBase36("0000000 0000")
	assert.ErrorIs(t, err, ErrBadReferenceField)
}

func TestFormatBase36RoundTrip(t *testing.T) {
	for _, ref := range []string{"1K27GA00000Y", "000000000000", "ZZZZZZ000000", "00000000ABCD"} {
		v, err := ParseBase36(ref)
		assert.NoError(t, err)
		assert.Equal(t, ref, FormatBase36(v))
	}
}
