package ordernum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Formato(t *testing.T) {
	n := New(1735689600000)

	assert.True(t, strings.HasPrefix(n, "CMD-"))
	// todo el token va en mayúsculas
	token := strings.TrimPrefix(n, "CMD-")
	assert.Equal(t, strings.ToUpper(token), token)
	assert.NotEmpty(t, token)
}

func TestNew_SinColisionesEnElMismoMilisegundo(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		n := New(1735689600000)
		_, dup := seen[n]
		assert.False(t, dup, "número repetido: %s", n)
		seen[n] = struct{}{}
	}
}

func TestNew_TimestampOrdenable(t *testing.T) {
	a := New(1735689600000)
	b := New(1767225600000) // un año después: timestamp base36 más grande
	assert.Less(t, a[:10], b[:10])
}
