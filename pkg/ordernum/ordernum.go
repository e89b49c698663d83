// Package ordernum genera números de pedido legibles con el formato visible
// CMD-<token>. El token combina el timestamp en base 36 (ordenable por fecha
// de creación) con un sufijo aleatorio que evita colisiones entre pedidos
// simultáneos.
package ordernum

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const prefix = "CMD-"

// New genera un número de pedido para el instante actual en milisegundos.
func New(unixMilli int64) string {
	ts := strconv.FormatInt(unixMilli, 36)
	// 3 bytes aleatorios: 16M combinaciones dentro del mismo milisegundo.
	u := uuid.New()
	suffix := hex.EncodeToString(u[:3])
	return prefix + strings.ToUpper(ts+suffix)
}
