package animals

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// FirstID es el id del primer animal de una colección vacía.
	FirstID = "A000001"

	// SentinelID se asigna cuando el último id guardado no se puede
	// parsear. Preferimos insertar con un id centinela a fallar el alta.
	SentinelID = "A999999"
)

// NextID calcula el siguiente id a partir del último asignado.
// Formato: "A" + 6 dígitos, estrictamente creciente.
// El llamador (adapter de storage) es responsable de la atomicidad:
// esta función es aritmética pura sobre el último id que él custodia.
func NextID(last string) string {
	if strings.TrimSpace(last) == "" {
		return FirstID
	}
	if !strings.HasPrefix(last, "A") {
		return SentinelID
	}
	n, err := strconv.Atoi(last[1:])
	if err != nil || n < 0 {
		return SentinelID
	}
	return fmt.Sprintf("A%06d", n+1)
}
