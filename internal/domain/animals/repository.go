package animals

import "context"

type Repository interface {
	// Create inserta el documento y devuelve el id asignado.
	// La asignación del id es atómica dentro del adapter (contador
	// propio del storage); NextID define la aritmética compartida.
	Create(ctx context.Context, a Animal) (string, error)

	// Find devuelve los documentos que cumplen el predicado, en el
	// orden estable del storage. Predicado vacío = colección completa.
	Find(ctx context.Context, p Predicate) ([]Animal, error)

	// UpdateMany aplica el set parcial a cada documento que matchea
	// y devuelve cuántos modificó. Cero matches no es error.
	UpdateMany(ctx context.Context, p Predicate, f FieldSet) (int64, error)

	// DeleteMany elimina los documentos que matchean y devuelve el conteo.
	DeleteMany(ctx context.Context, p Predicate) (int64, error)
}
