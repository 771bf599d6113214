package list

import (
	"fmt"
	"sync"
)

// List define las operaciones de las colas del simulador (READY, registro de accesos).
type List[T any] interface {
	Add(item T)                                 // Añadir un elemento al final de la lista
	Dequeue() (T, error)                        // Eliminar y devolver el primer elemento de la lista
	Find(predicate func(T) bool) (T, int, bool) // Buscar un elemento dado un predicado
	Get(index int) (T, error)                   // Obtener un elemento a partir de un índice dado
	GetAll() []T                                // Copia de todos los elementos
	Insert(index int, item T) error             // Insertar un elemento en el índice dado
	Remove(index int)                           // Eliminar un elemento en el índice dado
	RemoveWhere(match func(T) bool) (T, bool)   // Eliminar el primer elemento que cumpla el predicado
	Size() int                                  // Tamaño de la lista
	Tail(n int) []T                             // Copia de los últimos n elementos
}

// ArrayList implementa List sobre un slice protegido por un RWMutex.
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Add inserta un elemento al final de la lista.
//
// Ejemplo:
//
//	func main() {
//		queue := &ArrayList[int]{}
//		queue.Add(10)
//		queue.Add(20)
//	}
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock()
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// Si la lista está vacía retorna el valor "cero" de T y un error.
func (list *ArrayList[T]) Dequeue() (T, error) {
	list.mu.Lock()
	defer list.mu.Unlock()

	if len(list.items) == 0 {
		var zero T
		return zero, fmt.Errorf("list is empty")
	}
	value := list.items[0]
	list.items = list.items[1:]
	return value, nil
}

// Find busca el primer elemento que cumple el predicado y devuelve también su índice.
//
// Ejemplo:
//
//	pcb, index, found := queue.Find(func(p *models.PCB) bool {
//		return p.PID == 3
//	})
func (list *ArrayList[T]) Find(predicate func(T) bool) (T, int, bool) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	for i, item := range list.items {
		if predicate(item) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// Get devuelve el elemento en el índice proporcionado.
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	if index < 0 || index >= len(list.items) {
		var zero T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// GetAll retorna una copia de los elementos; modificar el slice no afecta a la lista.
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock()
	defer list.mu.RUnlock()

	itemsCopy := make([]T, len(list.items))
	copy(itemsCopy, list.items)
	return itemsCopy
}

// Insert inserta un elemento en el índice proporcionado. index == Size() equivale a Add.
//
// Ejemplo:
//
//	queue.Add(10)
//	queue.Add(30)
//	_ = queue.Insert(1, 20) // [10, 20, 30]
func (list *ArrayList[T]) Insert(index int, item T) error {
	list.mu.Lock()
	defer list.mu.Unlock()

	if index < 0 || index > len(list.items) {
		return fmt.Errorf("index out of range: %d", index)
	}
	list.items = append(list.items, item)
	copy(list.items[index+1:], list.items[index:])
	list.items[index] = item
	return nil
}

// Remove elimina el elemento del índice dado; un índice inválido no hace nada.
func (list *ArrayList[T]) Remove(index int) {
	list.mu.Lock()
	defer list.mu.Unlock()

	if index >= 0 && index < len(list.items) {
		list.items = append(list.items[:index], list.items[index+1:]...)
	}
}

// RemoveWhere elimina el primer elemento que cumple el predicado y lo devuelve.
func (list *ArrayList[T]) RemoveWhere(match func(T) bool) (T, bool) {
	list.mu.Lock()
	defer list.mu.Unlock()

	for i, item := range list.items {
		if match(item) {
			list.items = append(list.items[:i], list.items[i+1:]...)
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Size devuelve el tamaño de la lista.
func (list *ArrayList[T]) Size() int {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return len(list.items)
}

// Tail devuelve una copia de los últimos n elementos (o de todos si hay menos).
func (list *ArrayList[T]) Tail(n int) []T {
	list.mu.RLock()
	defer list.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	start := len(list.items) - n
	if start < 0 {
		start = 0
	}
	itemsCopy := make([]T, len(list.items)-start)
	copy(itemsCopy, list.items[start:])
	return itemsCopy
}
