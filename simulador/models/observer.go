package models

// Observer recibe las fotos de la simulación. Nunca modifica el motor; los comandos van por el Driver.
// Los métodos se llaman desde el hilo del reloj y no deben volver a llamar al Driver.
type Observer interface {
	OnSnapshot(snapshot Snapshot)
	OnCompleted(snapshot Snapshot)
}
