package services

import (
	"sync"

	"github.com/AndrywBarrera/OperativePages/kernel/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// Registry es la tabla canónica de procesos de una corrida. Conserva el orden de alta, que es el orden
// determinístico en el que se recorren los procesos.
type Registry struct {
	mx        sync.RWMutex
	processes []*models.PCB
	byPID     map[uint]*models.PCB
}

func NewRegistry() *Registry {
	return &Registry{byPID: make(map[uint]*models.PCB)}
}

// Register agrega un proceso. Falla con ConfigurationError si la ráfaga no es positiva o el PID ya existe.
func (r *Registry) Register(pcb *models.PCB) error {
	if pcb == nil {
		return simerr.New(simerr.ConfigurationError, "kernel.Register", "proceso nulo")
	}
	if pcb.BurstTime <= 0 {
		return simerr.New(simerr.ConfigurationError, "kernel.Register",
			"PID %d tiene ráfaga %d, debe ser positiva", pcb.PID, pcb.BurstTime)
	}
	if pcb.ArrivalTime < 0 {
		return simerr.New(simerr.ConfigurationError, "kernel.Register",
			"PID %d tiene llegada negativa %d", pcb.PID, pcb.ArrivalTime)
	}

	r.mx.Lock()
	defer r.mx.Unlock()

	if _, exists := r.byPID[pcb.PID]; exists {
		return simerr.New(simerr.ConfigurationError, "kernel.Register", "PID %d duplicado", pcb.PID)
	}
	r.processes = append(r.processes, pcb)
	r.byPID[pcb.PID] = pcb
	return nil
}

// Get devuelve el PCB vivo del proceso. Solo el motor debe modificarlo.
func (r *Registry) Get(pid uint) (*models.PCB, bool) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	pcb, found := r.byPID[pid]
	return pcb, found
}

func (r *Registry) Exists(pid uint) bool {
	_, found := r.Get(pid)
	return found
}

func (r *Registry) Count() int {
	r.mx.RLock()
	defer r.mx.RUnlock()

	return len(r.processes)
}

// All devuelve los PCB vivos en orden de alta.
func (r *Registry) All() []*models.PCB {
	r.mx.RLock()
	defer r.mx.RUnlock()

	return append([]*models.PCB(nil), r.processes...)
}

// FindByState devuelve los procesos en el estado dado, en orden de alta.
func (r *Registry) FindByState(estado models.Estado) []*models.PCB {
	r.mx.RLock()
	defer r.mx.RUnlock()

	var found []*models.PCB
	for _, pcb := range r.processes {
		if pcb.EstadoActual == estado {
			found = append(found, pcb)
		}
	}
	return found
}

// AllTerminated indica si hay procesos y todos están en EXIT.
func (r *Registry) AllTerminated() bool {
	total := r.Count()
	return total > 0 && len(r.FindByState(models.EstadoExit)) == total
}

// Snapshot devuelve copias profundas de todos los procesos.
func (r *Registry) Snapshot() []models.PCB {
	r.mx.RLock()
	defer r.mx.RUnlock()

	snapshot := make([]models.PCB, 0, len(r.processes))
	for _, pcb := range r.processes {
		snapshot = append(snapshot, pcb.Clone())
	}
	return snapshot
}
