package services

import (
	"fmt"
	"log/slog"
)

// Release libera los marcos del proceso y descarta sus entradas de la tabla de páginas.
// Devuelve la cantidad de marcos liberados; un PID sin páginas no hace nada.
func (m *Manager) Release(pid uint) int {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()

	freed := 0
	for i := range m.frames {
		if owner := m.frames[i].Owner; owner != nil && owner.PID == pid {
			m.frames[i].Owner = nil
			freed++
		}
	}
	for key := range m.pageTable {
		if key.PID == pid {
			delete(m.pageTable, key)
		}
	}

	metrics, ok := m.processMetrics[pid]
	if !ok {
		return freed
	}
	delete(m.processMetrics, pid)

	slog.Info(fmt.Sprintf("## PID: %d - Proceso Destruido - Métricas - Hits: %d; Page Faults: %d; Reemplazos: %d",
		pid, metrics.Hits, metrics.Faults, metrics.Evictions))
	slog.Debug("Frames liberados", "pid", pid, "count", freed)
	return freed
}
