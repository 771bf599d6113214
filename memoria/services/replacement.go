package services

import "github.com/AndrywBarrera/OperativePages/memoria/models"

// selectVictim elige el marco a reemplazar. FIFO toma la página cargada hace más tiempo y LRU la de acceso más
// antiguo. Los empates se resuelven por el menor índice de marco. Se llama con la memoria llena.
func (m *Manager) selectVictim() int {
	victim := 0
	for i := 1; i < len(m.frames); i++ {
		if m.olderThan(m.frames[i], m.frames[victim]) {
			victim = i
		}
	}
	return victim
}

func (m *Manager) olderThan(a, b models.Frame) bool {
	if m.algorithm == models.ReplacementLRU {
		return a.LastAccess < b.LastAccess
	}
	return a.LoadTime < b.LoadTime
}
