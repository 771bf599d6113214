package services

import (
	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	memoriaModels "github.com/AndrywBarrera/OperativePages/memoria/models"
	"github.com/AndrywBarrera/OperativePages/simulador/models"
)

// MetricsCollector cuenta los ticks de la corrida y deriva las métricas del panel.
type MetricsCollector struct {
	ticks     int
	busyTicks int
}

// Record anota un tick; busy indica si la CPU ejecutó algún proceso.
func (m *MetricsCollector) Record(busy bool) {
	m.ticks++
	if busy {
		m.busyTicks++
	}
}

// MemoryStats son los datos de memoria que necesita Collect.
type MemoryStats struct {
	Counters    memoriaModels.Metrics
	Utilization float64
}

// FileStats son los datos del controlador de archivos que necesita Collect.
type FileStats struct {
	Granted   int
	Conflicts int
}

// Collect calcula las métricas. Los promedios de espera y retorno son sobre los procesos terminados y valen 0
// mientras no termine ninguno.
func (m *MetricsCollector) Collect(processes []kernelModels.PCB, memory MemoryStats, files FileStats) models.Metrics {
	metrics := models.Metrics{
		TotalProcesses:    len(processes),
		MemoryUtilization: memory.Utilization,
		PageFaults:        memory.Counters.Faults,
		PageHits:          memory.Counters.Hits,
		Evictions:         memory.Counters.Evictions,
		FileGranted:       files.Granted,
		FileConflicts:     files.Conflicts,
	}

	var waiting, turnaround int
	for _, pcb := range processes {
		if pcb.EstadoActual != kernelModels.EstadoExit {
			continue
		}
		metrics.CompletedProcesses++
		waiting += pcb.WaitingTime
		turnaround += pcb.Turnaround()
	}
	if metrics.CompletedProcesses > 0 {
		metrics.AverageWaiting = float64(waiting) / float64(metrics.CompletedProcesses)
		metrics.AverageTurnaround = float64(turnaround) / float64(metrics.CompletedProcesses)
	}

	if accesses := memory.Counters.Hits + memory.Counters.Faults; accesses > 0 {
		metrics.HitRatio = float64(memory.Counters.Hits) / float64(accesses)
	}
	if m.ticks > 0 {
		metrics.Throughput = float64(metrics.CompletedProcesses) / float64(m.ticks)
		metrics.CPUUtilization = float64(m.busyTicks) * 100 / float64(m.ticks)
	}
	return metrics
}
