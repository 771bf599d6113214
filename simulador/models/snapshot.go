package models

import (
	filesystemModels "github.com/AndrywBarrera/OperativePages/filesystem/models"
	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	memoriaModels "github.com/AndrywBarrera/OperativePages/memoria/models"
)

// DriverState es el estado del reloj de la simulación.
type DriverState string

const (
	StateIdle      DriverState = "IDLE"
	StateRunning   DriverState = "RUNNING"
	StatePaused    DriverState = "PAUSED"
	StateStopped   DriverState = "STOPPED"
	StateCompleted DriverState = "COMPLETED"
)

// Terminal indica si la corrida terminó (detenida o completa).
func (s DriverState) Terminal() bool {
	return s == StateStopped || s == StateCompleted
}

// Metrics son los agregados que muestra el panel de métricas.
type Metrics struct {
	CompletedProcesses int     `json:"completed_processes"`
	TotalProcesses     int     `json:"total_processes"`
	AverageWaiting     float64 `json:"average_waiting"`
	AverageTurnaround  float64 `json:"average_turnaround"`
	Throughput         float64 `json:"throughput"`
	CPUUtilization     float64 `json:"cpu_utilization"`

	MemoryUtilization float64 `json:"memory_utilization"`
	PageFaults        int     `json:"page_faults"`
	PageHits          int     `json:"page_hits"`
	Evictions         int     `json:"evictions"`
	HitRatio          float64 `json:"hit_ratio"`

	FileGranted   int `json:"file_granted"`
	FileConflicts int `json:"file_conflicts"`

	TickErrors int `json:"tick_errors"`
}

// Snapshot es la foto de la simulación al final de un tick. Es una copia: no comparte memoria con el motor.
// RunningPID vale -1 si la CPU está ociosa.
type Snapshot struct {
	RunID       string      `json:"run_id"`
	Tick        int         `json:"tick"`
	State       DriverState `json:"state"`
	Algorithm   string      `json:"algorithm"`
	Replacement string      `json:"replacement"`
	RunningPID  int         `json:"running_pid"`
	ReadyQueue  []uint      `json:"ready_queue"`

	Processes []kernelModels.PCB                `json:"processes"`
	Frames    []memoriaModels.Frame             `json:"frames"`
	Files     []filesystemModels.File           `json:"files"`
	AccessLog []filesystemModels.AccessLogEntry `json:"access_log"`
	Errors    []string                          `json:"errors,omitempty"`

	Metrics Metrics `json:"metrics"`
}

// Clone hace una copia profunda del snapshot.
func (s Snapshot) Clone() Snapshot {
	clone := s
	clone.ReadyQueue = append([]uint(nil), s.ReadyQueue...)
	clone.Processes = make([]kernelModels.PCB, len(s.Processes))
	for i := range s.Processes {
		clone.Processes[i] = s.Processes[i].Clone()
	}
	clone.Frames = make([]memoriaModels.Frame, len(s.Frames))
	for i, frame := range s.Frames {
		clone.Frames[i] = frame
		if frame.Owner != nil {
			owner := *frame.Owner
			clone.Frames[i].Owner = &owner
		}
	}
	clone.Files = append([]filesystemModels.File(nil), s.Files...)
	clone.AccessLog = append([]filesystemModels.AccessLogEntry(nil), s.AccessLog...)
	clone.Errors = append([]string(nil), s.Errors...)
	return clone
}

// Process busca la copia del proceso pid dentro del snapshot.
func (s Snapshot) Process(pid uint) (kernelModels.PCB, bool) {
	for _, pcb := range s.Processes {
		if pcb.PID == pid {
			return pcb, true
		}
	}
	return kernelModels.PCB{}, false
}
