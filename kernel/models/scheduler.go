package models

// Algoritmos de planificación de corto plazo.
const (
	AlgorithmRR       = "RR"
	AlgorithmSJF      = "SJF"
	AlgorithmPriority = "PRIORITY"
)

// Sentido de la prioridad, fijo al configurar.
const (
	PriorityLowestFirst  = "LOWEST_FIRST"
	PriorityHighestFirst = "HIGHEST_FIRST"
)

const DefaultQuantum = 2

// SchedulerConfig agrupa los parámetros del planificador de corto plazo.
type SchedulerConfig struct {
	Algorithm     string `json:"scheduler_algorithm"`
	Quantum       int    `json:"quantum"`
	Preemptive    bool   `json:"preemptive"`
	PriorityOrder string `json:"priority_order"`
}
