package services

import (
	"github.com/AndrywBarrera/OperativePages/kernel/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// Policy decide qué proceso de READY se despacha y cuándo se desaloja al que está ejecutando.
type Policy interface {
	Name() string
	// Select devuelve el elegido de ready (no vacío); ready viene en orden de cola.
	Select(ready []*models.PCB) *models.PCB
	// ShouldPreempt indica si running debe volver a READY antes de ejecutar la próxima unidad.
	ShouldPreempt(running *models.PCB, quantumUsed int, ready []*models.PCB) bool
}

// NewPolicy arma la política a partir de la configuración del planificador.
func NewPolicy(cfg models.SchedulerConfig) (Policy, error) {
	switch cfg.Algorithm {
	case models.AlgorithmRR:
		if cfg.Quantum <= 0 {
			return nil, simerr.New(simerr.ConfigurationError, "kernel.NewPolicy",
				"quantum %d inválido para RR, debe ser positivo", cfg.Quantum)
		}
		return &roundRobin{quantum: cfg.Quantum}, nil
	case models.AlgorithmSJF:
		return &shortestJobFirst{preemptive: cfg.Preemptive}, nil
	case models.AlgorithmPriority:
		switch cfg.PriorityOrder {
		case "", models.PriorityLowestFirst:
			return &priorityPolicy{preemptive: cfg.Preemptive}, nil
		case models.PriorityHighestFirst:
			return &priorityPolicy{preemptive: cfg.Preemptive, highestFirst: true}, nil
		default:
			return nil, simerr.New(simerr.ConfigurationError, "kernel.NewPolicy",
				"orden de prioridad %q no reconocido", cfg.PriorityOrder)
		}
	default:
		return nil, simerr.New(simerr.ConfigurationError, "kernel.NewPolicy",
			"algoritmo de planificación %q no reconocido", cfg.Algorithm)
	}
}

// --- Round Robin ---

type roundRobin struct {
	quantum int
}

func (rr *roundRobin) Name() string { return models.AlgorithmRR }

// Select toma la cabeza de la cola: el orden de la cola ya refleja llegada y desalojos.
func (rr *roundRobin) Select(ready []*models.PCB) *models.PCB {
	return ready[0]
}

func (rr *roundRobin) ShouldPreempt(_ *models.PCB, quantumUsed int, _ []*models.PCB) bool {
	return quantumUsed >= rr.quantum
}

// --- Shortest Job First (SRT si es con desalojo) ---

type shortestJobFirst struct {
	preemptive bool
}

func (sjf *shortestJobFirst) Name() string {
	if sjf.preemptive {
		return "SRT"
	}
	return models.AlgorithmSJF
}

func (sjf *shortestJobFirst) Select(ready []*models.PCB) *models.PCB {
	return selectBest(ready, shorterJob)
}

func (sjf *shortestJobFirst) ShouldPreempt(running *models.PCB, _ int, ready []*models.PCB) bool {
	if !sjf.preemptive || len(ready) == 0 {
		return false
	}
	return selectBest(ready, shorterJob).RemainingTime < running.RemainingTime
}

// shorterJob ordena por ráfaga restante, después por llegada y por último por PID.
func shorterJob(a, b *models.PCB) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return arrivedFirst(a, b)
}

// --- Prioridades ---

type priorityPolicy struct {
	preemptive   bool
	highestFirst bool
}

func (p *priorityPolicy) Name() string { return models.AlgorithmPriority }

func (p *priorityPolicy) Select(ready []*models.PCB) *models.PCB {
	return selectBest(ready, p.before)
}

func (p *priorityPolicy) ShouldPreempt(running *models.PCB, _ int, ready []*models.PCB) bool {
	if !p.preemptive || len(ready) == 0 {
		return false
	}
	return p.better(selectBest(ready, p.before).Priority, running.Priority)
}

func (p *priorityPolicy) better(a, b int) bool {
	if p.highestFirst {
		return a > b
	}
	return a < b
}

func (p *priorityPolicy) before(a, b *models.PCB) bool {
	if a.Priority != b.Priority {
		return p.better(a.Priority, b.Priority)
	}
	return arrivedFirst(a, b)
}

// --- helpers ---

func arrivedFirst(a, b *models.PCB) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}

func selectBest(ready []*models.PCB, less func(a, b *models.PCB) bool) *models.PCB {
	best := ready[0]
	for _, pcb := range ready[1:] {
		if less(pcb, best) {
			best = pcb
		}
	}
	return best
}
