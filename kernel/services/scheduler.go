package services

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/AndrywBarrera/OperativePages/kernel/models"
	"github.com/AndrywBarrera/OperativePages/utils/list"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// Scheduler es el planificador de corto plazo. Todo su estado lo modifica un único hilo (el del driver).
type Scheduler struct {
	registry *Registry
	config   models.SchedulerConfig
	policy   Policy

	queueReady  *list.ArrayList[*models.PCB]
	running     *models.PCB
	quantumUsed int

	executedUnits int
	listeners     []func(models.PCB)
}

// NewScheduler crea un planificador RR con el quantum por defecto sobre el registry dado.
func NewScheduler(registry *Registry) *Scheduler {
	config := models.SchedulerConfig{Algorithm: models.AlgorithmRR, Quantum: models.DefaultQuantum}
	policy, _ := NewPolicy(config)
	return &Scheduler{
		registry:   registry,
		config:     config,
		policy:     policy,
		queueReady: &list.ArrayList[*models.PCB]{},
	}
}

// Configure cambia la política. Un quantum en cero con RR toma el valor por defecto.
func (s *Scheduler) Configure(config models.SchedulerConfig) error {
	if config.Algorithm == models.AlgorithmRR && config.Quantum == 0 {
		config.Quantum = models.DefaultQuantum
	}
	policy, err := NewPolicy(config)
	if err != nil {
		return err
	}
	s.config = config
	s.policy = policy
	slog.Debug("Planificador configurado", "algoritmo", policy.Name(), "quantum", config.Quantum,
		"desalojo", config.Preemptive)
	return nil
}

func (s *Scheduler) Policy() string {
	return s.policy.Name()
}

// Admit da de alta un proceso en NEW; pasa a READY en el primer tick con now >= llegada.
func (s *Scheduler) Admit(pcb *models.PCB) error {
	if err := s.registry.Register(pcb); err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("## (%d) Se crea el proceso - Estado : NEW", pcb.PID),
		"llegada", pcb.ArrivalTime, "rafaga", pcb.BurstTime, "prioridad", pcb.Priority)
	return nil
}

// OnCompletion registra una función que se llama con una copia del PCB cada vez que un proceso termina.
func (s *Scheduler) OnCompletion(listener func(models.PCB)) {
	s.listeners = append(s.listeners, listener)
}

// Tick avanza una unidad de tiempo: ingresa llegadas y desbloqueos, desaloja si corresponde, despacha y ejecuta
// una unidad del proceso elegido. Devuelve el PID que ejecutó en este tick, o false si la CPU quedó ociosa.
func (s *Scheduler) Tick(now int) (uint, bool) {
	s.admitArrivals(now)

	if s.running != nil {
		ready := s.queueReady.GetAll()
		if s.policy.ShouldPreempt(s.running, s.quantumUsed, ready) {
			if len(ready) == 0 {
				// sin competencia el mismo proceso sigue con un quantum nuevo
				s.quantumUsed = 0
			} else {
				s.preempt(now)
			}
		}
	}

	if s.running == nil {
		s.dispatch(now)
	}
	if s.running == nil {
		return 0, false
	}

	pcb := s.running
	pcb.RemainingTime--
	s.quantumUsed++
	s.executedUnits++

	for _, waiting := range s.queueReady.GetAll() {
		waiting.WaitingTime++
	}

	if pcb.RemainingTime == 0 {
		if err := s.NotifyCompletion(pcb.PID, now+1); err != nil {
			slog.Error("No se pudo finalizar el proceso", "PID", pcb.PID, "error", err)
		}
	}
	return pcb.PID, true
}

// NotifyCompletion pasa a EXIT a un proceso sin ráfaga pendiente y avisa a los listeners.
// Es idempotente para procesos que ya están en EXIT.
func (s *Scheduler) NotifyCompletion(pid uint, now int) error {
	pcb, found := s.registry.Get(pid)
	if !found {
		return simerr.New(simerr.UnknownProcess, "kernel.NotifyCompletion", "PID %d no registrado", pid)
	}
	if pcb.EstadoActual == models.EstadoExit {
		return nil
	}
	if pcb.RemainingTime > 0 {
		return simerr.New(simerr.InvalidState, "kernel.NotifyCompletion",
			"PID %d todavía tiene %d unidades pendientes", pid, pcb.RemainingTime)
	}

	if err := TransitionState(pcb, models.EstadoExit, now); err != nil {
		return err
	}
	pcb.CompletionTime = now
	if s.running == pcb {
		s.running = nil
		s.quantumUsed = 0
	}
	logFinishMetrics(pcb)

	for _, listener := range s.listeners {
		listener(pcb.Clone())
	}
	return nil
}

// Block manda a BLOCKED al proceso en ejecución hasta el tick until (atención de page fault).
func (s *Scheduler) Block(pid uint, until int, now int) error {
	if s.running == nil || s.running.PID != pid {
		return simerr.New(simerr.InvalidRequest, "kernel.Block", "PID %d no está ejecutando", pid)
	}
	if until <= now {
		return nil
	}

	pcb := s.running
	if err := TransitionState(pcb, models.EstadoBlocked, now); err != nil {
		return err
	}
	pcb.BlockedUntil = until
	s.running = nil
	s.quantumUsed = 0
	slog.Debug("Proceso bloqueado por page fault", "PID", pid, "hasta", until)
	return nil
}

// Running devuelve el PID en ejecución, si lo hay.
func (s *Scheduler) Running() (uint, bool) {
	if s.running == nil {
		return 0, false
	}
	return s.running.PID, true
}

func (s *Scheduler) QuantumUsed() int {
	return s.quantumUsed
}

// ReadyQueue devuelve los PID en READY en orden de cola.
func (s *Scheduler) ReadyQueue() []uint {
	ready := s.queueReady.GetAll()
	pids := make([]uint, 0, len(ready))
	for _, pcb := range ready {
		pids = append(pids, pcb.PID)
	}
	return pids
}

// ExecutedUnits es el total de unidades de CPU ejecutadas por todos los procesos.
func (s *Scheduler) ExecutedUnits() int {
	return s.executedUnits
}

// admitArrivals pasa a READY las llegadas (por llegada y PID) y después los procesos cuyo bloqueo venció.
func (s *Scheduler) admitArrivals(now int) {
	var arrivals, unblocked []*models.PCB
	for _, pcb := range s.registry.All() {
		switch {
		case pcb.EstadoActual == models.EstadoNew && pcb.ArrivalTime <= now:
			arrivals = append(arrivals, pcb)
		case pcb.EstadoActual == models.EstadoBlocked && pcb.BlockedUntil <= now:
			unblocked = append(unblocked, pcb)
		}
	}

	sort.SliceStable(arrivals, func(i, j int) bool { return arrivedFirst(arrivals[i], arrivals[j]) })
	sort.SliceStable(unblocked, func(i, j int) bool {
		if unblocked[i].BlockedUntil != unblocked[j].BlockedUntil {
			return unblocked[i].BlockedUntil < unblocked[j].BlockedUntil
		}
		return unblocked[i].PID < unblocked[j].PID
	})

	for _, pcb := range append(arrivals, unblocked...) {
		s.addProcessToReady(pcb, now)
	}
}

func (s *Scheduler) addProcessToReady(pcb *models.PCB, now int) {
	if err := TransitionState(pcb, models.EstadoReady, now); err != nil {
		slog.Error("No se pudo pasar el proceso a READY", "PID", pcb.PID, "error", err)
		return
	}
	s.queueReady.Add(pcb)
}

func (s *Scheduler) preempt(now int) {
	pcb := s.running
	s.running = nil
	s.quantumUsed = 0
	slog.Info(fmt.Sprintf("## (%d) - Desalojado por algoritmo %s", pcb.PID, s.policy.Name()), "tick", now)
	s.addProcessToReady(pcb, now)
}

func (s *Scheduler) dispatch(now int) {
	ready := s.queueReady.GetAll()
	if len(ready) == 0 {
		return
	}

	chosen := s.policy.Select(ready)
	s.queueReady.RemoveWhere(func(p *models.PCB) bool { return p == chosen })

	if err := TransitionState(chosen, models.EstadoExecuting, now); err != nil {
		slog.Error("No se pudo despachar el proceso", "PID", chosen.PID, "error", err)
		return
	}
	if chosen.StartTime < 0 {
		chosen.StartTime = now
	}
	s.running = chosen
	s.quantumUsed = 0
	slog.Debug("Proceso despachado", "PID", chosen.PID, "algoritmo", s.policy.Name(), "restante", chosen.RemainingTime)
}
