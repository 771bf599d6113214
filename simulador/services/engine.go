package services

import (
	"fmt"
	"log/slog"

	cpu "github.com/AndrywBarrera/OperativePages/cpu/services"
	filesystem "github.com/AndrywBarrera/OperativePages/filesystem/services"
	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	kernel "github.com/AndrywBarrera/OperativePages/kernel/services"
	memoria "github.com/AndrywBarrera/OperativePages/memoria/services"
	"github.com/AndrywBarrera/OperativePages/simulador/models"
)

// engine agrupa los subsistemas de una corrida. Lo usa un único hilo, bajo el mutex del Driver.
type engine struct {
	config models.Config

	registry  *kernel.Registry
	scheduler *kernel.Scheduler
	memory    *memoria.Manager
	files     *filesystem.Controller
	cpu       *cpu.CPU
	metrics   *MetricsCollector

	// procesos que terminaron en el tick actual y todavía tienen marcos o archivos
	exited     []uint
	tickErrors []error
	errorCount int
}

// newEngine arma los subsistemas con la configuración ya validada y admite la carga.
func newEngine(config models.Config) (*engine, error) {
	e := &engine{config: config, metrics: &MetricsCollector{}}

	e.registry = kernel.NewRegistry()
	e.scheduler = kernel.NewScheduler(e.registry)
	if err := e.scheduler.Configure(config.SchedulerConfig); err != nil {
		return nil, err
	}

	e.memory = memoria.NewManager(e.registry)
	if err := e.memory.Configure(config.FrameCount, config.ReplacementAlgorithm); err != nil {
		return nil, err
	}

	files, err := filesystem.NewController(config.Files)
	if err != nil {
		return nil, err
	}
	e.files = files
	e.cpu = cpu.NewCPU(e.memory, e.files)

	e.scheduler.OnCompletion(func(pcb kernelModels.PCB) {
		e.exited = append(e.exited, pcb.PID)
	})

	for _, pcb := range e.workload() {
		if err := e.scheduler.Admit(pcb); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// workload usa la lista explícita de procesos si existe; si no, genera process_count procesos aleatorios.
func (e *engine) workload() []*kernelModels.PCB {
	if len(e.config.Processes) > 0 {
		return kernel.BuildProcesses(e.config.Processes)
	}
	return kernel.GenerateWorkload(kernel.WorkloadOptions{
		Count:           e.config.ProcessCount,
		Seed:            e.config.Seed,
		PageRange:       e.config.PageRange,
		Files:           e.config.Files,
		FileProbability: e.config.FileAccessProbability,
	})
}

// step procesa el tick now: planificador, ciclo de instrucción, penalidad por page fault, liberación diferida
// de los procesos terminados y métricas. Los errores internos se registran y no cortan el tick.
func (e *engine) step(now int) {
	e.tickErrors = nil

	pid, ran := e.scheduler.Tick(now)
	if ran {
		e.execute(pid, now)
	}

	for _, exited := range e.exited {
		e.memory.Release(exited)
		e.cpu.Forget(exited)
		if released := e.files.ReleaseAll(exited); len(released) > 0 {
			slog.Debug("Archivos liberados al finalizar", "PID", exited, "archivos", released)
		}
	}
	e.exited = e.exited[:0]

	e.metrics.Record(ran)
}

func (e *engine) execute(pid uint, now int) {
	pcb, found := e.registry.Get(pid)
	if !found {
		e.fail(fmt.Errorf("tick %d: PID %d ejecutó sin estar registrado", now, pid))
		return
	}

	cycle, err := e.cpu.Execute(pcb, now)
	if err != nil {
		e.fail(fmt.Errorf("tick %d: PID %d: %w", now, pid, err))
	}

	fault := cycle.Access != nil && !cycle.Access.Hit
	if fault && e.config.FaultPenalty > 0 && pcb.EstadoActual == kernelModels.EstadoExecuting {
		if err := e.scheduler.Block(pid, now+1+e.config.FaultPenalty, now+1); err != nil {
			e.fail(fmt.Errorf("tick %d: bloqueo de PID %d: %w", now, pid, err))
		}
	}
}

func (e *engine) fail(err error) {
	e.errorCount++
	e.tickErrors = append(e.tickErrors, err)
	slog.Warn("Error interno en el tick", "error", err)
}

func (e *engine) finished() bool {
	return e.registry.AllTerminated()
}
