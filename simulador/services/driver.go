package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AndrywBarrera/OperativePages/simulador/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// Driver es el reloj de la simulación. Serializa comandos y ticks con un único mutex, por lo que un tick es
// atómico respecto de la emisión de snapshots y de Stop.
type Driver struct {
	mu sync.Mutex

	state     models.DriverState
	config    *models.Config
	runID     uuid.UUID
	engine    *engine
	now       int
	observers []models.Observer
	last      models.Snapshot
}

func NewDriver(observers ...models.Observer) *Driver {
	return &Driver{state: models.StateIdle, observers: observers}
}

// AddObserver suma un observador; recibe los snapshots a partir del próximo tick.
func (d *Driver) AddObserver(observer models.Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, observer)
}

// Configure valida la configuración y arma un motor nuevo con un run id nuevo. Solo se acepta en IDLE o
// cuando la corrida anterior terminó; el driver queda en IDLE.
func (d *Driver) Configure(config models.Config) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == models.StateRunning || d.state == models.StatePaused {
		return simerr.New(simerr.InvalidState, "simulador.Configure", "no se puede configurar en estado %s", d.state)
	}

	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return err
	}
	built, err := newEngine(config)
	if err != nil {
		return simerr.Wrap(simerr.ConfigurationError, "simulador.Configure", err)
	}

	d.config = &config
	d.engine = built
	d.runID = uuid.New()
	d.now = 0
	d.state = models.StateIdle
	d.last = d.snapshot()

	slog.Info(fmt.Sprintf("## Simulación configurada - Corrida: %s", d.runID),
		"algoritmo", built.scheduler.Policy(), "quantum", config.Quantum, "marcos", config.FrameCount,
		"reemplazo", config.ReplacementAlgorithm, "procesos", built.registry.Count())
	return nil
}

// Start arranca la corrida configurada.
func (d *Driver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != models.StateIdle {
		return simerr.New(simerr.InvalidState, "simulador.Start", "no se puede iniciar en estado %s", d.state)
	}
	if d.engine == nil || d.engine.registry.Count() == 0 {
		return simerr.New(simerr.ConfigurationError, "simulador.Start", "no hay una simulación configurada con procesos")
	}
	d.changeState(models.StateRunning)
	return nil
}

func (d *Driver) Pause() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != models.StateRunning {
		return simerr.New(simerr.InvalidState, "simulador.Pause", "no se puede pausar en estado %s", d.state)
	}
	d.changeState(models.StatePaused)
	return nil
}

func (d *Driver) Resume() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != models.StatePaused {
		return simerr.New(simerr.InvalidState, "simulador.Resume", "no se puede reanudar en estado %s", d.state)
	}
	d.changeState(models.StateRunning)
	return nil
}

// Stop termina la corrida desde cualquier estado no terminal.
func (d *Driver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Terminal() {
		return simerr.New(simerr.InvalidState, "simulador.Stop", "la simulación ya terminó (%s)", d.state)
	}
	d.changeState(models.StateStopped)
	d.last.State = d.state
	return nil
}

// Tick avanza la simulación una unidad de tiempo y devuelve el snapshot resultante. Solo es válido en RUNNING.
func (d *Driver) Tick() (models.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != models.StateRunning {
		return models.Snapshot{}, simerr.New(simerr.InvalidState, "simulador.Tick", "no se puede avanzar en estado %s", d.state)
	}
	return d.tick(), nil
}

// RunToCompletion ejecuta ticks hasta que terminan todos los procesos o se alcanzan maxTicks.
// Si se agotan los ticks la corrida queda en RUNNING y se devuelve un ResourceExhausted.
func (d *Driver) RunToCompletion(maxTicks int) (models.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != models.StateRunning {
		return models.Snapshot{}, simerr.New(simerr.InvalidState, "simulador.RunToCompletion",
			"no se puede ejecutar en estado %s", d.state)
	}
	for i := 0; i < maxTicks; i++ {
		snapshot := d.tick()
		if snapshot.State == models.StateCompleted {
			return snapshot, nil
		}
	}
	return d.last.Clone(), simerr.New(simerr.ResourceExhausted, "simulador.RunToCompletion",
		"la simulación no terminó en %d ticks", maxTicks)
}

// tick corre el pipeline del tick con el mutex tomado y notifica a los observadores.
func (d *Driver) tick() models.Snapshot {
	d.engine.step(d.now)
	d.now++

	completed := d.engine.finished()
	if completed {
		d.changeState(models.StateCompleted)
	}

	d.last = d.snapshot()
	for _, observer := range d.observers {
		observer.OnSnapshot(d.last.Clone())
	}
	if completed {
		slog.Info(fmt.Sprintf("## Simulación finalizada - Corrida: %s - Ticks: %d", d.runID, d.now))
		for _, observer := range d.observers {
			observer.OnCompleted(d.last.Clone())
		}
	}
	return d.last.Clone()
}

func (d *Driver) changeState(state models.DriverState) {
	slog.Debug(fmt.Sprintf("## Simulador pasa del estado %s al estado %s", d.state, state), "tick", d.now)
	d.state = state
}

// snapshot arma una copia del estado del motor.
func (d *Driver) snapshot() models.Snapshot {
	e := d.engine
	snapshot := models.Snapshot{
		RunID:       d.runID.String(),
		Tick:        d.now,
		State:       d.state,
		Algorithm:   e.scheduler.Policy(),
		Replacement: e.memory.Algorithm(),
		RunningPID:  -1,
		ReadyQueue:  e.scheduler.ReadyQueue(),
		Processes:   e.registry.Snapshot(),
		Frames:      e.memory.Frames(),
		Files:       e.files.Files(),
		AccessLog:   e.files.Recent(d.config.LogWindow),
	}
	if pid, running := e.scheduler.Running(); running {
		snapshot.RunningPID = int(pid)
	}
	for _, err := range e.tickErrors {
		snapshot.Errors = append(snapshot.Errors, err.Error())
	}

	snapshot.Metrics = e.metrics.Collect(snapshot.Processes,
		MemoryStats{Counters: e.memory.Metrics(), Utilization: e.memory.Utilization()},
		FileStats{Granted: e.files.Granted(), Conflicts: e.files.Conflicts()})
	snapshot.Metrics.TickErrors = e.errorCount
	return snapshot
}

// Snapshot devuelve una copia del último snapshot, o false si no hay nada configurado.
func (d *Driver) Snapshot() (models.Snapshot, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine == nil {
		return models.Snapshot{}, false
	}
	snapshot := d.last.Clone()
	snapshot.State = d.state
	return snapshot, true
}

func (d *Driver) State() models.DriverState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// TickInterval es el período del reloj configurado para el modo animado.
func (d *Driver) TickInterval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.config == nil {
		return time.Duration(models.DefaultTickIntervalMs) * time.Millisecond
	}
	return time.Duration(d.config.TickIntervalMs) * time.Millisecond
}
