package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/AndrywBarrera/OperativePages/simulador/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// Pacer traduce el paso del tiempo real en ticks del Driver para el modo animado.
type Pacer struct {
	driver   *Driver
	interval time.Duration
}

// NewPacer crea un Pacer con el intervalo dado; si es cero usa el configurado en el driver.
func NewPacer(driver *Driver, interval time.Duration) *Pacer {
	return &Pacer{driver: driver, interval: interval}
}

// Run llama a Tick en cada período mientras el driver esté en RUNNING, espera mientras esté en PAUSED y
// termina cuando la corrida llega a un estado terminal o se cancela ctx.
func (p *Pacer) Run(ctx context.Context) models.DriverState {
	interval := p.interval
	if interval <= 0 {
		interval = p.driver.TickInterval()
	}
	if interval <= 0 {
		interval = time.Duration(models.DefaultTickIntervalMs) * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return p.driver.State()
		case <-ticker.C:
		}

		state := p.driver.State()
		switch {
		case state.Terminal():
			return state
		case state != models.StateRunning:
			continue
		}

		snapshot, err := p.driver.Tick()
		if err != nil {
			// la corrida se pausó o detuvo entre la consulta y el tick
			if !simerr.Is(err, simerr.InvalidState) {
				slog.Error("Error al avanzar la simulación", "error", err)
			}
			continue
		}
		if snapshot.State.Terminal() {
			return snapshot.State
		}
	}
}
