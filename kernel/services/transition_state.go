package services

import (
	"fmt"
	"log/slog"

	"github.com/AndrywBarrera/OperativePages/kernel/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// validTransitions son los cambios de estado que admite el ciclo de vida del proceso.
var validTransitions = map[models.Estado][]models.Estado{
	models.EstadoNew:       {models.EstadoReady},
	models.EstadoReady:     {models.EstadoExecuting},
	models.EstadoExecuting: {models.EstadoReady, models.EstadoBlocked, models.EstadoExit},
	models.EstadoBlocked:   {models.EstadoReady},
	models.EstadoExit:      {},
}

// TransitionState cambia el estado de un proceso en el tick now, actualiza sus métricas ME/MT y loguea el cambio.
// EXIT es terminal: cualquier transición que salga de EXIT devuelve InvalidState.
func TransitionState(pcb *models.PCB, newState models.Estado, now int) error {
	oldState := pcb.EstadoActual
	if oldState == newState {
		return nil
	}

	if !canTransition(oldState, newState) {
		return simerr.New(simerr.InvalidState, "kernel.TransitionState",
			"PID %d no puede pasar de %s a %s", pcb.PID, oldState, newState)
	}

	if pcb.ME == nil {
		pcb.ME = make(map[models.Estado]int)
	}
	if pcb.MT == nil {
		pcb.MT = make(map[models.Estado]int)
	}

	if now > pcb.UltimoCambio {
		pcb.MT[oldState] += now - pcb.UltimoCambio
	}
	pcb.ME[newState]++
	pcb.EstadoActual = newState
	pcb.UltimoCambio = now

	slog.Info(fmt.Sprintf("## (%d) Pasa del estado %s al estado %s", pcb.PID, oldState, newState), "tick", now)
	return nil
}

func canTransition(from, to models.Estado) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
