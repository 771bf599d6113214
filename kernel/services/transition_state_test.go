package services

import (
	"testing"

	"github.com/AndrywBarrera/OperativePages/kernel/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

func TestTransitionState_UpdatesMetrics(t *testing.T) {
	pcb := models.NewPCB(1, 2, 4, 1)

	if err := TransitionState(pcb, models.EstadoReady, 2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := TransitionState(pcb, models.EstadoExecuting, 5); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if pcb.MT[models.EstadoReady] != 3 {
		t.Errorf("Expected 3 ticks in READY, got %d", pcb.MT[models.EstadoReady])
	}
	if pcb.ME[models.EstadoExecuting] != 1 || pcb.ME[models.EstadoReady] != 1 {
		t.Errorf("Expected one entry in READY and EXEC, got %v", pcb.ME)
	}
	if pcb.UltimoCambio != 5 {
		t.Errorf("Expected last change at 5, got %d", pcb.UltimoCambio)
	}
}

func TestTransitionState_ExitIsTerminal(t *testing.T) {
	pcb := models.NewPCB(1, 0, 1, 1)
	_ = TransitionState(pcb, models.EstadoReady, 0)
	_ = TransitionState(pcb, models.EstadoExecuting, 0)
	if err := TransitionState(pcb, models.EstadoExit, 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, next := range []models.Estado{models.EstadoReady, models.EstadoExecuting, models.EstadoBlocked, models.EstadoNew} {
		if err := TransitionState(pcb, next, 2); !simerr.Is(err, simerr.InvalidState) {
			t.Errorf("Expected InvalidState leaving EXIT to %s, got %v", next, err)
		}
	}
	if pcb.EstadoActual != models.EstadoExit {
		t.Errorf("Expected EXIT to remain, got %s", pcb.EstadoActual)
	}
}

func TestTransitionState_RejectsSkippingReady(t *testing.T) {
	pcb := models.NewPCB(3, 0, 1, 1)

	if err := TransitionState(pcb, models.EstadoExecuting, 0); !simerr.Is(err, simerr.InvalidState) {
		t.Errorf("Expected InvalidState for NEW -> EXEC, got %v", err)
	}
}
