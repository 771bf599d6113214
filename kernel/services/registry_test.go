package services

import (
	"testing"

	"github.com/AndrywBarrera/OperativePages/kernel/models"
)

func TestRegistry_SnapshotIsDeepCopy(t *testing.T) {
	registry := NewRegistry()
	pcb := models.NewPCB(0, 0, 3, 1)
	pcb.Pages = []int{1, 2}
	if err := registry.Register(pcb); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	snapshot := registry.Snapshot()
	snapshot[0].Pages[0] = 99
	snapshot[0].ME[models.EstadoExit] = 5
	snapshot[0].RemainingTime = 0

	if pcb.Pages[0] != 1 || pcb.ME[models.EstadoExit] != 0 || pcb.RemainingTime != 3 {
		t.Errorf("Expected live PCB untouched by snapshot changes, got %+v", pcb)
	}
}

func TestRegistry_AllTerminated(t *testing.T) {
	registry := NewRegistry()
	if registry.AllTerminated() {
		t.Errorf("Expected an empty registry not to report all terminated")
	}

	pcb := models.NewPCB(0, 0, 1, 1)
	_ = registry.Register(pcb)
	if registry.AllTerminated() {
		t.Errorf("Expected NEW process to keep the registry running")
	}

	pcb.EstadoActual = models.EstadoExit
	if !registry.AllTerminated() {
		t.Errorf("Expected all terminated")
	}
	if len(registry.FindByState(models.EstadoExit)) != 1 {
		t.Errorf("Expected one process in EXIT")
	}
}

func TestRegistry_RejectsNegativeArrival(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(models.NewPCB(0, -1, 1, 1)); err == nil {
		t.Errorf("Expected error for negative arrival")
	}
	if registry.Exists(0) {
		t.Errorf("Expected rejected process not to be registered")
	}
}
