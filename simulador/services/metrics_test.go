package services

import (
	"testing"

	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	memoriaModels "github.com/AndrywBarrera/OperativePages/memoria/models"
)

func finishedPCB(pid uint, arrival, completion, waiting int) kernelModels.PCB {
	pcb := kernelModels.NewPCB(pid, arrival, 1, 1)
	pcb.RemainingTime = 0
	pcb.EstadoActual = kernelModels.EstadoExit
	pcb.CompletionTime = completion
	pcb.WaitingTime = waiting
	return pcb.Clone()
}

func TestMetricsCollector_Collect(t *testing.T) {
	collector := &MetricsCollector{}
	for i := 0; i < 10; i++ {
		collector.Record(i != 4)
	}
	running := kernelModels.NewPCB(2, 0, 5, 1).Clone()
	processes := []kernelModels.PCB{finishedPCB(0, 0, 4, 2), finishedPCB(1, 2, 10, 4), running}

	metrics := collector.Collect(processes,
		MemoryStats{Counters: memoriaModels.Metrics{Hits: 3, Faults: 1, Evictions: 1}, Utilization: 75},
		FileStats{Granted: 2, Conflicts: 1})

	if metrics.CompletedProcesses != 2 || metrics.TotalProcesses != 3 {
		t.Errorf("Expected 2/3 completed, got %d/%d", metrics.CompletedProcesses, metrics.TotalProcesses)
	}
	if metrics.AverageWaiting != 3 || metrics.AverageTurnaround != 6 {
		t.Errorf("Expected averages 3 and 6, got %v and %v", metrics.AverageWaiting, metrics.AverageTurnaround)
	}
	if metrics.HitRatio != 0.75 || metrics.MemoryUtilization != 75 {
		t.Errorf("Expected hit ratio 0.75 and utilization 75, got %v and %v", metrics.HitRatio, metrics.MemoryUtilization)
	}
	if metrics.CPUUtilization != 90 || metrics.Throughput != 0.2 {
		t.Errorf("Expected 90%% CPU and throughput 0.2, got %v and %v", metrics.CPUUtilization, metrics.Throughput)
	}
	if metrics.FileConflicts != 1 || metrics.FileGranted != 2 {
		t.Errorf("Expected 1 conflict and 2 granted, got %d and %d", metrics.FileConflicts, metrics.FileGranted)
	}
}

func TestMetricsCollector_Empty(t *testing.T) {
	metrics := (&MetricsCollector{}).Collect(nil, MemoryStats{}, FileStats{})

	if metrics.AverageWaiting != 0 || metrics.HitRatio != 0 || metrics.Throughput != 0 || metrics.CPUUtilization != 0 {
		t.Errorf("Expected zero metrics without data, got %+v", metrics)
	}
}
