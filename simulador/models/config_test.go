package models

import (
	"strings"
	"testing"

	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestWithDefaults_FillsOptionalFields(t *testing.T) {
	config := Config{ProcessCount: 2, FrameCount: 4}.WithDefaults()

	if config.Algorithm != kernelModels.AlgorithmRR || config.Quantum != kernelModels.DefaultQuantum {
		t.Errorf("Expected RR with quantum %d, got %s with %d", kernelModels.DefaultQuantum, config.Algorithm, config.Quantum)
	}
	if config.ReplacementAlgorithm != "FIFO" || config.PriorityOrder != kernelModels.PriorityLowestFirst {
		t.Errorf("Expected FIFO and LOWEST_FIRST, got %s and %s", config.ReplacementAlgorithm, config.PriorityOrder)
	}
	if len(config.Files) != 3 || config.LogWindow != 20 || config.PageRange != DefaultPageRange {
		t.Errorf("Expected default files, window and page range, got %+v", config)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"algoritmo desconocido", func(c *Config) { c.Algorithm = "FCFS" }, "FCFS"},
		{"quantum cero", func(c *Config) { c.Quantum = 0 }, "quantum"},
		{"sin marcos", func(c *Config) { c.FrameCount = 0 }, "frame_count"},
		{"sin procesos", func(c *Config) { c.ProcessCount = 0 }, "process_count"},
		{"reemplazo desconocido", func(c *Config) { c.ReplacementAlgorithm = "CLOCK" }, "CLOCK"},
		{"orden desconocido", func(c *Config) { c.PriorityOrder = "RANDOM" }, "RANDOM"},
		{"penalidad negativa", func(c *Config) { c.FaultPenalty = -1 }, "fault_penalty"},
		{"probabilidad fuera de rango", func(c *Config) { c.FileAccessProbability = 1.5 }, "file_access_probability"},
		{"ráfaga inválida", func(c *Config) {
			c.Processes = []kernelModels.ProcessSpec{{Arrival: 0, Burst: 0}}
		}, "ráfaga"},
		{"archivo desconocido", func(c *Config) {
			c.Processes = []kernelModels.ProcessSpec{{Burst: 3, Files: []kernelModels.FileOp{{At: 0, File: "x.txt", Mode: "READ"}}}}
		}, "x.txt"},
		{"unidad fuera de la ráfaga", func(c *Config) {
			c.Processes = []kernelModels.ProcessSpec{{Burst: 3, Files: []kernelModels.FileOp{{At: 3, File: "archivo1.txt", Mode: "READ"}}}}
		}, "fuera de la ráfaga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			err := config.Validate()
			if !simerr.Is(err, simerr.ConfigurationError) {
				t.Fatalf("Expected ConfigurationError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error to mention %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSnapshotClone_IsDeep(t *testing.T) {
	pcb := kernelModels.NewPCB(1, 0, 3, 1)
	pcb.Pages = []int{1, 2}
	snapshot := Snapshot{
		ReadyQueue: []uint{1},
		Processes:  []kernelModels.PCB{pcb.Clone()},
	}

	clone := snapshot.Clone()
	clone.ReadyQueue[0] = 9
	clone.Processes[0].Pages[0] = 9
	clone.Processes[0].ME[kernelModels.EstadoNew] = 9

	if snapshot.ReadyQueue[0] != 1 || snapshot.Processes[0].Pages[0] != 1 || snapshot.Processes[0].ME[kernelModels.EstadoNew] != 1 {
		t.Errorf("Expected original snapshot to be unaffected, got %+v", snapshot)
	}
}
