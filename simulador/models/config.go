package models

import (
	"errors"
	"fmt"

	filesystemModels "github.com/AndrywBarrera/OperativePages/filesystem/models"
	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	memoriaModels "github.com/AndrywBarrera/OperativePages/memoria/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// Valores por defecto de la configuración.
const (
	DefaultPageRange       = 20
	DefaultTickIntervalMs  = 500
	DefaultPort            = 8080
	DefaultFileProbability = 0.2
)

// Config es el archivo de configuración del simulador.
type Config struct {
	kernelModels.SchedulerConfig

	ProcessCount int                        `json:"process_count"`
	Processes    []kernelModels.ProcessSpec `json:"processes"`

	FrameCount           int    `json:"frame_count"`
	ReplacementAlgorithm string `json:"replacement_algorithm"`
	PageRange            int    `json:"page_range"`
	FaultPenalty         int    `json:"fault_penalty"`

	Files                 []string `json:"files"`
	FileAccessProbability float64  `json:"file_access_probability"`
	Seed                  int64    `json:"seed"`

	TickIntervalMs int    `json:"tick_interval_ms"`
	LogLevel       string `json:"log_level"`
	LogPath        string `json:"log_path"`
	Port           int    `json:"port"`
	ObserverURL    string `json:"observer_url"`
	LogWindow      int    `json:"log_window"`
}

// DefaultConfig es la configuración de la pantalla inicial: RR con quantum 2, 5 procesos aleatorios y 8 marcos FIFO.
func DefaultConfig() Config {
	return Config{
		SchedulerConfig: kernelModels.SchedulerConfig{
			Algorithm:     kernelModels.AlgorithmRR,
			Quantum:       kernelModels.DefaultQuantum,
			PriorityOrder: kernelModels.PriorityLowestFirst,
		},
		ProcessCount:          5,
		FrameCount:            8,
		ReplacementAlgorithm:  memoriaModels.ReplacementFIFO,
		PageRange:             DefaultPageRange,
		Files:                 append([]string(nil), filesystemModels.DefaultFiles...),
		FileAccessProbability: DefaultFileProbability,
		TickIntervalMs:        DefaultTickIntervalMs,
		LogLevel:              "INFO",
		Port:                  DefaultPort,
		LogWindow:             filesystemModels.DefaultLogWindow,
	}
}

// WithDefaults completa los campos opcionales vacíos. Los campos obligatorios (frame_count y la carga) no se
// completan para que Validate los rechace.
func (c Config) WithDefaults() Config {
	if c.Algorithm == "" {
		c.Algorithm = kernelModels.AlgorithmRR
	}
	if c.Algorithm == kernelModels.AlgorithmRR && c.Quantum == 0 {
		c.Quantum = kernelModels.DefaultQuantum
	}
	if c.PriorityOrder == "" {
		c.PriorityOrder = kernelModels.PriorityLowestFirst
	}
	if c.ReplacementAlgorithm == "" {
		c.ReplacementAlgorithm = memoriaModels.ReplacementFIFO
	}
	if c.PageRange == 0 {
		c.PageRange = DefaultPageRange
	}
	if len(c.Files) == 0 {
		c.Files = append([]string(nil), filesystemModels.DefaultFiles...)
	}
	if c.TickIntervalMs == 0 {
		c.TickIntervalMs = DefaultTickIntervalMs
	}
	if c.LogWindow == 0 {
		c.LogWindow = filesystemModels.DefaultLogWindow
	}
	return c
}

// Validate revisa todos los campos y devuelve un ConfigurationError con cada problema encontrado.
func (c Config) Validate() error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	switch c.Algorithm {
	case kernelModels.AlgorithmRR:
		if c.Quantum <= 0 {
			add("quantum debe ser mayor a cero, se recibió %d", c.Quantum)
		}
	case kernelModels.AlgorithmSJF, kernelModels.AlgorithmPriority:
	default:
		add("algoritmo de planificación desconocido: %q", c.Algorithm)
	}
	if c.Quantum < 0 {
		add("quantum negativo: %d", c.Quantum)
	}
	if c.PriorityOrder != kernelModels.PriorityLowestFirst && c.PriorityOrder != kernelModels.PriorityHighestFirst {
		add("priority_order desconocido: %q", c.PriorityOrder)
	}

	if len(c.Processes) == 0 && c.ProcessCount <= 0 {
		add("process_count debe ser mayor a cero si no se listan procesos, se recibió %d", c.ProcessCount)
	}
	if c.FrameCount <= 0 {
		add("frame_count debe ser mayor a cero, se recibió %d", c.FrameCount)
	}
	if c.ReplacementAlgorithm != memoriaModels.ReplacementFIFO && c.ReplacementAlgorithm != memoriaModels.ReplacementLRU {
		add("algoritmo de reemplazo desconocido: %q", c.ReplacementAlgorithm)
	}
	if c.PageRange < 0 {
		add("page_range negativo: %d", c.PageRange)
	}
	if c.FaultPenalty < 0 {
		add("fault_penalty negativo: %d", c.FaultPenalty)
	}
	if c.FileAccessProbability < 0 || c.FileAccessProbability > 1 {
		add("file_access_probability fuera de [0, 1]: %v", c.FileAccessProbability)
	}
	if c.TickIntervalMs < 0 {
		add("tick_interval_ms negativo: %d", c.TickIntervalMs)
	}
	if c.LogWindow < 0 {
		add("log_window negativo: %d", c.LogWindow)
	}

	files := make(map[string]bool, len(c.Files))
	for _, name := range c.Files {
		files[name] = true
	}
	for i, spec := range c.Processes {
		problems = append(problems, validateProcess(i, spec, files)...)
	}

	if len(problems) == 0 {
		return nil
	}
	return simerr.Wrap(simerr.ConfigurationError, "simulador.Validate", errors.Join(problems...))
}

func validateProcess(pid int, spec kernelModels.ProcessSpec, files map[string]bool) []error {
	var problems []error
	if spec.Burst <= 0 {
		problems = append(problems, fmt.Errorf("proceso %d: ráfaga debe ser mayor a cero, se recibió %d", pid, spec.Burst))
	}
	if spec.Arrival < 0 {
		problems = append(problems, fmt.Errorf("proceso %d: llegada negativa %d", pid, spec.Arrival))
	}
	for _, page := range spec.Pages {
		if page < 0 {
			problems = append(problems, fmt.Errorf("proceso %d: página negativa %d", pid, page))
		}
	}
	for _, op := range spec.Files {
		if !files[op.File] {
			problems = append(problems, fmt.Errorf("proceso %d: archivo desconocido %q", pid, op.File))
		}
		if !filesystemModels.Mode(op.Mode).Valid() {
			problems = append(problems, fmt.Errorf("proceso %d: modo inválido %q", pid, op.Mode))
		}
		if op.At < 0 || (spec.Burst > 0 && op.At >= spec.Burst) {
			problems = append(problems, fmt.Errorf("proceso %d: unidad %d fuera de la ráfaga", pid, op.At))
		}
	}
	return problems
}
