package services

import (
	"math/rand"

	"github.com/AndrywBarrera/OperativePages/kernel/models"
)

// Rangos de la carga aleatoria.
const (
	minBurst    = 3
	maxBurst    = 15
	minPriority = 1
	maxPriority = 10
	minPages    = 3
	maxPages    = 8
)

var fileModes = []string{"READ", "WRITE"}

// WorkloadOptions parametriza la generación de procesos aleatorios.
type WorkloadOptions struct {
	Count           int
	Seed            int64
	PageRange       int
	Files           []string
	FileProbability float64
}

// GenerateWorkload crea Count procesos que llegan en el tick 0 con ráfagas, prioridades, páginas y pedidos de
// archivo aleatorios. La misma semilla produce siempre la misma carga.
func GenerateWorkload(opts WorkloadOptions) []*models.PCB {
	random := rand.New(rand.NewSource(opts.Seed))
	pageRange := opts.PageRange
	if pageRange <= 0 {
		pageRange = 20
	}

	processes := make([]*models.PCB, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		burst := minBurst + random.Intn(maxBurst-minBurst+1)
		priority := minPriority + random.Intn(maxPriority-minPriority+1)
		pcb := models.NewPCB(uint(i), 0, burst, priority)

		pageCount := minPages + random.Intn(maxPages-minPages+1)
		for p := 0; p < pageCount; p++ {
			pcb.Pages = append(pcb.Pages, random.Intn(pageRange))
		}

		if len(opts.Files) > 0 {
			files := sampleFiles(random, opts.Files)
			for unit := 0; unit < burst; unit++ {
				if random.Float64() >= opts.FileProbability {
					continue
				}
				pcb.FileOps = append(pcb.FileOps, models.FileOp{
					At:   unit,
					File: files[random.Intn(len(files))],
					Mode: fileModes[random.Intn(len(fileModes))],
					Hold: 1,
				})
			}
		}
		processes = append(processes, pcb)
	}
	return processes
}

// BuildProcesses arma los PCB de una lista explícita; el PID es la posición en la lista.
func BuildProcesses(specs []models.ProcessSpec) []*models.PCB {
	processes := make([]*models.PCB, 0, len(specs))
	for i, spec := range specs {
		pcb := models.NewPCB(uint(i), spec.Arrival, spec.Burst, spec.Priority)
		pcb.Pages = append([]int(nil), spec.Pages...)
		pcb.FileOps = append([]models.FileOp(nil), spec.Files...)
		processes = append(processes, pcb)
	}
	return processes
}

// sampleFiles elige entre 1 y 2 archivos distintos del conjunto.
func sampleFiles(random *rand.Rand, files []string) []string {
	count := 1 + random.Intn(2)
	if count > len(files) {
		count = len(files)
	}
	perm := random.Perm(len(files))
	sample := make([]string, 0, count)
	for _, index := range perm[:count] {
		sample = append(sample, files[index])
	}
	return sample
}
