package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	cpuModels "github.com/AndrywBarrera/OperativePages/cpu/models"
	filesystemModels "github.com/AndrywBarrera/OperativePages/filesystem/models"
	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	memoriaModels "github.com/AndrywBarrera/OperativePages/memoria/models"
)

// MemoryUnit resuelve las referencias a páginas.
type MemoryUnit interface {
	Access(pid uint, page int, now int) (memoriaModels.AccessResult, error)
}

// FileUnit arbitra los pedidos de archivos.
type FileUnit interface {
	RequestAccess(now int, pid uint, name string, mode filesystemModels.Mode) (filesystemModels.Outcome, error)
	Release(pid uint, name string) bool
}

// heldOp identifica un pedido de archivo otorgado que todavía no se liberó.
type heldOp struct {
	pid   uint
	index int
}

// CPU ejecuta el ciclo de instrucción de la unidad que el planificador acaba de correr. Recuerda qué pedidos
// fueron otorgados para liberar solo esos al cumplirse su Hold.
type CPU struct {
	memory MemoryUnit
	files  FileUnit

	mu   sync.Mutex
	held map[heldOp]bool
}

func NewCPU(memory MemoryUnit, files FileUnit) *CPU {
	return &CPU{memory: memory, files: files, held: make(map[heldOp]bool)}
}

// Fetch arma la instrucción de la unidad unit (empezando en 0) del proceso. La página es la de la posición
// unit de la cadena de referencias, recorrida en forma circular. Los archivos pedidos en una unidad se liberan
// Hold unidades después.
func Fetch(pcb *kernelModels.PCB, unit int) cpuModels.Instruction {
	instruction := cpuModels.Instruction{PID: pcb.PID, Unit: unit, Page: -1}
	if len(pcb.Pages) > 0 {
		instruction.Page = pcb.Pages[unit%len(pcb.Pages)]
	}
	for index, op := range pcb.FileOps {
		hold := op.Hold
		if hold <= 0 {
			hold = 1
		}
		if op.At+hold == unit {
			instruction.Releases = append(instruction.Releases, cpuModels.FileStep{Index: index, FileOp: op})
		}
		if op.At == unit {
			instruction.Requests = append(instruction.Requests, cpuModels.FileStep{Index: index, FileOp: op})
		}
	}
	return instruction
}

// Execute corre la instrucción de la última unidad ejecutada por pcb en el tick now: primero el acceso a
// memoria, después las liberaciones de los pedidos otorgados y por último los pedidos de archivos en el orden
// del proceso. Un paso que falla no impide los siguientes; los errores se devuelven juntos.
func (c *CPU) Execute(pcb *kernelModels.PCB, now int) (cpuModels.CycleResult, error) {
	unit := pcb.Executed() - 1
	instruction := Fetch(pcb, unit)
	result := cpuModels.CycleResult{Instruction: instruction}
	slog.Debug(fmt.Sprintf("## PID: %d - FETCH - Unidad: %d - Página: %d", pcb.PID, unit, instruction.Page))

	var errs []error
	if instruction.Page >= 0 && c.memory != nil {
		access, err := c.memory.Access(pcb.PID, instruction.Page, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("acceso a página %d: %w", instruction.Page, err))
		} else {
			result.Access = &access
		}
	}

	if c.files == nil {
		return result, errors.Join(errs...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, step := range instruction.Releases {
		key := heldOp{pid: pcb.PID, index: step.Index}
		if !c.held[key] {
			continue
		}
		delete(c.held, key)
		if c.files.Release(pcb.PID, step.File) {
			result.Released = append(result.Released, step.File)
		}
	}
	for _, step := range instruction.Requests {
		mode := filesystemModels.Mode(step.Mode)
		outcome, err := c.files.RequestAccess(now, pcb.PID, step.File, mode)
		if err != nil {
			errs = append(errs, fmt.Errorf("pedido de %s: %w", step.File, err))
			continue
		}
		if outcome == filesystemModels.Granted {
			c.held[heldOp{pid: pcb.PID, index: step.Index}] = true
		}
		result.Files = append(result.Files, cpuModels.FileResult{File: step.File, Mode: mode, Outcome: outcome})
	}
	return result, errors.Join(errs...)
}

// Forget descarta los pedidos pendientes de liberar de pid. Se llama cuando el proceso termina y sus archivos
// se liberan todos juntos.
func (c *CPU) Forget(pid uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.held {
		if key.pid == pid {
			delete(c.held, key)
		}
	}
}
