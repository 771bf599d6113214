package models

import (
	filesystemModels "github.com/AndrywBarrera/OperativePages/filesystem/models"
	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	memoriaModels "github.com/AndrywBarrera/OperativePages/memoria/models"
)

// Instruction es lo que hace un proceso durante una unidad de CPU: referenciar una página y liberar o pedir
// archivos. Page vale -1 si el proceso no tiene páginas.
type Instruction struct {
	PID      uint       `json:"pid"`
	Unit     int        `json:"unit"`
	Page     int        `json:"page"`
	Releases []FileStep `json:"releases,omitempty"`
	Requests []FileStep `json:"requests,omitempty"`
}

// FileStep es una operación de archivo del proceso junto con su posición en PCB.FileOps.
type FileStep struct {
	Index int `json:"index"`
	kernelModels.FileOp
}

// FileResult es el resultado de un pedido de archivo hecho en la unidad.
type FileResult struct {
	File    string                   `json:"file"`
	Mode    filesystemModels.Mode    `json:"mode"`
	Outcome filesystemModels.Outcome `json:"outcome"`
}

// CycleResult resume la ejecución de una instrucción.
type CycleResult struct {
	Instruction Instruction                 `json:"instruction"`
	Access      *memoriaModels.AccessResult `json:"access,omitempty"`
	Released    []string                    `json:"released,omitempty"`
	Files       []FileResult                `json:"files,omitempty"`
}
