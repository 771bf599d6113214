package models

// Estado es el estado del ciclo de vida de un proceso simulado.
type Estado string

const (
	EstadoNew       Estado = "NEW"
	EstadoReady     Estado = "READY"
	EstadoExecuting Estado = "EXEC"
	EstadoBlocked   Estado = "BLOCKED"
	EstadoExit      Estado = "EXIT"
)

// FileOp es un pedido de archivo que el proceso hace al ejecutar su unidad número At (base 0).
// Si se concede, el lock se mantiene durante Hold unidades de ejecución del proceso.
type FileOp struct {
	At   int    `json:"at"`
	File string `json:"file"`
	Mode string `json:"mode"`
	Hold int    `json:"hold"`
}

// PCB es el bloque de control de un proceso simulado. Solo el Registry guarda el original;
// hacia afuera siempre se entregan copias hechas con Clone.
type PCB struct {
	PID            uint     `json:"pid"`
	ArrivalTime    int      `json:"arrival_time"`
	BurstTime      int      `json:"burst_time"`
	RemainingTime  int      `json:"remaining_time"`
	Priority       int      `json:"priority"`
	EstadoActual   Estado   `json:"estado"`
	WaitingTime    int      `json:"waiting_time"`
	StartTime      int      `json:"start_time"`
	CompletionTime int      `json:"completion_time"`
	BlockedUntil   int      `json:"blocked_until"`
	UltimoCambio   int      `json:"ultimo_cambio"`
	Pages          []int    `json:"pages"`
	FileOps        []FileOp `json:"file_ops"`

	// Métricas por estado: cantidad de veces que entró (ME) y ticks que pasó en él (MT).
	ME map[Estado]int `json:"me"`
	MT map[Estado]int `json:"mt"`
}

// NewPCB arma un proceso en NEW con su ráfaga completa pendiente.
func NewPCB(pid uint, arrival, burst, priority int) *PCB {
	return &PCB{
		PID:            pid,
		ArrivalTime:    arrival,
		BurstTime:      burst,
		RemainingTime:  burst,
		Priority:       priority,
		EstadoActual:   EstadoNew,
		StartTime:      -1,
		CompletionTime: -1,
		UltimoCambio:   arrival,
		ME:             map[Estado]int{EstadoNew: 1},
		MT:             make(map[Estado]int),
	}
}

// Executed es la cantidad de unidades de ráfaga ya ejecutadas.
func (pcb *PCB) Executed() int {
	return pcb.BurstTime - pcb.RemainingTime
}

// Turnaround devuelve completion - arrival, o -1 si el proceso no terminó.
func (pcb *PCB) Turnaround() int {
	if pcb.EstadoActual != EstadoExit {
		return -1
	}
	return pcb.CompletionTime - pcb.ArrivalTime
}

// Clone hace una copia profunda del PCB.
func (pcb *PCB) Clone() PCB {
	clone := *pcb
	clone.Pages = append([]int(nil), pcb.Pages...)
	clone.FileOps = append([]FileOp(nil), pcb.FileOps...)
	clone.ME = make(map[Estado]int, len(pcb.ME))
	for estado, count := range pcb.ME {
		clone.ME[estado] = count
	}
	clone.MT = make(map[Estado]int, len(pcb.MT))
	for estado, ticks := range pcb.MT {
		clone.MT[estado] = ticks
	}
	return clone
}

// ProcessSpec describe un proceso en el archivo de configuración. El PID lo asigna el simulador
// según el orden de la lista.
type ProcessSpec struct {
	Arrival  int      `json:"arrival"`
	Burst    int      `json:"burst"`
	Priority int      `json:"priority"`
	Pages    []int    `json:"pages"`
	Files    []FileOp `json:"files"`
}
