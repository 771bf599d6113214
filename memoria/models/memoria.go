package models

// Algoritmos de reemplazo de páginas.
const (
	ReplacementFIFO = "FIFO"
	ReplacementLRU  = "LRU"
)

// PageKey identifica una página virtual de un proceso.
type PageKey struct {
	PID  uint `json:"pid"`
	Page int  `json:"page"`
}

// PageTableEntry es la entrada de la tabla de páginas de (PID, página).
// Frame solo es válido si Presence es true.
type PageTableEntry struct {
	PID        uint `json:"pid"`
	Page       int  `json:"page"`
	Presence   bool `json:"presence"`
	Frame      int  `json:"frame"`
	LastAccess int  `json:"last_access"`
	LoadTime   int  `json:"load_time"`
}

// Frame es un marco de la memoria física simulada. Owner es nil si está libre.
type Frame struct {
	Index      int      `json:"index"`
	Owner      *PageKey `json:"owner,omitempty"`
	LastAccess int      `json:"last_access"`
	LoadTime   int      `json:"load_time"`
}

func (f Frame) Free() bool {
	return f.Owner == nil
}

// AccessResult describe el resultado de un acceso a memoria.
type AccessResult struct {
	PID    uint     `json:"pid"`
	Page   int      `json:"page"`
	Frame  int      `json:"frame"`
	Hit    bool     `json:"hit"`
	Victim *PageKey `json:"victim,omitempty"`
}

// Metrics son los contadores de paginación, globales o por proceso.
type Metrics struct {
	Hits      int `json:"hits"`
	Faults    int `json:"faults"`
	Evictions int `json:"evictions"`
}
