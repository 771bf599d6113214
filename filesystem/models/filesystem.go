package models

// Mode es el tipo de acceso pedido sobre un archivo.
type Mode string

const (
	ModeRead  Mode = "READ"
	ModeWrite Mode = "WRITE"
)

func (m Mode) Valid() bool {
	return m == ModeRead || m == ModeWrite
}

// Outcome es el resultado de un pedido de acceso.
type Outcome string

const (
	Granted  Outcome = "GRANTED"
	Conflict Outcome = "CONFLICT"
)

// DefaultFiles es el conjunto de archivos cuando la configuración no indica ninguno.
var DefaultFiles = []string{"archivo1.txt", "archivo2.txt", "archivo3.txt"}

// DefaultLogWindow es la cantidad de entradas recientes del registro que se muestran.
const DefaultLogWindow = 20

// File es un archivo simulado. Holder, Mode y Holds solo son válidos si Locked es true; Holds cuenta los
// pedidos otorgados al dueño que todavía no se liberaron.
type File struct {
	Name   string `json:"name"`
	Locked bool   `json:"locked"`
	Holder uint   `json:"holder"`
	Mode   Mode   `json:"mode,omitempty"`
	Holds  int    `json:"holds,omitempty"`
}

// AccessLogEntry registra un pedido de acceso. Sequence ordena los pedidos dentro de una corrida.
type AccessLogEntry struct {
	Tick     int     `json:"tick"`
	Sequence int     `json:"sequence"`
	PID      uint    `json:"pid"`
	File     string  `json:"file"`
	Mode     Mode    `json:"mode"`
	Outcome  Outcome `json:"outcome"`
}
