package services

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/AndrywBarrera/OperativePages/memoria/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// ProcessDirectory responde si un PID existe en el registro de procesos.
type ProcessDirectory interface {
	Exists(pid uint) bool
}

// Manager administra la tabla de páginas y el pool de marcos de la memoria simulada.
type Manager struct {
	memoryLock sync.Mutex

	directory ProcessDirectory
	algorithm string
	frames    []models.Frame
	pageTable map[models.PageKey]*models.PageTableEntry

	metrics        models.Metrics
	processMetrics map[uint]*models.Metrics
}

func NewManager(directory ProcessDirectory) *Manager {
	return &Manager{
		directory:      directory,
		pageTable:      make(map[models.PageKey]*models.PageTableEntry),
		processMetrics: make(map[uint]*models.Metrics),
	}
}

// Configure fija la cantidad de marcos y el algoritmo de reemplazo. Descarta todo el estado anterior.
func (m *Manager) Configure(frameCount int, algorithm string) error {
	if frameCount <= 0 {
		return simerr.New(simerr.ConfigurationError, "memoria.Configure",
			"la cantidad de marcos debe ser mayor a cero, se recibió %d", frameCount)
	}
	if algorithm != models.ReplacementFIFO && algorithm != models.ReplacementLRU {
		return simerr.New(simerr.ConfigurationError, "memoria.Configure",
			"algoritmo de reemplazo desconocido: %q", algorithm)
	}

	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()

	m.algorithm = algorithm
	m.frames = make([]models.Frame, frameCount)
	for i := range m.frames {
		m.frames[i] = models.Frame{Index: i}
	}
	m.pageTable = make(map[models.PageKey]*models.PageTableEntry)
	m.processMetrics = make(map[uint]*models.Metrics)
	m.metrics = models.Metrics{}

	slog.Debug("Memoria configurada", "marcos", frameCount, "algoritmo", algorithm)
	return nil
}

// Access resuelve la referencia a la página page del proceso pid en el tick now.
// Si la página no está residente se produce un page fault: se usa el marco libre de menor índice o,
// si no hay, se reemplaza la víctima que elija el algoritmo.
func (m *Manager) Access(pid uint, page int, now int) (models.AccessResult, error) {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()

	if len(m.frames) == 0 {
		return models.AccessResult{}, simerr.New(simerr.ConfigurationError, "memoria.Access", "memoria sin marcos configurados")
	}
	if m.directory != nil && !m.directory.Exists(pid) {
		return models.AccessResult{}, simerr.New(simerr.UnknownProcess, "memoria.Access", "PID %d no registrado", pid)
	}
	if page < 0 {
		return models.AccessResult{}, simerr.New(simerr.InvalidRequest, "memoria.Access",
			"página inválida %d para PID %d", page, pid)
	}

	key := models.PageKey{PID: pid, Page: page}
	metrics := m.metricsOf(pid)
	entry, exists := m.pageTable[key]

	if exists && entry.Presence {
		entry.LastAccess = now
		m.frames[entry.Frame].LastAccess = now
		m.metrics.Hits++
		metrics.Hits++
		slog.Debug(fmt.Sprintf("## PID: %d - Acceso a página %d - Marco: %d", pid, page, entry.Frame))
		return models.AccessResult{PID: pid, Page: page, Frame: entry.Frame, Hit: true}, nil
	}

	m.metrics.Faults++
	metrics.Faults++
	slog.Info(fmt.Sprintf("## PID: %d - Page Fault - Página: %d", pid, page))

	result := models.AccessResult{PID: pid, Page: page}
	frame := m.allocateFrame()
	if frame == -1 {
		frame = m.selectVictim()
		victim := *m.frames[frame].Owner
		m.evict(frame, victim)
		result.Victim = &victim
	}

	if !exists {
		entry = &models.PageTableEntry{PID: pid, Page: page}
		m.pageTable[key] = entry
	}
	entry.Presence = true
	entry.Frame = frame
	entry.LoadTime = now
	entry.LastAccess = now

	owner := key
	m.frames[frame] = models.Frame{Index: frame, Owner: &owner, LoadTime: now, LastAccess: now}

	result.Frame = frame
	return result, nil
}

// allocateFrame devuelve el marco libre de menor índice o -1 si la memoria está llena.
func (m *Manager) allocateFrame() int {
	for i := range m.frames {
		if m.frames[i].Free() {
			return i
		}
	}
	return -1
}

func (m *Manager) evict(frame int, victim models.PageKey) {
	if entry, ok := m.pageTable[victim]; ok {
		entry.Presence = false
		entry.Frame = -1
	}
	m.frames[frame].Owner = nil
	m.metrics.Evictions++
	m.metricsOf(victim.PID).Evictions++
	slog.Info(fmt.Sprintf("## PID: %d - Reemplazo de página - Víctima: Página %d - Marco: %d - Algoritmo: %s",
		victim.PID, victim.Page, frame, m.algorithm))
}

func (m *Manager) metricsOf(pid uint) *models.Metrics {
	metrics, ok := m.processMetrics[pid]
	if !ok {
		metrics = &models.Metrics{}
		m.processMetrics[pid] = metrics
	}
	return metrics
}

// entry devuelve una copia de la entrada de la tabla de páginas de (pid, page).
func (m *Manager) entry(pid uint, page int) (models.PageTableEntry, bool) {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()

	entry, ok := m.pageTable[models.PageKey{PID: pid, Page: page}]
	if !ok {
		return models.PageTableEntry{}, false
	}
	return *entry, true
}

// Frames devuelve una copia del estado de cada marco.
func (m *Manager) Frames() []models.Frame {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()

	frames := make([]models.Frame, len(m.frames))
	for i, frame := range m.frames {
		frames[i] = frame
		if frame.Owner != nil {
			owner := *frame.Owner
			frames[i].Owner = &owner
		}
	}
	return frames
}

func (m *Manager) FrameCount() int {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()
	return len(m.frames)
}

func (m *Manager) Algorithm() string {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()
	return m.algorithm
}

// ResidentCount es la cantidad de páginas cargadas en memoria.
func (m *Manager) ResidentCount() int {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()
	return m.residentCount()
}

func (m *Manager) residentCount() int {
	used := 0
	for _, frame := range m.frames {
		if !frame.Free() {
			used++
		}
	}
	return used
}

// Utilization es el porcentaje de marcos ocupados.
func (m *Manager) Utilization() float64 {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()

	if len(m.frames) == 0 {
		return 0
	}
	return float64(m.residentCount()) * 100 / float64(len(m.frames))
}

func (m *Manager) Metrics() models.Metrics {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()
	return m.metrics
}

// ProcessMetrics devuelve los contadores del proceso; cero si nunca accedió a memoria.
func (m *Manager) ProcessMetrics(pid uint) models.Metrics {
	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()

	if metrics, ok := m.processMetrics[pid]; ok {
		return *metrics
	}
	return models.Metrics{}
}
