package services

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/AndrywBarrera/OperativePages/filesystem/models"
	"github.com/AndrywBarrera/OperativePages/utils/list"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
)

// Controller arbitra el acceso exclusivo a los archivos simulados. Un archivo tiene a lo sumo un dueño y los
// pedidos en conflicto se rechazan, no se encolan.
type Controller struct {
	mu sync.Mutex

	files     map[string]*models.File
	names     []string
	accessLog *list.ArrayList[models.AccessLogEntry]
	sequence  int

	granted   int
	conflicts int
}

// NewController crea el controlador sobre el conjunto de archivos dado (DefaultFiles si está vacío).
func NewController(names []string) (*Controller, error) {
	if len(names) == 0 {
		names = models.DefaultFiles
	}

	controller := &Controller{
		files:     make(map[string]*models.File, len(names)),
		accessLog: &list.ArrayList[models.AccessLogEntry]{},
	}
	for _, name := range names {
		if name == "" {
			return nil, simerr.New(simerr.ConfigurationError, "filesystem.NewController", "nombre de archivo vacío")
		}
		if _, exists := controller.files[name]; exists {
			return nil, simerr.New(simerr.ConfigurationError, "filesystem.NewController", "archivo duplicado: %s", name)
		}
		controller.files[name] = &models.File{Name: name}
		controller.names = append(controller.names, name)
	}
	return controller, nil
}

// RequestAccess pide el archivo para pid. Un archivo libre se otorga, uno tomado por otro proceso es un
// CONFLICT y uno que ya tiene el mismo proceso se vuelve a otorgar sin cambiar el modo, sumando una retención
// más. Cada pedido válido queda en el registro de accesos.
func (c *Controller) RequestAccess(now int, pid uint, name string, mode models.Mode) (models.Outcome, error) {
	if !mode.Valid() {
		return "", simerr.New(simerr.InvalidRequest, "filesystem.RequestAccess", "modo de acceso inválido: %q", mode)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	file, exists := c.files[name]
	if !exists {
		return "", simerr.New(simerr.InvalidRequest, "filesystem.RequestAccess", "archivo desconocido: %s", name)
	}

	outcome := models.Granted
	switch {
	case !file.Locked:
		file.Locked = true
		file.Holder = pid
		file.Mode = mode
		file.Holds = 1
	case file.Holder != pid:
		outcome = models.Conflict
	default:
		file.Holds++
	}

	if outcome == models.Granted {
		c.granted++
		slog.Debug(fmt.Sprintf("## PID: %d - Acceso otorgado - Archivo: %s - Modo: %s", pid, name, mode))
	} else {
		c.conflicts++
		slog.Info(fmt.Sprintf("## PID: %d - Conflicto de acceso - Archivo: %s - Dueño: %d", pid, name, file.Holder))
	}

	c.sequence++
	c.accessLog.Add(models.AccessLogEntry{
		Tick:     now,
		Sequence: c.sequence,
		PID:      pid,
		File:     name,
		Mode:     mode,
		Outcome:  outcome,
	})
	return outcome, nil
}

// Release descuenta una retención de pid sobre el archivo y lo desbloquea cuando no le quedan más.
// Devuelve true solo si el archivo quedó libre; si pid no es el dueño no hace nada.
func (c *Controller) Release(pid uint, name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	file, exists := c.files[name]
	if !exists || !file.Locked || file.Holder != pid {
		return false
	}
	if file.Holds--; file.Holds > 0 {
		return false
	}
	c.unlock(file)
	return true
}

// ReleaseAll libera todos los archivos de pid y devuelve sus nombres en el orden de configuración.
func (c *Controller) ReleaseAll(pid uint) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var released []string
	for _, name := range c.names {
		file := c.files[name]
		if file.Locked && file.Holder == pid {
			c.unlock(file)
			released = append(released, name)
		}
	}
	return released
}

func (c *Controller) unlock(file *models.File) {
	slog.Debug(fmt.Sprintf("## PID: %d - Libera archivo: %s", file.Holder, file.Name))
	file.Locked = false
	file.Holder = 0
	file.Mode = ""
	file.Holds = 0
}

// Recent devuelve las últimas n entradas del registro en orden cronológico.
func (c *Controller) Recent(n int) []models.AccessLogEntry {
	return c.accessLog.Tail(n)
}

// Files devuelve una copia del estado de los archivos en el orden de configuración.
func (c *Controller) Files() []models.File {
	c.mu.Lock()
	defer c.mu.Unlock()

	files := make([]models.File, 0, len(c.names))
	for _, name := range c.names {
		files = append(files, *c.files[name])
	}
	return files
}

func (c *Controller) Granted() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.granted
}

func (c *Controller) Conflicts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conflicts
}
