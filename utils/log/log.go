package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// InitLogger loguea tanto en consola como en archivo según el nivel que se le pase y lo deja como logger por defecto.
//
// Parámetros:
//   - logPath: ubicación del archivo de log; vacío loguea solo por consola
//   - logLevel: DEBUG, INFO, WARN o ERROR, definido en el archivo de configuración
//
// Ejemplo:
//
//	func main() {
//		log.InitLogger("./logs/simulador.log", "INFO")
//	}
func InitLogger(logPath string, logLevel string) {
	var writer io.Writer = os.Stdout

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			panic(err)
		}
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			panic(err)
		}
		writer = io.MultiWriter(os.Stdout, logFile)
	}

	level, err := ParseLevel(logLevel)
	slog.SetDefault(NewLogger(writer, level))

	if err != nil {
		slog.Warn(err.Error())
	}
	slog.Debug("Se ha configurado correctamente el logger", "path", logPath, "level", level)
}

// NewLogger arma un logger de texto sobre writer con el atributo "modulo" del simulador.
func NewLogger(writer io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("modulo", "simulador")
}

// ParseLevel convierte el nivel del config a slog.Level. Ante un valor desconocido usa INFO y devuelve el motivo.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("no existe el nivel de log %q, se coloca INFO por defecto", levelStr)
	}
}
