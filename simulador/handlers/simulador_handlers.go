package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/AndrywBarrera/OperativePages/simulador/models"
	"github.com/AndrywBarrera/OperativePages/utils/simerr"
	webHandlers "github.com/AndrywBarrera/OperativePages/utils/web/handlers"
	"github.com/AndrywBarrera/OperativePages/utils/web/server"
)

// Controller son los comandos que el adaptador HTTP le da al reloj.
type Controller interface {
	Configure(config models.Config) error
	Start() error
	Pause() error
	Resume() error
	Stop() error
	Tick() (models.Snapshot, error)
	Snapshot() (models.Snapshot, bool)
	State() models.DriverState
}

// ErrorResponse es el body de las respuestas con error.
type ErrorResponse struct {
	Error string      `json:"error"`
	Kind  simerr.Kind `json:"kind,omitempty"`
}

// StateResponse es la respuesta de los comandos que no devuelven un snapshot.
type StateResponse struct {
	State models.DriverState `json:"state"`
}

// NewRouter registra los endpoints del simulador. onStart, si no es nil, se llama después de cada inicio exitoso.
func NewRouter(controller Controller, onStart func()) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", webHandlers.HandshakeHandler("Bienvenido al simulador de sistemas operativos"))
	mux.HandleFunc("GET /simulador/estado", GetStateHandler(controller))
	mux.HandleFunc("GET /simulador/metricas", GetMetricsHandler(controller))
	mux.HandleFunc("POST /simulador/configurar", ConfigureHandler(controller))
	mux.HandleFunc("POST /simulador/iniciar", CommandHandler("iniciar", controller, func() error {
		if err := controller.Start(); err != nil {
			return err
		}
		if onStart != nil {
			onStart()
		}
		return nil
	}))
	mux.HandleFunc("POST /simulador/pausar", CommandHandler("pausar", controller, controller.Pause))
	mux.HandleFunc("POST /simulador/reanudar", CommandHandler("reanudar", controller, controller.Resume))
	mux.HandleFunc("POST /simulador/detener", CommandHandler("detener", controller, controller.Stop))
	mux.HandleFunc("POST /simulador/tick", TickHandler(controller))
	return mux
}

// GetStateHandler devuelve el último snapshot completo.
func GetStateHandler(controller Controller) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		snapshot, ok := controller.Snapshot()
		if !ok {
			server.SendJsonResponse(writer, StateResponse{State: controller.State()})
			return
		}
		server.SendJsonResponse(writer, snapshot)
	}
}

func GetMetricsHandler(controller Controller) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		snapshot, ok := controller.Snapshot()
		if !ok {
			sendError(writer, simerr.New(simerr.ConfigurationError, "simulador.Metricas", "no hay una simulación configurada"))
			return
		}
		server.SendJsonResponse(writer, snapshot.Metrics)
	}
}

// ConfigureHandler recibe la configuración como JSON. Los campos ausentes toman los valores por defecto.
func ConfigureHandler(controller Controller) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		config := models.DefaultConfig()
		if err := server.DecodeJson(request, &config); err != nil {
			sendError(writer, simerr.Wrap(simerr.ConfigurationError, "simulador.Configurar", err))
			return
		}

		if err := controller.Configure(config); err != nil {
			sendError(writer, err)
			return
		}
		snapshot, _ := controller.Snapshot()
		server.SendJsonResponse(writer, snapshot)
	}
}

// CommandHandler ejecuta un comando sin parámetros y responde con el nuevo estado.
func CommandHandler(name string, controller Controller, command func() error) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := command(); err != nil {
			sendError(writer, err)
			return
		}
		slog.Debug(fmt.Sprintf("Comando %s ejecutado", name), "estado", controller.State())
		server.SendJsonResponse(writer, StateResponse{State: controller.State()})
	}
}

func TickHandler(controller Controller) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		snapshot, err := controller.Tick()
		if err != nil {
			sendError(writer, err)
			return
		}
		server.SendJsonResponse(writer, snapshot)
	}
}

func sendError(writer http.ResponseWriter, err error) {
	kind := simerr.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		slog.Error("Error atendiendo el pedido", "error", err)
	}
	server.SendJsonStatus(writer, status, ErrorResponse{Error: err.Error(), Kind: kind})
}

func statusFor(kind simerr.Kind) int {
	switch kind {
	case simerr.ConfigurationError, simerr.InvalidRequest:
		return http.StatusBadRequest
	case simerr.InvalidState:
		return http.StatusConflict
	case simerr.UnknownProcess:
		return http.StatusNotFound
	case simerr.ResourceExhausted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
