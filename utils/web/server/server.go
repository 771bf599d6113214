package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

const shutdownTimeout = 5 * time.Second

// InitServer levanta el servidor con handler y lo mantiene hasta que se cancele ctx.
// Un cierre ordenado por cancelación no es un error.
//
// Ejemplo:
//
//	func main() {
//		err := server.InitServer(ctx, config.Port, mux)
//		if err != nil {
//			slog.Error(fmt.Sprintf("error initializing server: %v", err))
//			panic(err)
//		}
//	}
func InitServer(ctx context.Context, port int, handler http.Handler) error {
	addr := ":" + strconv.Itoa(port)
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: shutdownTimeout}

	errs := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("Servidor escuchando en el puerto %d", port))
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		slog.Error("Error al escuchar en el puerto "+addr, "error", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// SendJsonResponse retorna la respuesta del servidor en formato JSON con status 200.
func SendJsonResponse(writer http.ResponseWriter, data any) {
	SendJsonStatus(writer, http.StatusOK, data)
}

// SendJsonStatus escribe data como JSON con el status dado.
//
// Ejemplo:
//
//	server.SendJsonStatus(writer, http.StatusConflict, ErrorResponse{Error: err.Error()})
func SendJsonStatus(writer http.ResponseWriter, status int, data any) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(writer, "Error al convertir datos a JSON", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = writer.Write(response)
}

// DecodeJson decodifica el body del request en target rechazando campos desconocidos.
func DecodeJson(request *http.Request, target any) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}
