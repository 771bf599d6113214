package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout limita cuánto espera un pedido antes de abandonarlo.
const DefaultTimeout = 5 * time.Second

var httpClient = &http.Client{Timeout: DefaultTimeout}

// BuildURL arma la url http://ip:port/query.
func BuildURL(ip string, port int, query string) string {
	return fmt.Sprintf("http://%s:%d/%s", ip, port, query)
}

// DoRequest hace un pedido HTTP (GET, POST, PUT, DELETE, etc.) a url y devuelve la respuesta del servidor.
// Si el servidor responde con un código distinto de 2xx se devuelve la respuesta junto con un error.
//
// Parámetros:
//   - url: dirección completa del recurso
//   - metodo: metodo HTTP
//   - bodies ...[]byte: (opcional) body del request, puede pasarse vacío.
//
// Ejemplo:
//
//	func main() {
//		response, err := client.DoRequest(client.BuildURL("127.0.0.1", 8080, "simulador/estado"), "GET")
//		if err != nil {
//			slog.Error(fmt.Sprintf("Ocurrió un error: %v", err))
//			return
//		}
//		defer response.Body.Close()
//	}
func DoRequest(url string, metodo string, bodies ...[]byte) (*http.Response, error) {
	req, err := http.NewRequest(metodo, url, ifBody(bodies...))
	if err != nil {
		slog.Error(fmt.Sprintf("error creando request a %s", url))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	respuesta, err := httpClient.Do(req)
	if err != nil {
		slog.Error(fmt.Sprintf("error enviando request a %s - %v", url, err))
		return nil, err
	}

	if respuesta.StatusCode < 200 || respuesta.StatusCode > 299 {
		errorMsg := fmt.Errorf("status error: %d %s", respuesta.StatusCode, http.StatusText(respuesta.StatusCode))
		slog.Error(errorMsg.Error(), "url", url)
		return respuesta, errorMsg
	}
	return respuesta, nil
}

// PostJson serializa data y lo envía por POST a url. El body de la respuesta se descarta.
func PostJson(url string, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializando el body: %w", err)
	}

	response, err := DoRequest(url, http.MethodPost, body)
	if response != nil {
		_, _ = io.Copy(io.Discard, response.Body)
		response.Body.Close()
	}
	return err
}

func ifBody(bodies ...[]byte) io.Reader {
	if len(bodies) == 0 || bodies[0] == nil {
		return nil
	}
	return bytes.NewBuffer(bodies[0])
}
