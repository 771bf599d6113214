package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración y carga sus valores en config. Si el archivo no existe o no es un
// JSON válido se corta la ejecución, igual que al levantar cualquier módulo sin configuración.
//
// Parámetros:
//   - filePath: ubicación del archivo de configuración
//   - config: puntero a cualquier estructura con tags json
//
// Ejemplo:
//
//	var simConfig models.Config
//	config.InitConfig("simulador/configs/simulador.json", &simConfig)
func InitConfig(filePath string, config any) {
	if err := Load(filePath, config); err != nil {
		panic(fmt.Errorf("error al configurar el archivo %s: %w", filePath, err))
	}
}

// Load es la variante de InitConfig que devuelve el error en lugar de entrar en pánico.
func Load(filePath string, config any) error {
	configFile, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	jsonParser.DisallowUnknownFields()

	if err := jsonParser.Decode(config); err != nil {
		return fmt.Errorf("decodificando %s: %w", filePath, err)
	}
	return nil
}

// UpdateConfig reemplaza (o agrega) claves de primer nivel de un archivo JSON de configuración.
// Los valores que sean JSON válido (números, booleanos, listas) se guardan con su tipo; el resto como string.
//
// Ejemplo:
//
//	err := config.UpdateConfig("simulador/configs/simulador.json", map[string]string{
//		"scheduler_algorithm": "PRIORITY",
//		"quantum":             "3",
//	})
func UpdateConfig(filePath string, updates map[string]string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	values := make(map[string]any)
	if err := json.Unmarshal(content, &values); err != nil {
		return fmt.Errorf("decodificando %s: %w", filePath, err)
	}

	for key, raw := range updates {
		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			parsed = raw
		}
		values[key] = parsed
	}

	updated, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, append(updated, '\n'), 0644)
}
