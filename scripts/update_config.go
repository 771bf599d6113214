package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AndrywBarrera/OperativePages/utils/config"
)

// Para su uso se debe posicionar en la carpeta scripts
// > go run update_config.go scheduler_algorithm PRIORITY
// > go run update_config.go replacement_algorithm LRU frame_count 4 quantum 3
// > go run update_config.go log_level DEBUG

const configDir = "../simulador/configs"

func main() {
	// Los argumentos van en pares: clave1 valor1 clave2 valor2 ...
	if len(os.Args) < 3 || len(os.Args)%2 != 1 {
		fmt.Println("Uso: update_config <clave_1> <valor_1> [<clave_2> <valor_2> ...]")
		fmt.Println("Ejemplo: update_config scheduler_algorithm SJF frame_count 8")
		return
	}

	updates := make(map[string]string)
	for i := 1; i < len(os.Args); i += 2 {
		updates[os.Args[i]] = os.Args[i+1]
	}

	fmt.Println("Valores a actualizar:")
	for k, v := range updates {
		fmt.Printf("  %s: %v\n", k, v)
	}

	paths, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error al buscar archivos en la carpeta %s: %v\n", configDir, err)
		return
	}

	for _, path := range paths {
		present, err := existingKeys(path, updates)
		if err != nil {
			fmt.Printf("  Error al leer %s: %v\n", path, err)
			continue
		}
		// Solo se tocan claves que ya existen: el simulador rechaza campos desconocidos.
		if len(present) == 0 {
			fmt.Printf("  No se encontraron claves a actualizar en %s.\n", path)
			continue
		}
		if err := config.UpdateConfig(path, present); err != nil {
			fmt.Printf("  Error al escribir el archivo %s: %v\n", path, err)
			continue
		}
		fmt.Printf("  El archivo %s ha sido actualizado correctamente (%d claves).\n", path, len(present))
	}

	fmt.Println("\nProceso de actualización de configuraciones finalizado.")
}

func existingKeys(path string, updates map[string]string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	present := make(map[string]string)
	for key, value := range updates {
		if _, ok := data[key]; ok {
			present[key] = value
		}
	}
	return present, nil
}
