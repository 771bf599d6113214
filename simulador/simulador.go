package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	simHandlers "github.com/AndrywBarrera/OperativePages/simulador/handlers"
	"github.com/AndrywBarrera/OperativePages/simulador/models"
	"github.com/AndrywBarrera/OperativePages/simulador/services"
	"github.com/AndrywBarrera/OperativePages/utils/config"
	"github.com/AndrywBarrera/OperativePages/utils/log"
	"github.com/AndrywBarrera/OperativePages/utils/web/server"
)

const (
	ConfigPath = "simulador/configs/simulador.json"
	// tope de ticks del modo batch para cargas que nunca terminan
	MaxBatchTicks = 100000
)

// Uso:
//
//	go run ./simulador [archivo_configuracion] [batch|server]
func main() {
	configPath := ConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	mode := "server"
	if len(os.Args) > 2 {
		mode = os.Args[2]
	}

	simConfig := models.DefaultConfig()
	config.InitConfig(configPath, &simConfig)
	log.InitLogger(simConfig.LogPath, simConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	driver := services.NewDriver(services.LogObserver{})
	if simConfig.ObserverURL != "" {
		observer := services.NewHTTPObserver(simConfig.ObserverURL, 64)
		go observer.Run(ctx)
		driver.AddObserver(observer)
	}

	if err := driver.Configure(simConfig); err != nil {
		slog.Error("Configuración inválida", "archivo", configPath, "error", err)
		os.Exit(1)
	}

	switch mode {
	case "batch":
		if err := runBatch(driver); err != nil {
			slog.Error(fmt.Sprintf("error en la simulación: %v", err))
			os.Exit(1)
		}
	case "server":
		if err := runServer(ctx, driver, simConfig.Port); err != nil {
			slog.Error(fmt.Sprintf("error initializing server: %v", err))
			panic(err)
		}
	default:
		slog.Error("Modo desconocido, se espera batch o server", "modo", mode)
		os.Exit(1)
	}
}

// runBatch ejecuta la simulación configurada sin pausas e imprime el reporte final.
func runBatch(driver *services.Driver) error {
	driver.AddObserver(services.NewReportObserver(os.Stdout))
	if err := driver.Start(); err != nil {
		return err
	}
	_, err := driver.RunToCompletion(MaxBatchTicks)
	return err
}

// runServer expone los comandos por HTTP. Cada inicio lanza un Pacer que avanza el reloj con el intervalo
// configurado hasta que la corrida termina.
func runServer(ctx context.Context, driver *services.Driver, port int) error {
	driver.AddObserver(services.NewReportObserver(os.Stdout))

	var (
		mu          sync.Mutex
		cancelPacer context.CancelFunc = func() {}
	)
	onStart := func() {
		mu.Lock()
		defer mu.Unlock()

		// una corrida nueva reemplaza al pacer de la anterior aunque todavía no haya visto el fin
		cancelPacer()
		pacerCtx, cancel := context.WithCancel(ctx)
		cancelPacer = cancel
		go func() {
			state := services.NewPacer(driver, 0).Run(pacerCtx)
			slog.Debug("Pacer finalizado", "estado", state)
		}()
	}

	mux := simHandlers.NewRouter(driver, onStart)
	return server.InitServer(ctx, port, mux)
}
