package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AndrywBarrera/OperativePages/simulador/models"
	"github.com/AndrywBarrera/OperativePages/utils/web/client"
)

// LogObserver escribe cada snapshot en el log.
type LogObserver struct{}

func (LogObserver) OnSnapshot(snapshot models.Snapshot) {
	slog.Debug(fmt.Sprintf("## Tick %d - Ejecutando: %d - Cola READY: %v", snapshot.Tick, snapshot.RunningPID, snapshot.ReadyQueue),
		"faults", snapshot.Metrics.PageFaults, "hits", snapshot.Metrics.PageHits,
		"conflictos", snapshot.Metrics.FileConflicts)
}

func (LogObserver) OnCompleted(snapshot models.Snapshot) {
	metrics := snapshot.Metrics
	slog.Info(fmt.Sprintf("## Métricas finales - Procesos: %d/%d; Espera promedio: %.2f; Retorno promedio: %.2f; Page Faults: %d; Hits: %d; Conflictos: %d",
		metrics.CompletedProcesses, metrics.TotalProcesses, metrics.AverageWaiting, metrics.AverageTurnaround,
		metrics.PageFaults, metrics.PageHits, metrics.FileConflicts))
}

// HTTPObserver envía los snapshots como JSON a un observador externo. Los envíos se hacen en Run para no
// frenar el reloj; si la cola está llena el snapshot se descarta. Los avisos de fin van por una cola propia y
// no compiten con los snapshots.
type HTTPObserver struct {
	url         string
	queue       chan pushRequest
	completions chan pushRequest
	dropped     int
	mu          sync.Mutex
}

// completionBuffer alcanza para varias corridas seguidas sin que Run haya enviado la anterior.
const completionBuffer = 8

type pushRequest struct {
	path     string
	snapshot models.Snapshot
}

func NewHTTPObserver(url string, buffer int) *HTTPObserver {
	if buffer <= 0 {
		buffer = 1
	}
	return &HTTPObserver{
		url:         url,
		queue:       make(chan pushRequest, buffer),
		completions: make(chan pushRequest, completionBuffer),
	}
}

func (o *HTTPObserver) OnSnapshot(snapshot models.Snapshot) {
	o.enqueue(o.queue, pushRequest{path: "/snapshot", snapshot: snapshot})
}

func (o *HTTPObserver) OnCompleted(snapshot models.Snapshot) {
	o.enqueue(o.completions, pushRequest{path: "/completado", snapshot: snapshot})
}

func (o *HTTPObserver) enqueue(queue chan pushRequest, request pushRequest) {
	select {
	case queue <- request:
	default:
		o.mu.Lock()
		o.dropped++
		o.mu.Unlock()
		slog.Warn("Cola del observador HTTP llena, se descarta el snapshot", "tick", request.snapshot.Tick)
	}
}

// Dropped es la cantidad de snapshots descartados por cola llena.
func (o *HTTPObserver) Dropped() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dropped
}

// Run envía los snapshots encolados hasta que se cancele ctx. Antes de un aviso de fin se envían los
// snapshots que ya estaban en cola.
func (o *HTTPObserver) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case request := <-o.completions:
			o.drain()
			o.push(request)
		case request := <-o.queue:
			o.push(request)
		}
	}
}

func (o *HTTPObserver) drain() {
	for {
		select {
		case request := <-o.queue:
			o.push(request)
		default:
			return
		}
	}
}

func (o *HTTPObserver) push(request pushRequest) {
	if err := client.PostJson(o.url+request.path, request.snapshot); err != nil {
		slog.Warn("No se pudo enviar el snapshot al observador", "url", o.url, "tick", request.snapshot.Tick, "error", err)
	}
}
