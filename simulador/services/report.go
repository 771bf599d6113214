package services

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"

	kernelModels "github.com/AndrywBarrera/OperativePages/kernel/models"
	"github.com/AndrywBarrera/OperativePages/simulador/models"
)

// ReportObserver imprime la tabla de resultados al completarse la simulación.
type ReportObserver struct {
	writer io.Writer
}

func NewReportObserver(writer io.Writer) *ReportObserver {
	return &ReportObserver{writer: writer}
}

func (r *ReportObserver) OnSnapshot(models.Snapshot) {}

func (r *ReportObserver) OnCompleted(snapshot models.Snapshot) {
	if err := WriteReport(r.writer, snapshot); err != nil {
		slog.Error("No se pudo escribir el reporte", "error", err)
	}
}

// WriteReport escribe una tabla por proceso (prioridad, ráfaga, llegada, espera, retorno y fin) con los
// promedios al pie, seguida del resumen de memoria y archivos.
func WriteReport(w io.Writer, snapshot models.Snapshot) error {
	if _, err := fmt.Fprintf(w, "Corrida %s - %s - %d ticks\n", snapshot.RunID, snapshot.Algorithm, snapshot.Tick); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Prioridad", "Ráfaga", "Llegada", "Espera", "Retorno", "Fin"})
	table.AppendBulk(reportRows(snapshot.Processes))

	metrics := snapshot.Metrics
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Promedio\n%.2f", metrics.AverageWaiting),
		fmt.Sprintf("Promedio\n%.2f", metrics.AverageTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", metrics.Throughput)})
	table.Render()

	_, err := fmt.Fprintf(w, "Memoria (%s): %d page faults, %d hits, %d reemplazos, uso %.1f%%\nArchivos: %d otorgados, %d conflictos\n",
		snapshot.Replacement, metrics.PageFaults, metrics.PageHits, metrics.Evictions, metrics.MemoryUtilization,
		metrics.FileGranted, metrics.FileConflicts)
	return err
}

func reportRows(processes []kernelModels.PCB) [][]string {
	rows := make([][]string, 0, len(processes))
	for _, pcb := range processes {
		turnaround, exit := "-", "-"
		if pcb.EstadoActual == kernelModels.EstadoExit {
			turnaround = strconv.Itoa(pcb.Turnaround())
			exit = strconv.Itoa(pcb.CompletionTime)
		}
		rows = append(rows, []string{
			strconv.Itoa(int(pcb.PID)),
			strconv.Itoa(pcb.Priority),
			strconv.Itoa(pcb.BurstTime),
			strconv.Itoa(pcb.ArrivalTime),
			strconv.Itoa(pcb.WaitingTime),
			turnaround,
			exit,
		})
	}
	return rows
}
