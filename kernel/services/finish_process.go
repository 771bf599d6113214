package services

import (
	"fmt"
	"log/slog"

	"github.com/AndrywBarrera/OperativePages/kernel/models"
)

// logFinishMetrics loguea las métricas de estado de un proceso que llegó a EXIT.
func logFinishMetrics(pcb *models.PCB) {
	slog.Info(fmt.Sprintf("## (%d) - Finaliza el proceso", pcb.PID),
		slog.Int("completion", pcb.CompletionTime),
		slog.Int("turnaround", pcb.Turnaround()),
		slog.Int("waiting", pcb.WaitingTime),
	)

	slog.Info("Métricas de estado",
		slog.Int("PID", int(pcb.PID)),
		slog.Int("READY_COUNT", pcb.ME[models.EstadoReady]),
		slog.Int("READY_TIME", pcb.MT[models.EstadoReady]),
		slog.Int("EXEC_COUNT", pcb.ME[models.EstadoExecuting]),
		slog.Int("EXEC_TIME", pcb.MT[models.EstadoExecuting]),
		slog.Int("BLOCKED_COUNT", pcb.ME[models.EstadoBlocked]),
		slog.Int("BLOCKED_TIME", pcb.MT[models.EstadoBlocked]),
	)
}
