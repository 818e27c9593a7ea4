package worker

// email_worker.go
// Procesa los jobs de la cola de cotizaciones: renderiza el PDF y lo manda
// por correo. El circuit breaker corta el paso al relay SMTP cuando viene
// fallando, así los jobs quedan en cola en vez de trabar los workers.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/config"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/infra"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"github.com/rs/zerolog/log"
)

// CotizacionEmailPayload is the job envelope sent to QueueCotizaciones.
type CotizacionEmailPayload struct {
	CotizacionID int    `json:"cotizacion_id"`
	Correo       string `json:"correo"`
}

type EmailWorker struct {
	repo   repository.CotizacionRepository
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
	cfg    *config.Config
}

func NewEmailWorker(repo repository.CotizacionRepository, mailer *infra.Mailer, cb *infra.CircuitBreaker, cfg *config.Config) *EmailWorker {
	return &EmailWorker{repo: repo, mailer: mailer, cb: cb, cfg: cfg}
}

// Process genera el PDF y envía el correo. Devuelve error para que el pool
// decida entre reintento y DLQ.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload CotizacionEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: payload inválido")
		// Un payload roto nunca va a mejorar con reintentos.
		return nil
	}
	if payload.Correo == "" {
		log.Warn().Int("cotizacion_id", payload.CotizacionID).Msg("email_worker: correo vacío, se descarta")
		return nil
	}

	cot, err := w.repo.FindCompleta(ctx, payload.CotizacionID)
	if err != nil {
		return fmt.Errorf("email_worker: cargar cotización %d: %w", payload.CotizacionID, err)
	}

	pdfPath, err := infra.GenerateCotizacionPDF(cot, w.cfg.PDFStoragePath)
	if err != nil {
		return fmt.Errorf("email_worker: generar PDF: %w", err)
	}

	asunto := fmt.Sprintf("Cotización N° %d — StampLab", cot.CotizacionID)
	cuerpo := fmt.Sprintf(
		"Hola,\n\nAdjuntamos la cotización N° %d por un total de $%s.\n\nGracias por confiar en StampLab.",
		cot.CotizacionID, cot.ValorTotal.StringFixed(2),
	)

	err = w.cb.Execute(func() error {
		return w.mailer.SendCotizacion(payload.Correo, asunto, cuerpo, pdfPath)
	})
	if err != nil {
		return fmt.Errorf("email_worker: enviar a %s: %w", payload.Correo, err)
	}

	log.Info().
		Int("cotizacion_id", cot.CotizacionID).
		Str("to", payload.Correo).
		Msg("email_worker: cotización enviada")
	return nil
}
