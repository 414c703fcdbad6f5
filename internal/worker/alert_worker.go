package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlerts.
// Sends a plain-text notification email via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"stockplan/internal/infra"
)

// LowStockAlertPayload is the job envelope sent to QueueAlerts.
type LowStockAlertPayload struct {
	ToEmail       string `json:"to_email"`
	MaterialCode  string `json:"material_code"`
	MaterialName  string `json:"material_name"`
	StockQuantity int    `json:"stock_quantity"`
	Threshold     int    `json:"threshold"`
}

// AlertWorker sends low-stock notification emails.
type AlertWorker struct {
	mailer *infra.Mailer
}

func NewAlertWorker(mailer *infra.Mailer) *AlertWorker {
	return &AlertWorker{mailer: mailer}
}

// Process sends the alert email. A returned error triggers a retry; after
// the attempt budget is exhausted the job lands in the DLQ.
func (w *AlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload LowStockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return nil // undecodable payloads are not retryable
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("alert_worker: empty to_email — skipping")
		return nil
	}

	subject := fmt.Sprintf("Low stock: %s (%s)", payload.MaterialName, payload.MaterialCode)
	body := fmt.Sprintf(
		"Raw material %s (%s) is down to %d units, below the alert threshold of %d.\n",
		payload.MaterialName, payload.MaterialCode, payload.StockQuantity, payload.Threshold,
	)
	if err := w.mailer.SendAlert(payload.ToEmail, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("alert_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Str("material", payload.MaterialCode).Msg("alert_worker: low-stock alert sent")
	return nil
}
