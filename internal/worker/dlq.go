package worker

// Cola de mensajes muertos para los correos de cotización: los jobs que agotan
// sus reintentos se apartan en una lista de Redis por cola de origen
// (dlq:{cola}) y quedan ahí para revisión manual.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const PrefijoDLQ = "dlq:"

// EntradaDLQ conserva el job fallido junto con el motivo y el momento del
// último intento, para que quien revise la cola pueda reproducirlo.
type EntradaDLQ struct {
	ColaOrigen string          `json:"cola_origen"`
	Tipo       string          `json:"tipo"`
	Payload    json.RawMessage `json:"payload"`
	Motivo     string          `json:"motivo"`
	FalloEn    string          `json:"fallo_en"` // RFC 3339
	Intentos   int             `json:"intentos"`
}

// EnviarADLQ aparta un job que agotó sus reintentos. No devuelve error: si la
// propia DLQ falla solo queda registrarlo, el worker no puede hacer más.
func EnviarADLQ(ctx context.Context, rdb *redis.Client, cola, tipo string, payload json.RawMessage, motivo string, intentos int) {
	entrada := EntradaDLQ{
		ColaOrigen: cola,
		Tipo:       tipo,
		Payload:    payload,
		Motivo:     motivo,
		FalloEn:    time.Now().UTC().Format(time.RFC3339),
		Intentos:   intentos,
	}

	data, err := json.Marshal(entrada)
	if err != nil {
		log.Error().Err(err).Str("cola", cola).Msg("dlq: no se pudo serializar la entrada")
		return
	}

	clave := PrefijoDLQ + cola
	if err := rdb.LPush(ctx, clave, data).Err(); err != nil {
		log.Error().Err(err).Str("clave", clave).Msg("dlq: no se pudo apartar el job")
		return
	}

	log.Warn().
		Str("cola", cola).
		Str("tipo", tipo).
		Str("motivo", motivo).
		Int("intentos", intentos).
		Msg("dlq: correo de cotización apartado tras agotar reintentos")
}

// LargoDLQ devuelve cuántos jobs esperan revisión en la DLQ de una cola.
func LargoDLQ(ctx context.Context, rdb *redis.Client, cola string) (int64, error) {
	return rdb.LLen(ctx, PrefijoDLQ+cola).Result()
}
