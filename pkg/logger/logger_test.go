package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "debug", Output: &buf})

	l.Component("orders").Info().Int64("order_id", 7).Msg("pedido creado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "orders", line["component"])
	assert.Equal(t, "pedido creado", line["message"])
	assert.EqualValues(t, 7, line["order_id"])
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("sí debe salir")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("ruido"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
}
