package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fno-calc/internal/config"
	"fno-calc/internal/models"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCmd(config.Default(), zerolog.Nop())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestEvaluateCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "evaluate", "--entry", "150", "--exit", "160", "--json")
	require.NoError(t, err)

	var result models.TradeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.InDelta(t, 500.0, result.GrossProfitLoss, 1e-9)
	assert.InDelta(t, 306.7048061, result.FinalNetProfit, 1e-7)
	assert.InDelta(t, 7500.0, result.RequiredMargin.Total, 1e-9)
}

func TestEvaluateCommand_RejectsInvalidPrices(t *testing.T) {
	_, err := runCommand(t, "evaluate", "--entry", "0", "--exit", "160")
	assert.Error(t, err)
}

func TestEvaluateCommand_RejectsMalformedInput(t *testing.T) {
	_, err := runCommand(t, "evaluate", "--entry", "abc", "--exit", "160")
	assert.Error(t, err)
}

func TestChargesCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "charges", "sell", "160", "--json")
	require.NoError(t, err)

	var b models.ChargeBreakdown
	require.NoError(t, json.Unmarshal([]byte(out), &b))

	assert.InDelta(t, 8000.0, b.Turnover, 1e-9)
	assert.InDelta(t, 8.0, b.STT, 1e-9)
}

func TestMarginCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "margin", "100", "--trade", "short", "--qty", "2", "--json")
	require.NoError(t, err)

	var m models.MarginResult
	require.NoError(t, json.Unmarshal([]byte(out), &m))

	assert.InDelta(t, 1000.0, m.Initial, 1e-9)
	assert.InDelta(t, 500.0, m.Exposure, 1e-9)
	assert.InDelta(t, 1500.0, m.Total, 1e-9)
}

func TestMarginCommand_RejectsBadEntry(t *testing.T) {
	_, err := runCommand(t, "margin", "0")
	assert.Error(t, err)
}
