package query

import (
	"biometric-query/internal/agent/agent"
	"biometric-query/internal/biometric"
	"biometric-query/internal/biometric/models"
	"biometric-query/internal/config"
	"biometric-query/internal/constants"
	"biometric-query/internal/syncutils"
	"biometric-query/internal/verdict"
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type stubService struct {
	result *models.QueryResult
	err    error
}

func (s stubService) ProcessBiometricQuery(context.Context, string, string) (*models.QueryResult, error) {
	return s.result, s.err
}

func (s stubService) HealthCheck(context.Context) error { return nil }

func (s stubService) Target() string { return "stub" }

type stubOpener struct {
	service biometric.QueryService
}

func (s stubOpener) Open() (biometric.QueryService, error) { return s.service, nil }

func runQuery(t *testing.T, service biometric.QueryService, args ...string) (string, error) {
	t.Helper()
	logger := zerolog.Nop()
	cfg := &config.Config{Biometric: config.Biometric{QueryTimeout: time.Second}}
	var out bytes.Buffer
	cmd := NewQueryCommand(&logger,
		agent.NewAgent(&logger, cfg, stubOpener{service: service}, nil),
		verdict.NewPrinter(&out),
		syncutils.NewSyncUtils())

	app := &cli.App{Commands: []*cli.Command{cmd.Describe()}}
	err := app.Run(append([]string{"bioquery", Name}, args...))
	return out.String(), err
}

func TestQueryPrintsVerdict(t *testing.T) {
	out, err := runQuery(t, stubService{result: &models.QueryResult{AccessGranted: true}}, "dGVtcGxhdGU=", "thumb_right")
	require.NoError(t, err)
	assert.Equal(t, "SIM\n", out)

	out, err = runQuery(t, stubService{result: &models.QueryResult{}}, "dGVtcGxhdGU=", "thumb_right")
	require.NoError(t, err)
	assert.Equal(t, "NAO\n", out)
}

func TestQueryPrintsDeniedOnError(t *testing.T) {
	out, err := runQuery(t, stubService{err: errors.New("unreachable")}, "dGVtcGxhdGU=", "thumb_right")
	require.Error(t, err)
	assert.Equal(t, "NAO\n", out)
}

func TestQueryPassesFlagLikeArguments(t *testing.T) {
	out, err := runQuery(t, nil, constants.SimulatedGrantedTemplate, "--finger")
	require.NoError(t, err)
	assert.Equal(t, "SIM\n", out)

	out, err = runQuery(t, nil, "-h")
	require.Error(t, err)
	assert.Equal(t, "NAO\n", out)
}
