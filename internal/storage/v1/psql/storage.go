// Package psql provides a biometric query backend living in a PSQL database.
//
// Matching and access policy are owned by the database-side function
// biometric_query(template text, finger_type text); this package only calls it.

package psql

import (
	"biometric-query/internal/biometric/models"
	"biometric-query/internal/config"
	storageErrors "biometric-query/internal/storage/errors"
	"biometric-query/internal/syncutils"
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/rs/zerolog"
)

const (
	queryFunction = "biometric_query"
	queryStmt     = "SELECT access_granted FROM biometric_query($1, $2)"
)

// Storage defines a new object and sets its attributes.
type Storage struct {
	mu        sync.Mutex
	cfg       *config.Config
	DB        *sql.DB
	log       *zerolog.Logger
	syncUtils *syncutils.SyncUtils
}

// NewStorage initializes a new Storage instance. The pool is closed on app shutdown.
func NewStorage(cfg *config.Config, logger *zerolog.Logger, syncUtils *syncutils.SyncUtils) (*Storage, error) {
	logger.Debug().Msg("calling initializer of storage service")
	db, err := sql.Open("pgx", cfg.DB.DatabaseDSN)
	if err != nil {
		logger.Error().Err(err).Msg("could not open a DB connection")
		return nil, &storageErrors.OpeningPSQLError{Err: err}
	}
	db.SetMaxOpenConns(1)
	st := Storage{
		cfg:       cfg,
		DB:        db,
		log:       logger,
		syncUtils: syncUtils,
	}
	logger.Debug().Msg("DB connection pool was prepared")

	syncUtils.OnShutdown(func() {
		if err := st.DB.Close(); err != nil {
			logger.Error().Err(err).Msg("could not close DB connection")
			return
		}
		logger.Debug().Msg("PSQL DB connection was closed")
	})

	return &st, nil
}

// ProcessBiometricQuery asks the database-side service whether the template grants access.
// A NULL answer or an empty result set is a denial.
func (s *Storage) ProcessBiometricQuery(ctx context.Context, template, fingerType string) (*models.QueryResult, error) {
	s.log.Debug().Msg("calling `ProcessBiometricQuery` method")
	queryAccessStmt, err := s.DB.PrepareContext(ctx, queryStmt)
	if err != nil {
		s.log.Error().Err(err).Str("finger_type", fingerType).Msg("could not prepare statement")
		return nil, classify(err)
	}
	defer queryAccessStmt.Close()

	chanOk := make(chan *models.QueryResult, 1)
	chanEr := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		var granted sql.NullBool
		err := queryAccessStmt.QueryRowContext(ctx, template, fingerType).Scan(&granted)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				chanOk <- &models.QueryResult{}
				return
			}
			chanEr <- classify(err)
			return
		}
		chanOk <- &models.QueryResult{AccessGranted: granted.Valid && granted.Bool}
	}()

	select {
	case <-ctx.Done():
		s.log.Error().Err(ctx.Err()).Str("finger_type", fingerType).Msg("querying biometric access failed")
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case methodErr := <-chanEr:
		s.log.Error().Err(methodErr).Str("finger_type", fingerType).Msg("querying biometric access failed")
		return nil, methodErr
	case result := <-chanOk:
		s.log.Info().Str("finger_type", fingerType).Bool("access_granted", result.AccessGranted).Msg("querying biometric access done")
		return result, nil
	}
}

// HealthCheck verifies the database is reachable.
func (s *Storage) HealthCheck(ctx context.Context) error {
	s.log.Debug().Msg("calling `HealthCheck` method")
	if err := s.DB.PingContext(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// Target returns the database host the storage talks to, without credentials.
func (s *Storage) Target() string {
	dsn := s.cfg.DB.DatabaseDSN
	if i := strings.LastIndex(dsn, "@"); i >= 0 {
		return dsn[i+1:]
	}
	return dsn
}

// classify maps driver errors onto storage error types.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UndefinedFunction:
			return &storageErrors.UndefinedFunctionError{Err: err, Function: queryFunction}
		case pgerrcode.IsConnectionException(pgErr.Code):
			return &storageErrors.ConnectionPSQLError{Err: err}
		case pgerrcode.IsSyntaxErrororAccessRuleViolation(pgErr.Code):
			return &storageErrors.StatementPSQLError{Err: err}
		}
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	return &storageErrors.ExecutionPSQLError{Err: err}
}
