package marketdata

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"go.uber.org/zap"
)

// DuckDBProvider serves bars from parquet files through an in-memory DuckDB view.
// The parquet files need time, symbol, open, high, low, close and volume columns.
type DuckDBProvider struct {
	db     *sql.DB
	sq     squirrel.StatementBuilderType
	logger *logger.Logger

	mu          sync.Mutex
	initialized bool
	path        string
}

// NewDuckDBProvider opens an in-memory DuckDB database reading the parquet
// file or glob at path. The view is created lazily on first use.
func NewDuckDBProvider(path string, log *logger.Logger) (*DuckDBProvider, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.ErrCodeMissingParameter, "duckdb provider requires a data path")
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	return &DuckDBProvider{
		db:          db,
		sq:          squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger:      log.Named("duckdb"),
		mu:          sync.Mutex{},
		initialized: false,
		path:        path,
	}, nil
}

// Initialize creates the market_data view over the parquet source.
func (d *DuckDBProvider) Initialize(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	d.logger.Debug("Initializing DuckDB view", zap.String("path", d.path))

	escaped := strings.ReplaceAll(filepath.ToSlash(d.path), "'", "''")
	query := fmt.Sprintf(`CREATE OR REPLACE VIEW market_data AS SELECT * FROM read_parquet('%s')`, escaped)

	if _, err := d.db.ExecContext(ctx, query); err != nil {
		return errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to read parquet %s", d.path)
	}

	d.initialized = true

	return nil
}

// Bars implements Provider. The interval of the horizon is not used because a
// parquet file holds a single interval.
func (d *DuckDBProvider) Bars(ctx context.Context, symbol string, horizon Horizon) ([]types.MarketData, error) {
	if horizon.Count <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "bar count must be positive, got %d", horizon.Count)
	}

	if err := d.Initialize(ctx); err != nil {
		return nil, err
	}

	query, args, err := d.sq.
		Select("time", "symbol", "open", "high", "low", "close", "volume").
		From("market_data").
		Where(squirrel.And{
			squirrel.Eq{"symbol": symbol},
			squirrel.LtOrEq{"time": horizon.EndOrNow()},
		}).
		OrderBy("time DESC").
		Limit(uint64(horizon.Count)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build bar query", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query bars for %s", symbol)
	}
	defer rows.Close()

	var bars []types.MarketData

	for rows.Next() {
		var (
			timestamp                      time.Time
			open, high, low, close, volume float64
			sym                            string
		)

		if err := rows.Scan(&timestamp, &sym, &open, &high, &low, &close, &volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "failed to scan bar", err)
		}

		bars = append(bars, types.MarketData{
			Id:     "",
			Symbol: sym,
			Time:   timestamp.UTC(),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: volume,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to iterate bars", err)
	}

	d.logger.Debug("Loaded bars", zap.String("symbol", symbol), zap.Int("count", len(bars)))

	return finalize(symbol, bars, horizon)
}

// Symbols lists the distinct symbols in the parquet source.
func (d *DuckDBProvider) Symbols(ctx context.Context) ([]string, error) {
	if err := d.Initialize(ctx); err != nil {
		return nil, err
	}

	query, args, err := d.sq.Select("DISTINCT symbol").From("market_data").OrderBy("symbol").ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build symbol query", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query symbols", err)
	}
	defer rows.Close()

	var symbols []string

	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan symbol", err)
		}

		symbols = append(symbols, symbol)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to iterate symbols", err)
	}

	return symbols, nil
}

// Close releases the database handle.
func (d *DuckDBProvider) Close() error {
	return d.db.Close()
}
