package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"accounts/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Level(t *testing.T) {
	l, _ := newBufferedGormLogger(false)
	assert.Equal(t, logger.Warn, l.level)

	l, _ = newBufferedGormLogger(true)
	assert.Equal(t, logger.Info, l.level)

	silenced := l.LogMode(logger.Silent).(*gormSlogLogger)
	assert.Equal(t, logger.Silent, silenced.level)
	assert.Equal(t, logger.Info, l.level)
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn(`INSERT INTO "users"`), errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_TraceIgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "users"`), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TraceSlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`SELECT 1`), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_TraceQueryOnlyInDebug(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
	assert.Empty(t, buf.String())

	l, buf = newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormSlogLogger_TruncatesLongStatements(t *testing.T) {
	l, _ := newBufferedGormLogger(true)

	attrs := l.buildQueryAttrs(sqlFn(strings.Repeat("x", maxLoggedSQLLength*2)), time.Millisecond)

	assert.Len(t, attrs[2].Value.String(), maxLoggedSQLLength+3)
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l, _ := newBufferedGormLogger(true)

	sql, params := l.ParamsFilter(context.Background(), `UPDATE "users" SET "password"=$1`, "$2a$10$secret")

	assert.Equal(t, `UPDATE "users" SET "password"=$1`, sql)
	assert.Nil(t, params)
}
