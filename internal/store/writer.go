package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/JustJay7/bpso-complaint-intake/internal/intake"
	"github.com/JustJay7/bpso-complaint-intake/pkg/logger"
)

// ErrNotFound is returned by Get when no item has the case number
var ErrNotFound = errors.New("case not found")

// WriteError reports a fan-out that stopped at Table. Tables in Written
// already hold the item unless they are also listed in RolledBack.
type WriteError struct {
	Table      string
	Written    []string
	RolledBack []string
	Err        error
}

func (e *WriteError) Error() string {
	msg := fmt.Sprintf("failed to write case to %s: %v", e.Table, e.Err)
	if len(e.Written) > 0 {
		msg += fmt.Sprintf(" (already written: %s", strings.Join(e.Written, ", "))
		if len(e.RolledBack) > 0 {
			msg += fmt.Sprintf("; rolled back: %s", strings.Join(e.RolledBack, ", "))
		}
		msg += ")"
	}
	return msg
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Partial reports whether some table kept the item after the failure
func (e *WriteError) Partial() bool {
	return len(e.Written) > len(e.RolledBack)
}

// WriteResult lists the tables that received the item
type WriteResult struct {
	CaseNumber int64
	Tables     []string
}

// Writer puts a record into each destination table in order
type Writer struct {
	api      API
	timeout  time.Duration
	rollback bool
	logger   *logger.Logger
}

// NewWriter creates a writer. timeout bounds each store call; zero means
// the caller's context alone applies. With rollback set, a failed fan-out
// deletes the item from the tables already written.
func NewWriter(api API, timeout time.Duration, rollback bool, logger *logger.Logger) *Writer {
	return &Writer{
		api:      api,
		timeout:  timeout,
		rollback: rollback,
		logger:   logger,
	}
}

// Write puts the same encoded item into every table, one after another.
// Puts overwrite unconditionally. The first failure stops the loop and is
// returned as a *WriteError.
func (w *Writer) Write(ctx context.Context, record *intake.CaseRecord, tables []string) (*WriteResult, error) {
	item := EncodeRecord(record)
	written := make([]string, 0, len(tables))

	for _, table := range tables {
		err := w.call(ctx, func(ctx context.Context) error {
			_, err := w.api.PutItem(ctx, &dynamodb.PutItemInput{
				TableName: aws.String(table),
				Item:      item,
			})
			return err
		})
		if err != nil {
			werr := &WriteError{Table: table, Written: written, Err: err}
			w.logger.Error("Case write failed",
				"case_number", record.CaseNumber,
				"table", table,
				"written", written,
				"error", err,
			)
			if w.rollback && len(written) > 0 {
				// a cancelled request must not stop the cleanup
				werr.RolledBack = w.undo(context.WithoutCancel(ctx), record, written)
			}
			return nil, werr
		}

		written = append(written, table)
		w.logger.Debug("Case written", "case_number", record.CaseNumber, "table", table)
	}

	return &WriteResult{CaseNumber: record.CaseNumber, Tables: written}, nil
}

// undo deletes the item from tables, only where it still carries this
// record's submission ID. It returns the tables it cleaned.
func (w *Writer) undo(ctx context.Context, record *intake.CaseRecord, tables []string) []string {
	cleaned := make([]string, 0, len(tables))
	for _, table := range tables {
		err := w.call(ctx, func(ctx context.Context) error {
			_, err := w.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName:           aws.String(table),
				Key:                 Key(record.CaseNumber),
				ConditionExpression: aws.String("#submission = :submission"),
				ExpressionAttributeNames: map[string]string{
					"#submission": AttrSubmissionID,
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":submission": &types.AttributeValueMemberS{Value: record.SubmissionID},
				},
			})
			return err
		})
		if err != nil {
			w.logger.Warn("Rollback failed", "case_number", record.CaseNumber, "table", table, "error", err)
			continue
		}
		cleaned = append(cleaned, table)
	}
	return cleaned
}

// Get reads the record stored under caseNumber in table
func (w *Writer) Get(ctx context.Context, table string, caseNumber int64) (*intake.CaseRecord, error) {
	var out *dynamodb.GetItemOutput
	err := w.call(ctx, func(ctx context.Context) error {
		var err error
		out, err = w.api.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(table),
			Key:       Key(caseNumber),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read case %d from %s: %w", caseNumber, table, err)
	}
	if out == nil || len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	record, err := DecodeRecord(out.Item)
	if err != nil {
		return nil, fmt.Errorf("failed to decode case %d: %w", caseNumber, err)
	}
	return record, nil
}

func (w *Writer) call(ctx context.Context, fn func(context.Context) error) error {
	if w.timeout <= 0 {
		return fn(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	return fn(callCtx)
}
