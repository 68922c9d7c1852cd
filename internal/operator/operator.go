package operator

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-coach/internal/operator/actions"
	"github.com/carson-networks/budget-coach/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		start := time.Now()
		err := o.processItem(item)
		entry := o.logger.WithFields(logrus.Fields{
			"action":     item.action.Name(),
			"durationMs": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Warn("Operator.Process.Failed")
		} else {
			entry.Debug("Operator.Process.Complete")
		}
		item.response <- ActionItemResponse{err: err}
	}
}

func (o *Operator) processItem(item ActionItem) (err error) {
	// The caller gave up while the item was queued.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return fmt.Errorf("begin write: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = writer.Rollback()
			err = fmt.Errorf("action %s panicked: %v", item.action.Name(), p)
		}
	}()

	if err := item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback()
		return err
	}

	if err := writer.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
