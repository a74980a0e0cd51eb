package background

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"orderprocessing/pkg/logger"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL возвращает интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info возвращает имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

var ErrInvalidTTL = errors.New("task TTL must be positive")

// Worker запускает задачи в отдельных горутинах под общим errgroup.
// Первый запуск каждой задачи происходит сразу после Start, дальше - по тикеру.
type Worker struct {
	log   handlerLogger
	tasks []Task
	group *errgroup.Group
}

func New(log handlerLogger, tasks []Task) (*Worker, error) {
	for _, task := range tasks {
		if task.TTL() <= 0 {
			return nil, fmt.Errorf("%s: %w", task.Info(), ErrInvalidTTL)
		}
	}

	return &Worker{
		log:   log,
		tasks: tasks,
	}, nil
}

// Start запускает задачи и сразу возвращает управление. Задачи останавливаются при отмене ctx.
func (w *Worker) Start(ctx context.Context) {
	group, groupCtx := errgroup.WithContext(ctx)
	w.group = group

	for _, task := range w.tasks {
		group.Go(func() error {
			w.run(groupCtx, task)
			return nil
		})
	}
}

// Wait блокируется, пока все задачи не остановятся.
func (w *Worker) Wait() error {
	if w.group == nil {
		return nil
	}
	return w.group.Wait()
}

func (w *Worker) run(ctx context.Context, task Task) {
	taskLog := w.log.With(
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", task.TTL()),
	)
	taskLog.Info("Starting periodic execution")

	ticker := time.NewTicker(task.TTL())
	defer ticker.Stop()

	w.executeSafely(ctx, taskLog, task)
	for {
		select {
		case <-ctx.Done():
			taskLog.Warn("Stopping task (context cancelled)")
			return
		case <-ticker.C:
			w.executeSafely(ctx, taskLog, task)
		}
	}
}

func (w *Worker) executeSafely(ctx context.Context, log logger.Logger, task Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Background task panic",
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error("Background task failed",
			logger.NewField("error", err),
		)
	}
}
