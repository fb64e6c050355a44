// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/iros-gateway/internal/adapter"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/models"
)

// RegistrationWorker announces the application and its sections to the user
// service once at startup. The call is best effort: a failure is logged and
// recorded in Status, and it is never retried.
type RegistrationWorker struct {
	users  adapter.UserAdapter
	logger *logger.Logger
	now    func() time.Time

	once sync.Once
	done chan struct{}

	mu     sync.RWMutex
	status models.RegistrationStatus
}

func NewRegistrationWorker(users adapter.UserAdapter, logger *logger.Logger) *RegistrationWorker {
	return &RegistrationWorker{
		users:  users,
		logger: logger,
		now:    time.Now,
		done:   make(chan struct{}),
		status: models.RegistrationStatus{State: models.RegistrationPending, UpdatedAt: time.Now()},
	}
}

// Run starts the registration in its own goroutine. Subsequent calls are
// no-ops.
func (w *RegistrationWorker) Run(ctx context.Context) {
	w.once.Do(func() {
		go w.register(ctx)
	})
}

// Done is closed once the registration call has finished.
func (w *RegistrationWorker) Done() <-chan struct{} {
	return w.done
}

// Status returns the current registration outcome.
func (w *RegistrationWorker) Status() models.RegistrationStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.status
}

func (w *RegistrationWorker) register(ctx context.Context) {
	defer close(w.done)

	status := models.RegistrationStatus{State: models.RegistrationSucceeded}
	if err := w.users.RegisterApp(ctx); err != nil {
		w.logger.Error().Err(err).Msg("failed to register app on user service")
		status = models.RegistrationStatus{State: models.RegistrationFailed, Error: err.Error()}
	} else {
		w.logger.Info().Msg("app registered on user service")
	}
	status.UpdatedAt = w.now()

	w.mu.Lock()
	w.status = status
	w.mu.Unlock()
}
