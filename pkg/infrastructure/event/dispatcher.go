package event

import (
	log "github.com/sirupsen/logrus"

	"inventoryservice/pkg/domain/service"
)

// LogDispatcher records domain events in the process log. A broker-backed
// dispatcher can replace it without touching the services.
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Dispatch(event service.Event) error {
	log.WithField("event", event.Type()).Info("domain event dispatched")
	return nil
}
