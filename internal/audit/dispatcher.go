package audit

import (
	"github.com/sirupsen/logrus"
)

// Event describes one admin mutation.
type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID *uint
	Metadata map[string]any
}

// Dispatcher writes admin_action entries to the log. It never fails the caller.
type Dispatcher struct {
	log logrus.FieldLogger
}

func NewDispatcher(log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{log: log}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	fields := logrus.Fields{
		"actor":  ev.Actor,
		"action": ev.Action,
		"entity": ev.Entity,
	}
	if ev.EntityID != nil {
		fields["entity_id"] = *ev.EntityID
	}
	for k, v := range ev.Metadata {
		fields[k] = v
	}
	d.log.WithFields(fields).Info("admin_action")
}
