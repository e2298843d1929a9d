package replay

import (
	"sync"

	"github.com/google/uuid"

	"github.com/7vars/observe"
	"github.com/7vars/observe/request"
)

// Respond answers a single replayed request.
type Respond func(request.Request) observe.Status

type Summary struct {
	RunID        string
	Requests     int
	Statuses     map[observe.Status]int
	Completed    bool
	Unsubscribed bool
}

// Run replays requests through an observable and tallies the statuses
// respond returns.
func Run(requests []request.Request, respond Respond, logger observe.Logger) Summary {
	if logger == nil {
		logger = observe.DiscardLogger()
	}
	summary := Summary{
		RunID:    uuid.New().String(),
		Statuses: make(map[observe.Status]int),
	}
	log := logger.WithField("run", summary.RunID)

	var m sync.Mutex
	src := observe.New(func(o *observe.Observer[request.Request]) observe.Teardown {
		inner := observe.From(requests, observe.WithLogger(log)).Subscribe(observe.Handlers[request.Request]{
			OnNext:     o.Next,
			OnError:    o.Error,
			OnComplete: o.Complete,
		})
		return func() {
			inner.Unsubscribe()
			m.Lock()
			summary.Unsubscribed = true
			m.Unlock()
			log.Debug("replay unsubscribed")
		}
	})

	sub := src.Subscribe(observe.Handlers[request.Request]{
		OnNext: func(r request.Request) observe.Status {
			status := respond(r)
			m.Lock()
			summary.Requests++
			summary.Statuses[status]++
			m.Unlock()
			log.With(map[string]interface{}{
				"method": r.Method,
				"host":   r.Host,
				"path":   r.Path,
				"status": int(status),
			}).Info("request")
			return status
		},
		OnComplete: func() {
			m.Lock()
			summary.Completed = true
			m.Unlock()
			log.Infof("replayed %d requests", len(requests))
		},
	})
	sub.Unsubscribe()

	m.Lock()
	defer m.Unlock()
	return summary
}

// Respond200 answers every request with 200.
func Respond200(request.Request) observe.Status {
	return request.StatusOK
}
