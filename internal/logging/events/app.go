package events

import "github.com/RolfLobo/dembrandt/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Serve(addr string) {
	logging.Trace("app.serve", map[string]interface{}{"addr": addr})
}
