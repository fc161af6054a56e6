package events

import "github.com/RolfLobo/dembrandt/internal/logging"

type FetchTracer struct{}

var Fetch = FetchTracer{}

func (FetchTracer) Start(domain, filename string) {
	logging.Trace("fetch.start", map[string]interface{}{"domain": domain, "filename": filename})
}

func (FetchTracer) Loaded(domain string) {
	logging.Trace("fetch.loaded", map[string]interface{}{"domain": domain})
}

func (FetchTracer) Failed(domain string, err error) {
	payload := map[string]interface{}{"domain": domain}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("fetch.error", payload)
}

func (FetchTracer) Stale(domain, current string) {
	logging.Trace("fetch.stale", map[string]interface{}{"domain": domain, "current": current})
}
