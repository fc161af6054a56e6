package events

import "github.com/RolfLobo/dembrandt/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) RefreshStart(origin string) {
	logging.Trace("catalog.refresh.start", map[string]interface{}{"origin": origin})
}

func (CatalogTracer) Refreshed(count int) {
	logging.Trace("catalog.refresh.done", map[string]interface{}{"count": count})
}

func (CatalogTracer) RefreshFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.refresh.error", map[string]interface{}{"error": err.Error()})
}

func (CatalogTracer) ChangeHint(path string) {
	logging.Trace("catalog.change-hint", map[string]interface{}{"path": path})
}
