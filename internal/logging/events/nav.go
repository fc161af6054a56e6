package events

import "github.com/RolfLobo/dembrandt/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Open(domain string) {
	logging.Trace("nav.open", map[string]interface{}{"domain": domain})
}

func (NavTracer) Home() {
	logging.Trace("nav.home", nil)
}

func (NavTracer) Step(direction string, domain string) {
	logging.Trace("nav.step", map[string]interface{}{"direction": direction, "domain": domain})
}

func (NavTracer) LocationChange(raw string) {
	logging.Trace("nav.location", map[string]interface{}{"value": raw})
}

func (NavTracer) Suppressed(raw string) {
	logging.Trace("nav.location.suppressed", map[string]interface{}{"value": raw})
}

func (NavTracer) Unresolved(domain string) {
	logging.Trace("nav.unresolved", map[string]interface{}{"domain": domain})
}

func (NavTracer) HistoryBack(moved bool) {
	logging.Trace("nav.history.back", map[string]interface{}{"moved": moved})
}

func (NavTracer) HistoryForward(moved bool) {
	logging.Trace("nav.history.forward", map[string]interface{}{"moved": moved})
}
