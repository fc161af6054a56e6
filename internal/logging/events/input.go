package events

import "github.com/RolfLobo/dembrandt/internal/logging"

type InputTracer struct{}

type ThemeTracer struct{}

var (
	Input = InputTracer{}
	Theme = ThemeTracer{}
)

func (InputTracer) Key(mode, key string) {
	logging.Trace("input.key", map[string]interface{}{"mode": mode, "key": key})
}

func (InputTracer) GridFocus(index int) {
	logging.Trace("input.grid.focus", map[string]interface{}{"index": index})
}

func (InputTracer) SelectorOpen(index, count int) {
	logging.Trace("input.selector.open", map[string]interface{}{"index": index, "count": count})
}

func (InputTracer) SelectorFocus(index int) {
	logging.Trace("input.selector.focus", map[string]interface{}{"index": index})
}

func (InputTracer) SelectorClose(confirmed bool) {
	logging.Trace("input.selector.close", map[string]interface{}{"confirmed": confirmed})
}

func (InputTracer) FilterChange(query string) {
	logging.Trace("input.filter", map[string]interface{}{"query": query})
}

func (ThemeTracer) Switch(name string) {
	logging.Trace("theme.switch", map[string]interface{}{"name": name})
}
