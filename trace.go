package flow

import (
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
)

// traceClock timestamps trace lines.
var traceClock clockwork.Clock = clockwork.NewRealClock()

// TraceFunc defines the function prototype of a tracing function.
// Per flow functions can be configured using WithTraceFunc.
//
// Any printf style logger method fits, for example the Debugf method of a
// zap.SugaredLogger.
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages to
// stderr.  DefaultTracer can be replaced by another tracing function to effect
// all flows.
var DefaultTracer TraceFunc = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

type tracer interface {
	msg(format string, v ...any)
	end()
}

type flowTracer struct {
	begin       time.Time
	description string
	id          uint32
	traceFunc   TraceFunc
}

func newTracer(id uint32, description string, f TraceFunc, v ...any) *flowTracer {
	if f == nil {
		f = DefaultTracer
	}

	t := &flowTracer{
		description: fmt.Sprintf(description, v...),
		id:          id,
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *flowTracer) start() {
	t.begin = traceClock.Now()
	t.traceFunc("%s: START [flow #%d] %s", t.begin.Format(time.RFC3339), t.id, t.description)
}

func (t *flowTracer) msg(format string, v ...any) {
	var args []any = []any{
		traceClock.Now().Format(time.RFC3339), t.id, t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [flow #%d] %s: "+format, args...)
}

func (t *flowTracer) end() {
	now := traceClock.Now()
	t.traceFunc("%s: END [flow #%d] %s (%s)", now.Format(time.RFC3339), t.id, t.description, now.Sub(t.begin))
}

type nullTracer struct{}

func (t nullTracer) msg(string, ...any) {}
func (t nullTracer) end()               {}
