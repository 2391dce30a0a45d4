package registry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

type testColor struct {
	R uint8 `cty:"r"`
	G uint8 `cty:"g"`
	B uint8 `cty:"b"`
	A uint8 `cty:"a"`
}

var testColorType = cty.Object(map[string]cty.Type{
	"r": cty.Number, "g": cty.Number, "b": cty.Number, "a": cty.Number,
})

func colorVal(r, g, b, a int64) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"r": cty.NumberIntVal(r),
		"g": cty.NumberIntVal(g),
		"b": cty.NumberIntVal(b),
		"a": cty.NumberIntVal(a),
	})
}

type commitCall struct {
	WritePath component.EntityPath
	Key       component.TypeKey
	Value     component.RawValue
}

// recordingCommitter records every commit and returns err.
type recordingCommitter struct {
	calls []commitCall
	err   error
}

func (c *recordingCommitter) Commit(_ context.Context, writePath component.EntityPath, key component.TypeKey, value component.RawValue) error {
	c.calls = append(c.calls, commitCall{WritePath: writePath, Key: key, Value: value})
	return c.err
}

// logContext returns a context whose logger writes into the returned buffer.
func logContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}
