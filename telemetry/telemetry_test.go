package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContextDefaultsToNoOp(t *testing.T) {
	collector := FromContext(context.Background())

	// Must be safe to use without any setup.
	timer := collector.Start("noop")
	timer.Child("nested").End()
	timer.End()

	var buf strings.Builder
	collector.Report(&buf)
	assert.Equal(t, "", buf.String())
}

func TestWithCollectorRoundTrip(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)
	assert.Equal[Collector](t, collector, FromContext(ctx))
}

func TestTimingCollectorReport(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("check prices.txt")
	load := root.Child("load")
	load.End()
	parse := root.Child("parse")
	parse.End()
	root.End()

	var buf strings.Builder
	collector.Report(&buf)
	report := buf.String()

	lines := strings.Split(strings.TrimSuffix(report, "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "check prices.txt: "))
	assert.True(t, strings.HasPrefix(lines[1], "├─ load: "))
	assert.True(t, strings.HasPrefix(lines[2], "└─ parse: "))
}

func TestTimingCollectorNestsSequentialStarts(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("root")
	inner := collector.Start("inner")
	inner.End()
	sibling := collector.Start("sibling")
	sibling.End()
	root.End()

	var buf strings.Builder
	collector.Report(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.HasPrefix(lines[1], "├─ inner: "))
	assert.True(t, strings.HasPrefix(lines[2], "└─ sibling: "))
}

func TestEmptyCollectorReportsNothing(t *testing.T) {
	var buf strings.Builder
	NewTimingCollector().Report(&buf)
	assert.Equal(t, "", buf.String())
}
