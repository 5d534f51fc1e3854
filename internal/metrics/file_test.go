package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `clientConnected:
  - {time: "00:00", count: 150}
  - {time: "12:00", count: 400}
topicSubscriptions:
  - {time: "00:00", count: 500}
mqttSessions:
  - time: "00:00"
    count: 300
  - time: "04:00"
    count: 400
messagesInOut:
  - {time: "00:00", in: 1000, out: 950}
  - {time: "04:00", in: 1500.5, out: 1400}
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileProvider_Series(t *testing.T) {
	p := NewFileProvider(writeSample(t, sampleYAML), nil)

	clients, err := p.Series(ClientsConnected)
	require.NoError(t, err)
	assert.Equal(t, KindArea, clients.Kind)
	assert.Equal(t, []float64{150, 400}, clients.Values(FieldCount))

	sessions, err := p.Series(MQTTSessions)
	require.NoError(t, err)
	assert.Equal(t, []string{"00:00", "04:00"}, sessions.Times())

	msgs, err := p.Series(MessagesInOut)
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 1500.5}, msgs.Values(FieldIn))
	assert.Equal(t, []float64{950, 1400}, msgs.Values(FieldOut))
}

func TestFileProvider_MissingFile(t *testing.T) {
	buf := logger.NewBufferLogger()
	p := NewFileProvider(filepath.Join(t.TempDir(), "nope.yaml"), buf)

	_, err := p.Series(ClientsConnected)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrData))
	assert.True(t, buf.HasLevel("warn"))
}

func TestFileProvider_NilLoggerUsesDefault(t *testing.T) {
	prev := logger.Default()
	buf := logger.NewBufferLogger()
	logger.SetDefault(buf)
	t.Cleanup(func() { logger.SetDefault(prev) })

	p := NewFileProvider(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	_, err := p.Series(MQTTSessions)
	require.Error(t, err)
	assert.True(t, buf.HasLevel("warn"))
}

func TestFileProvider_MissingMetric(t *testing.T) {
	p := NewFileProvider(writeSample(t, "mqttSessions:\n  - {time: \"00:00\", count: 1}\n"), nil)

	_, err := p.Series(ClientsConnected)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrData))

	_, err = p.Series(MQTTSessions)
	assert.NoError(t, err)
}

func TestFileProvider_MalformedSeries(t *testing.T) {
	p := NewFileProvider(writeSample(t, `mqttSessions:
  - {time: "08:00", count: 1}
  - {time: "04:00", count: 2}
messagesInOut:
  - {time: "00:00", in: 1}
`), nil)

	_, err := p.Series(MQTTSessions)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSeries))

	_, err = p.Series(MessagesInOut)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSeries))
}

func TestFileProvider_NonFiniteValuesAreMalformed(t *testing.T) {
	for _, v := range []string{"NaN", "-Inf", "Inf", ".nan", ".inf", "-.inf"} {
		t.Run(v, func(t *testing.T) {
			p := NewFileProvider(writeSample(t, "clientsConnected:\n  - {time: \"00:00\", count: "+v+"}\n"), nil)

			_, err := p.Series(ClientsConnected)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrSeries), "got %v", err)
			assert.Contains(t, err.Error(), "non-finite")
		})
	}
}

func TestFileProvider_RereadsFile(t *testing.T) {
	path := writeSample(t, "mqttSessions:\n  - {time: \"00:00\", count: 1}\n")
	p := NewFileProvider(path, nil)

	first, err := p.Series(MQTTSessions)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, first.Values(FieldCount))

	require.NoError(t, os.WriteFile(path, []byte("mqttSessions:\n  - {time: \"00:00\", count: 7}\n"), 0o644))

	second, err := p.Series(MQTTSessions)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, second.Values(FieldCount))
	assert.Equal(t, []float64{1}, first.Values(FieldCount), "earlier series is not edited in place")
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown key",
			content: "retainedMessages:\n  - {time: \"00:00\", count: 1}\n",
			wantErr: "unknown metric key",
		},
		{
			name:    "non numeric value",
			content: "mqttSessions:\n  - {time: \"00:00\", count: lots}\n",
			wantErr: "not numeric",
		},
		{
			name:    "point is not a mapping",
			content: "mqttSessions:\n  - 5\n",
			wantErr: "must be a mapping",
		},
		{
			name:    "invalid yaml",
			content: "mqttSessions: [",
			wantErr: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeSample(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteFile_RoundTripsSampleData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(path, SampleData()))

	p := NewFileProvider(path, nil)
	static := NewStaticProvider()

	for _, id := range IDs() {
		want, err := static.Series(id)
		require.NoError(t, err)
		got, err := p.Series(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, string(id))
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `time: "00:00"`)
	assert.Contains(t, string(raw), "clientsConnected:")
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	path := writeSample(t, sampleYAML)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(sampleYAML+"\n"), 0o644))

	select {
	case _, ok := <-w.Changes():
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal after write")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path := writeSample(t, sampleYAML)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer w.Close()

	other := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("x: 1\n"), 0o644))

	select {
	case <-w.Changes():
		t.Fatal("unexpected change signal for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CloseClosesChanges(t *testing.T) {
	w, err := NewWatcher(writeSample(t, sampleYAML), nil)
	require.NoError(t, err)

	require.NoError(t, w.Close())

	_, ok := <-w.Changes()
	assert.False(t, ok)
	assert.NoError(t, w.Close(), "second close is a no-op")
}
