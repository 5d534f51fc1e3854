package metrics

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/mqttdash/internal/errors"
	"github.com/rileyhilliard/mqttdash/internal/logger"
	"gopkg.in/yaml.v3"
)

// FileProvider serves series from a YAML sample file of the form:
//
//	clientsConnected:
//	  - {time: "00:00", count: 150}
//	messagesInOut:
//	  - {time: "00:00", in: 1000, out: 950}
//
// The file is read on every call so an edited file is picked up as a full
// replacement of each series.
type FileProvider struct {
	path string
	log  logger.Logger
}

// NewFileProvider returns a provider reading from path.
func NewFileProvider(path string, log logger.Logger) *FileProvider {
	if log == nil {
		log = logger.Default()
	}
	return &FileProvider{path: path, log: log}
}

// Path returns the file the provider reads.
func (p *FileProvider) Path() string {
	return p.path
}

// Series implements Provider.
func (p *FileProvider) Series(id MetricID) (MetricSeries, error) {
	def, ok := Lookup(id)
	if !ok {
		return MetricSeries{}, errors.NewDataUnavailable(string(id), fmt.Errorf("unknown metric"))
	}

	data, err := LoadFile(p.path)
	if err != nil {
		p.log.Warn("reading %s for %s: %v", p.path, id, errors.Summary(err))
		return MetricSeries{}, errors.NewDataUnavailable(string(id), err)
	}

	points, ok := data[id]
	if !ok {
		return MetricSeries{}, errors.NewDataUnavailable(string(id),
			fmt.Errorf("%s has no entry for %s", p.path, id))
	}

	s := seriesFor(def, points)
	if err := Validate(s); err != nil {
		p.log.Warn("series %s from %s rejected: %v", id, p.path, errors.Summary(err))
		return MetricSeries{}, err
	}
	p.log.Debug("loaded %s: %d points", id, len(points))
	return s, nil
}

// LoadFile parses a sample data file. Keys are matched with ParseMetricID so
// legacy names are accepted; unknown keys are an error.
func LoadFile(path string) (map[MetricID][]TimeSeriesPoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string][]TimeSeriesPoint
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	out := make(map[MetricID][]TimeSeriesPoint, len(doc))
	for key, points := range doc {
		id, err := ParseMetricID(key)
		if err != nil {
			return nil, fmt.Errorf("%s: unknown metric key %q", path, key)
		}
		out[id] = points
	}
	return out, nil
}

// WriteFile writes data in the format LoadFile reads, metrics in catalog order.
func WriteFile(path string, data map[MetricID][]TimeSeriesPoint) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range IDs() {
		points, ok := data[id]
		if !ok {
			continue
		}
		var val yaml.Node
		if err := val.Encode(points); err != nil {
			return fmt.Errorf("encode %s: %w", id, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(id)},
			&val,
		)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal sample data: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}
