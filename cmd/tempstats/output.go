package main

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mtraver/tempseries/series"
)

type printer struct {
	w    io.Writer
	json bool
}

func summaryFields(s series.Summary) map[string]any {
	return map[string]any{
		"average":   s.Average(),
		"deviation": s.Deviation(),
		"min":       s.Min(),
		"max":       s.Max(),
	}
}

func toList(x []float64) []any {
	l := make([]any, len(x))
	for i, v := range x {
		l[i] = v
	}
	return l
}

// toJSONProto encodes fields as a JSON object via structpb, so numbers are
// formatted the way every other proto JSON producer formats them.
func toJSONProto(fields map[string]any) (string, error) {
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return "", err
	}

	b, err := protojson.Marshal(st)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (p printer) writeJSON(fields map[string]any) error {
	s, err := toJSONProto(fields)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(p.w, s)
	return err
}

func (p printer) summary(s series.Summary) error {
	if p.json {
		return p.writeJSON(summaryFields(s))
	}

	_, err := fmt.Fprintln(p.w, s)
	return err
}

func (p printer) closest(target, closest float64) error {
	if p.json {
		return p.writeJSON(map[string]any{
			"target":  target,
			"closest": closest,
		})
	}

	_, err := fmt.Fprintf(p.w, "closest to %v: %v\n", target, closest)
	return err
}

func (p printer) filtered(op string, threshold float64, readings []float64) error {
	if p.json {
		return p.writeJSON(map[string]any{
			"threshold": threshold,
			"readings":  toList(readings),
		})
	}

	_, err := fmt.Fprintf(p.w, "%s %v: %v\n", op, threshold, readings)
	return err
}

func (p printer) appended(count int, s series.Summary) error {
	if p.json {
		fields := summaryFields(s)
		fields["count"] = count
		return p.writeJSON(fields)
	}

	_, err := fmt.Fprintf(p.w, "count: %d\n%v\n", count, s)
	return err
}

func (p printer) sampled(sensorName string, readings []float64, s series.Summary) error {
	if p.json {
		fields := summaryFields(s)
		fields["sensor"] = sensorName
		fields["readings"] = toList(readings)
		return p.writeJSON(fields)
	}

	_, err := fmt.Fprintf(p.w, "%s: %v\n%v\n", sensorName, readings, s)
	return err
}
