package maple

import "time"

// Sample is one (x, y) data point in a dataset's own units, not pixels. The
// x axis only needs to be totally ordered and subtractable, so date-like
// domains are carried as float64 via TimeSample/SampleTime.
type Sample struct {
	X, Y float64
}

// TimeSample builds a sample whose x value is a calendar instant.
func TimeSample(t time.Time, y float64) Sample {
	return Sample{X: float64(t.Unix()), Y: y}
}

// SampleTime recovers the calendar instant from a time-valued x.
func SampleTime(x float64) time.Time {
	return time.Unix(int64(x), 0).UTC()
}

// Dataset is an ordered sequence of samples plus the styling used when a
// graph plots it. MarkerColor == ColorNone suppresses markers; LineColor ==
// ColorNone suppresses the connecting polyline.
type Dataset struct {
	Samples     []Sample
	MarkerColor string
	LineColor   string
}

// NewDataset creates a dataset. Samples should be ordered by x.
func NewDataset(samples []Sample, markerColor, lineColor string) *Dataset {
	return &Dataset{Samples: samples, MarkerColor: markerColor, LineColor: lineColor}
}

// Bounds queries are undefined on an empty dataset: callers must guarantee
// at least one sample before asking.

// MinX returns the smallest x value. Panics if the dataset is empty.
func (d *Dataset) MinX() float64 {
	d.mustNotBeEmpty()
	min := d.Samples[0].X
	for _, s := range d.Samples[1:] {
		if s.X < min {
			min = s.X
		}
	}
	return min
}

// MaxX returns the largest x value. Panics if the dataset is empty.
func (d *Dataset) MaxX() float64 {
	d.mustNotBeEmpty()
	max := d.Samples[0].X
	for _, s := range d.Samples[1:] {
		if s.X > max {
			max = s.X
		}
	}
	return max
}

// MinY returns the smallest y value. Panics if the dataset is empty.
func (d *Dataset) MinY() float64 {
	d.mustNotBeEmpty()
	min := d.Samples[0].Y
	for _, s := range d.Samples[1:] {
		if s.Y < min {
			min = s.Y
		}
	}
	return min
}

// MaxY returns the largest y value. Panics if the dataset is empty.
func (d *Dataset) MaxY() float64 {
	d.mustNotBeEmpty()
	max := d.Samples[0].Y
	for _, s := range d.Samples[1:] {
		if s.Y > max {
			max = s.Y
		}
	}
	return max
}

// XBounds returns the dataset's domain as a Range.
func (d *Dataset) XBounds() Range {
	return Range{Min: d.MinX(), Max: d.MaxX()}
}

// YBounds returns the dataset's value range as a Range.
func (d *Dataset) YBounds() Range {
	return Range{Min: d.MinY(), Max: d.MaxY()}
}

func (d *Dataset) mustNotBeEmpty() {
	if len(d.Samples) == 0 {
		panic("maple: bounds query on empty dataset")
	}
}
