package model

import (
	"math"
	"sort"
	"strings"
)

// Dimension is one axis of the RIASEC interest profile
type Dimension string

const (
	Realistic     Dimension = "realistic"
	Investigative Dimension = "investigative"
	Artistic      Dimension = "artistic"
	Social        Dimension = "social"
	Enterprising  Dimension = "enterprising"
	Conventional  Dimension = "conventional"
)

// MaxDimensionScore bounds every dimension of an aggregated ScoreVector.
const MaxDimensionScore = 100.0

// Dimensions lists the six dimensions in their fixed order. Every sum, tie-break
// and iteration over weights follows this order.
var Dimensions = []Dimension{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

// Valid reports whether d is one of the six known dimensions
func (d Dimension) Valid() bool {
	return d.index() >= 0
}

// Title returns the capitalised display name
func (d Dimension) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

func (d Dimension) index() int {
	for i, known := range Dimensions {
		if known == d {
			return i
		}
	}
	return -1
}

// Weights tags a question option, slider or course with per-dimension values.
type Weights map[Dimension]float64

// Vector converts weights into a ScoreVector, ignoring unknown dimensions
func (w Weights) Vector() ScoreVector {
	var v ScoreVector
	for _, d := range Dimensions {
		v = v.Add(d, w[d])
	}
	return v
}

// ScoreVector is the six-dimensional interest profile. It is a value type:
// every operation returns a new vector.
type ScoreVector struct {
	Realistic     float64 `json:"realistic" bson:"realistic"`
	Investigative float64 `json:"investigative" bson:"investigative"`
	Artistic      float64 `json:"artistic" bson:"artistic"`
	Social        float64 `json:"social" bson:"social"`
	Enterprising  float64 `json:"enterprising" bson:"enterprising"`
	Conventional  float64 `json:"conventional" bson:"conventional"`
}

// Get returns the value of one dimension (0 for unknown dimensions)
func (v ScoreVector) Get(d Dimension) float64 {
	switch d {
	case Realistic:
		return v.Realistic
	case Investigative:
		return v.Investigative
	case Artistic:
		return v.Artistic
	case Social:
		return v.Social
	case Enterprising:
		return v.Enterprising
	case Conventional:
		return v.Conventional
	}
	return 0
}

// Add returns a copy of v with x added to dimension d
func (v ScoreVector) Add(d Dimension, x float64) ScoreVector {
	switch d {
	case Realistic:
		v.Realistic += x
	case Investigative:
		v.Investigative += x
	case Artistic:
		v.Artistic += x
	case Social:
		v.Social += x
	case Enterprising:
		v.Enterprising += x
	case Conventional:
		v.Conventional += x
	}
	return v
}

// Plus adds two vectors dimension by dimension
func (v ScoreVector) Plus(o ScoreVector) ScoreVector {
	for _, d := range Dimensions {
		v = v.Add(d, o.Get(d))
	}
	return v
}

// Clamp bounds every dimension to [0, max]
func (v ScoreVector) Clamp(max float64) ScoreVector {
	var out ScoreVector
	for _, d := range Dimensions {
		out = out.Add(d, math.Min(math.Max(v.Get(d), 0), max))
	}
	return out
}

// Rounded rounds every dimension to one decimal place
func (v ScoreVector) Rounded() ScoreVector {
	var out ScoreVector
	for _, d := range Dimensions {
		out = out.Add(d, math.Round(v.Get(d)*10)/10)
	}
	return out
}

// Norm is the Euclidean length of the vector
func (v ScoreVector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dot is the inner product, summed in dimension order
func (v ScoreVector) Dot(o ScoreVector) float64 {
	var sum float64
	for _, d := range Dimensions {
		sum += v.Get(d) * o.Get(d)
	}
	return sum
}

// IsZero reports whether every dimension is zero
func (v ScoreVector) IsZero() bool {
	return v == ScoreVector{}
}

// Top returns up to n dimensions with a positive value, highest first.
// Equal values keep the fixed dimension order.
func (v ScoreVector) Top(n int) []Dimension {
	dims := make([]Dimension, 0, len(Dimensions))
	for _, d := range Dimensions {
		if v.Get(d) > 0 {
			dims = append(dims, d)
		}
	}
	sort.SliceStable(dims, func(i, j int) bool {
		return v.Get(dims[i]) > v.Get(dims[j])
	})
	if n >= 0 && len(dims) > n {
		dims = dims[:n]
	}
	return dims
}
