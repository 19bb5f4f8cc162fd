package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Grade string

const (
	GradeExplorer  Grade = "EXPLORER"
	GradePilot     Grade = "PILOT"
	GradeCommander Grade = "COMMANDER"
)

// NextGradeMax dipakai sebagai NextGrade kalau user sudah di grade tertinggi.
const NextGradeMax Grade = "MAX"

var (
	ErrGradeNotFound = errors.New("grade not found in threshold list")
	ErrInvalidGrade  = errors.New("invalid grade")
)

func ParseGrade(s string) (Grade, error) {
	switch g := Grade(strings.ToUpper(strings.TrimSpace(s))); g {
	case GradeExplorer, GradePilot, GradeCommander:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
}

// Threshold adalah batas poin minimal sebuah grade (GET /api/grade/point).
type Threshold struct {
	Grade    Grade `json:"type"`
	MinPoint int   `json:"minPoint"`
}

// ShippingRule dari GET /api/grade/shipping.
type ShippingRule struct {
	Grade                 Grade   `json:"type"`
	ShippingFee           float64 `json:"shippingFee"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
}

// UserInfo dari GET /api/me.
type UserInfo struct {
	Point int   `json:"point"`
	Grade Grade `json:"grade"`
}

type Progress struct {
	Grade     Grade   `json:"grade"`
	Point     int     `json:"point"`
	NextGrade Grade   `json:"nextGrade"`
	Remaining int     `json:"remaining"`
	Progress  float64 `json:"progress"` // 0..1
}

func (p Progress) IsMax() bool {
	return p.NextGrade == NextGradeMax
}

// CalculateProgress menghitung progres menuju grade berikutnya.
// thresholds harus urut naik berdasarkan MinPoint; urutan tidak diubah di sini.
func CalculateProgress(point int, grade Grade, thresholds []Threshold) (Progress, error) {
	idx := -1
	for i, t := range thresholds {
		if t.Grade == grade {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Progress{}, fmt.Errorf("%w: %s", ErrGradeNotFound, grade)
	}

	res := Progress{Grade: grade, Point: point}
	if idx == len(thresholds)-1 {
		res.NextGrade = NextGradeMax
		res.Remaining = 0
		res.Progress = 1
		return res, nil
	}

	cur, next := thresholds[idx], thresholds[idx+1]
	res.NextGrade = next.Grade
	res.Remaining = next.MinPoint - point

	span := next.MinPoint - cur.MinPoint
	if span <= 0 {
		res.Progress = 1
		return res, nil
	}
	res.Progress = clamp(float64(point-cur.MinPoint)/float64(span), 0, 1)
	return res, nil
}

// FindShippingRule mencari rule untuk grade; ok=false kalau tidak ada.
func FindShippingRule(rules []ShippingRule, grade Grade) (ShippingRule, bool) {
	for _, r := range rules {
		if r.Grade == grade {
			return r, true
		}
	}
	return ShippingRule{}, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
