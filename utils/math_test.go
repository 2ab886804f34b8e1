package utils

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi, 1e-12)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90, 1e-12)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5, 1e-12)
}

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		value, min, max, want float64
	}{
		{1.5, 0, 1, 1},
		{-0.5, 0, 1, 0},
		{0.25, 0, 1, 0.25},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	} {
		test.That(t, Clamp(tc.value, tc.min, tc.max), test.ShouldEqual, tc.want)
	}
}

func TestSampleRandomIntRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := SampleRandomIntRange(-3, 4, r)
		test.That(t, v, test.ShouldBeGreaterThanOrEqualTo, -3)
		test.That(t, v, test.ShouldBeLessThanOrEqualTo, 4)
	}
}

func TestParallelRanges(t *testing.T) {
	n := 1001
	hits := make([]int, n)
	ParallelRanges(n, func(from, to int) {
		for i := from; i < to; i++ {
			hits[i]++
		}
	})
	for _, h := range hits {
		test.That(t, h, test.ShouldEqual, 1)
	}

	called := false
	ParallelRanges(0, func(from, to int) { called = true })
	test.That(t, called, test.ShouldBeFalse)
}
