package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		startFrom int
		count     int
		begin     int
		end       int
	}{
		{name: "first page", total: 6, startFrom: 0, count: 2, begin: 4, end: 6},
		{name: "second page", total: 6, startFrom: 2, count: 2, begin: 2, end: 4},
		{name: "skip beyond range clamps to oldest page", total: 6, startFrom: 10, count: 2, begin: 0, end: 2},
		{name: "count beyond range returns everything", total: 3, startFrom: 0, count: 10, begin: 0, end: 3},
		{name: "exact last page", total: 6, startFrom: 4, count: 2, begin: 0, end: 2},
		{name: "empty range", total: 0, startFrom: 0, count: 5, begin: 0, end: 0},
		{name: "zero count", total: 6, startFrom: 0, count: 0, begin: 0, end: 0},
		{name: "negative skip treated as zero", total: 6, startFrom: -3, count: 2, begin: 4, end: 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			begin, end := pageBounds(tc.total, tc.startFrom, tc.count)
			assert.Equal(t, tc.begin, begin)
			assert.Equal(t, tc.end, end)
			assert.GreaterOrEqual(t, end, begin)
			if tc.count > 0 {
				assert.LessOrEqual(t, end-begin, tc.count)
			}
		})
	}
}
