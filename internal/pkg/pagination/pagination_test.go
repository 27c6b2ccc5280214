package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults for zero values", page: 0, limit: 0, wantPage: 1, wantLimit: DefaultLimit, wantOffset: 0},
		{name: "second page", page: 2, limit: 10, wantPage: 2, wantLimit: 10, wantOffset: 10},
		{name: "limit capped", page: 1, limit: 500, wantPage: 1, wantLimit: MaxLimit, wantOffset: 0},
		{name: "negative page", page: -3, limit: 5, wantPage: 1, wantLimit: 5, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestMetaFor(t *testing.T) {
	meta := MetaFor(New(2, 10), 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = MetaFor(New(1, 10), 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
