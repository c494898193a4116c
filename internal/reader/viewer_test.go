package reader

import (
	"testing"

	"github.com/msumanth960/epaper/internal/models"
	"github.com/stretchr/testify/assert"
)

var edition = models.Edition{
	ID:          "e1",
	DocumentURL: "/dummy/hyderabad-morning.pdf",
	PageCount:   12,
}

func TestOpen_Defaults(t *testing.T) {
	v := Open(edition, 0, 0)

	assert.Equal(t, 1, v.Page())
	assert.Equal(t, DefaultZoom, v.Zoom())
	assert.False(t, v.HasPrev())
	assert.True(t, v.HasNext())
	assert.Equal(t, "/dummy/hyderabad-morning.pdf#page=1&zoom=100", v.DocumentURL())
}

func TestOpen_ClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name            string
		page, zoom      int
		wantPage, wantZ int
	}{
		{name: "page past end", page: 40, zoom: 100, wantPage: 12, wantZ: 100},
		{name: "negative page", page: -3, zoom: 100, wantPage: 1, wantZ: 100},
		{name: "zoom too large", page: 2, zoom: 500, wantPage: 2, wantZ: MaxZoom},
		{name: "zoom too small", page: 2, zoom: 10, wantPage: 2, wantZ: MinZoom},
		{name: "in range", page: 7, zoom: 130, wantPage: 7, wantZ: 130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Open(edition, tt.page, tt.zoom)
			assert.Equal(t, tt.wantPage, v.Page())
			assert.Equal(t, tt.wantZ, v.Zoom())
		})
	}
}

func TestStepping_StaysInBounds(t *testing.T) {
	v := Open(edition, 12, 200)

	v.Next()
	assert.Equal(t, 12, v.Page())
	assert.False(t, v.HasNext())

	v.ZoomIn()
	assert.Equal(t, 200, v.Zoom())

	v.Prev()
	assert.Equal(t, 11, v.Page())

	for i := 0; i < 30; i++ {
		v.ZoomOut()
	}
	assert.Equal(t, MinZoom, v.Zoom())

	for i := 0; i < 30; i++ {
		v.Prev()
	}
	assert.Equal(t, 1, v.Page())
}

func TestSinglePageEdition(t *testing.T) {
	v := Open(models.Edition{PageCount: 1}, 5, 0)

	assert.Equal(t, 1, v.Page())
	assert.False(t, v.HasPrev())
	assert.False(t, v.HasNext())
}

func TestView(t *testing.T) {
	related := []models.Incident{{ID: "i1"}}

	view := Open(edition, 3, 120).View(related)

	assert.Equal(t, 3, view.Page)
	assert.Equal(t, 120, view.Zoom)
	assert.Equal(t, "/dummy/hyderabad-morning.pdf#page=3&zoom=120", view.DocumentURL)
	assert.True(t, view.HasPrev)
	assert.True(t, view.HasNext)
	assert.Equal(t, related, view.RelatedIncidents)
}
