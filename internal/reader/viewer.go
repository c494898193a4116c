package reader

import (
	"fmt"

	"github.com/msumanth960/epaper/internal/models"
)

const (
	MinZoom     = 50
	MaxZoom     = 200
	DefaultZoom = 100
	ZoomStep    = 10
)

// Viewer - состояние просмотра выпуска: страница и масштаб всегда в допустимых границах
type Viewer struct {
	edition models.Edition
	page    int
	zoom    int
}

// Open создает просмотрщик. Нулевые page и zoom означают значения по умолчанию,
// выход за границы обрезается.
func Open(edition models.Edition, page, zoom int) *Viewer {
	if page == 0 {
		page = 1
	}
	if zoom == 0 {
		zoom = DefaultZoom
	}
	v := &Viewer{edition: edition}
	v.GoTo(page)
	v.SetZoom(zoom)
	return v
}

func (v *Viewer) Page() int { return v.page }
func (v *Viewer) Zoom() int { return v.zoom }

func (v *Viewer) PageCount() int {
	if v.edition.PageCount < 1 {
		return 1
	}
	return v.edition.PageCount
}

func (v *Viewer) GoTo(page int) {
	v.page = clamp(page, 1, v.PageCount())
}

func (v *Viewer) SetZoom(zoom int) {
	v.zoom = clamp(zoom, MinZoom, MaxZoom)
}

func (v *Viewer) Next()    { v.GoTo(v.page + 1) }
func (v *Viewer) Prev()    { v.GoTo(v.page - 1) }
func (v *Viewer) ZoomIn()  { v.SetZoom(v.zoom + ZoomStep) }
func (v *Viewer) ZoomOut() { v.SetZoom(v.zoom - ZoomStep) }

func (v *Viewer) HasPrev() bool { return v.page > 1 }
func (v *Viewer) HasNext() bool { return v.page < v.PageCount() }

// DocumentURL возвращает адрес документа с якорем страницы и масштаба
func (v *Viewer) DocumentURL() string {
	return fmt.Sprintf("%s#page=%d&zoom=%d", v.edition.DocumentURL, v.page, v.zoom)
}

// View собирает состояние для ответа клиенту
func (v *Viewer) View(related []models.Incident) *models.ReaderView {
	return &models.ReaderView{
		Edition:          v.edition,
		Page:             v.page,
		Zoom:             v.zoom,
		DocumentURL:      v.DocumentURL(),
		HasPrev:          v.HasPrev(),
		HasNext:          v.HasNext(),
		RelatedIncidents: related,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
