package catalog

import (
	"fmt"
	"slices"
	"time"

	"github.com/msumanth960/epaper/internal/models"
)

// DefaultLatestLimit - количество инцидентов в ленте "последние" по умолчанию
const DefaultLatestLimit = 5

// Catalog - неизменяемый справочник штатов, выпусков и инцидентов.
// Все методы возвращают копии, исходные коллекции не изменяются.
type Catalog struct {
	regions   []models.Region
	editions  []models.Edition
	incidents []models.Incident

	regionIdx map[string]int
}

// New создает каталог и проверяет ссылочную целостность данных
func New(regions []models.Region, editions []models.Edition, incidents []models.Incident) (*Catalog, error) {
	c := &Catalog{
		regions:   make([]models.Region, 0, len(regions)),
		editions:  slices.Clone(editions),
		incidents: slices.Clone(incidents),
		regionIdx: make(map[string]int, len(regions)),
	}

	for _, r := range regions {
		if _, dup := c.regionIdx[r.Name]; dup {
			return nil, fmt.Errorf("duplicate region %q", r.Name)
		}
		seen := make(map[string]struct{}, len(r.Districts))
		for _, d := range r.Districts {
			if _, dup := seen[d]; dup {
				return nil, fmt.Errorf("duplicate district %q in region %q", d, r.Name)
			}
			seen[d] = struct{}{}
		}
		c.regionIdx[r.Name] = len(c.regions)
		c.regions = append(c.regions, models.Region{Name: r.Name, Districts: slices.Clone(r.Districts)})
	}

	editionIDs := make(map[string]struct{}, len(editions))
	for _, e := range c.editions {
		if _, dup := editionIDs[e.ID]; dup {
			return nil, fmt.Errorf("duplicate edition id %q", e.ID)
		}
		editionIDs[e.ID] = struct{}{}
		if !c.HasDistrict(e.State, e.District) {
			return nil, fmt.Errorf("edition %s: unknown location %s/%s", e.ID, e.State, e.District)
		}
		if e.PageCount < 1 {
			return nil, fmt.Errorf("edition %s: page count must be positive, got %d", e.ID, e.PageCount)
		}
		if _, err := time.Parse(models.DateLayout, e.Date); err != nil {
			return nil, fmt.Errorf("edition %s: invalid date %q: %w", e.ID, e.Date, err)
		}
	}

	incidentIDs := make(map[string]struct{}, len(incidents))
	for _, inc := range c.incidents {
		if _, dup := incidentIDs[inc.ID]; dup {
			return nil, fmt.Errorf("duplicate incident id %q", inc.ID)
		}
		incidentIDs[inc.ID] = struct{}{}
		if !c.HasDistrict(inc.State, inc.District) {
			return nil, fmt.Errorf("incident %s: unknown location %s/%s", inc.ID, inc.State, inc.District)
		}
		if _, err := inc.Time(); err != nil {
			return nil, fmt.Errorf("incident %s: invalid timestamp %q: %w", inc.ID, inc.Timestamp, err)
		}
	}

	return c, nil
}

// Regions возвращает все штаты в исходном порядке
func (c *Catalog) Regions() []models.Region {
	out := make([]models.Region, len(c.regions))
	for i, r := range c.regions {
		out[i] = models.Region{Name: r.Name, Districts: slices.Clone(r.Districts)}
	}
	return out
}

func (c *Catalog) Editions() []models.Edition {
	return slices.Clone(c.editions)
}

func (c *Catalog) Incidents() []models.Incident {
	return slices.Clone(c.incidents)
}

// DistrictsOf возвращает округа штата или пустой список, если штат не найден
func (c *Catalog) DistrictsOf(region string) []string {
	idx, ok := c.regionIdx[region]
	if !ok {
		return []string{}
	}
	return slices.Clone(c.regions[idx].Districts)
}

// HasDistrict проверяет, что пара штат/округ существует в каталоге
func (c *Catalog) HasDistrict(region, district string) bool {
	idx, ok := c.regionIdx[region]
	if !ok {
		return false
	}
	return slices.Contains(c.regions[idx].Districts, district)
}

// EditionsOnDate возвращает выпуски с точным совпадением даты
func (c *Catalog) EditionsOnDate(date string) []models.Edition {
	out := make([]models.Edition, 0)
	for _, e := range c.editions {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// LatestIncidents возвращает инциденты от новых к старым.
// Сортировка стабильная: при равных метках сохраняется порядок каталога.
func (c *Catalog) LatestIncidents(limit int) []models.Incident {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	return Latest(c.incidents, limit)
}

// Latest сортирует копию списка по убыванию времени и обрезает до limit
func Latest(incidents []models.Incident, limit int) []models.Incident {
	type keyed struct {
		at  time.Time
		inc models.Incident
	}
	sorted := make([]keyed, len(incidents))
	for i, inc := range incidents {
		at, _ := inc.Time()
		sorted[i] = keyed{at: at, inc: inc}
	}
	slices.SortStableFunc(sorted, func(a, b keyed) int {
		return b.at.Compare(a.at)
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	out := make([]models.Incident, limit)
	for i := range out {
		out[i] = sorted[i].inc
	}
	return out
}

// IncidentsAt возвращает инциденты с точным совпадением штата и округа
func (c *Catalog) IncidentsAt(region, district string) []models.Incident {
	out := make([]models.Incident, 0)
	for _, inc := range c.incidents {
		if inc.State == region && inc.District == district {
			out = append(out, inc)
		}
	}
	return out
}

// EditionByID ищет выпуск по идентификатору
func (c *Catalog) EditionByID(id string) (models.Edition, bool) {
	for _, e := range c.editions {
		if e.ID == id {
			return e, true
		}
	}
	return models.Edition{}, false
}

// IncidentByID ищет инцидент по идентификатору
func (c *Catalog) IncidentByID(id string) (models.Incident, bool) {
	for _, inc := range c.incidents {
		if inc.ID == id {
			return inc, true
		}
	}
	return models.Incident{}, false
}
