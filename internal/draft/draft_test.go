package draft

import (
	"errors"
	"testing"
	"time"

	"github.com/msumanth960/epaper/internal/catalog"
	"github.com/msumanth960/epaper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocations(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]models.Region{
		{Name: "Telangana", Districts: []string{"Hyderabad", "Warangal"}},
		{Name: "Andhra Pradesh", Districts: []string{"Visakhapatnam"}},
	}, nil, nil)
	require.NoError(t, err)
	return c
}

func fields(r Result) []string {
	out := make([]string, len(r.Errors))
	for i, fe := range r.Errors {
		out[i] = fe.Field
	}
	return out
}

func validIncident() IncidentDraft {
	return IncidentDraft{
		Title:       "Road blocked",
		State:       "Telangana",
		District:    "Hyderabad",
		Category:    models.CategoryAccident,
		Description: "Truck overturned near the flyover",
		Confirmed:   true,
	}
}

func TestIncidentDraft_Valid(t *testing.T) {
	res := NewValidator().Incident(validIncident(), newLocations(t))

	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors)
}

func TestIncidentDraft_MissingFields(t *testing.T) {
	res := NewValidator().Incident(IncidentDraft{}, newLocations(t))

	require.False(t, res.Valid())
	assert.ElementsMatch(t,
		[]string{"title", "state", "district", "category", "description", "confirmed"},
		fields(res))
	for _, fe := range res.Errors {
		assert.Equal(t, "required", fe.Tag)
		assert.Contains(t, fe.Message, "is required")
	}
}

func TestIncidentDraft_UnknownCategory(t *testing.T) {
	d := validIncident()
	d.Category = "Sports"

	res := NewValidator().Incident(d, newLocations(t))

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "category", res.Errors[0].Field)
	assert.Equal(t, "oneof", res.Errors[0].Tag)
	assert.Contains(t, res.Errors[0].Message, "Accident, Crime, Politics, Weather, Other")
}

func TestIncidentDraft_InvalidSelection(t *testing.T) {
	v := NewValidator()
	locs := newLocations(t)

	d := validIncident()
	d.District = "Visakhapatnam"
	res := v.Incident(d, locs)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "district", res.Errors[0].Field)

	d = validIncident()
	d.State = "Gujarat"
	res = v.Incident(d, locs)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "state", res.Errors[0].Field)
}

func TestIncidentDraft_SetStateResetsDistrict(t *testing.T) {
	d := validIncident()

	d.SetState("Andhra Pradesh")

	assert.Equal(t, "Andhra Pradesh", d.State)
	assert.Empty(t, d.District)

	res := NewValidator().Incident(d, newLocations(t))
	assert.Equal(t, []string{"district"}, fields(res))
}

func TestIncidentDraft_BlankText(t *testing.T) {
	d := validIncident()
	d.Title = "   "
	d.Description = "  "

	res := NewValidator().Incident(d, newLocations(t))

	require.False(t, res.Valid())
	assert.ElementsMatch(t, []string{"title", "description"}, fields(res))
	for _, fe := range res.Errors {
		assert.Equal(t, "notblank", fe.Tag)
		assert.Contains(t, fe.Message, "must not be blank")
	}
}

func TestIncidentDraft_Build(t *testing.T) {
	at := time.Date(2025, 11, 24, 18, 45, 12, 0, time.FixedZone("IST", 5*3600+1800))

	inc := validIncident().Incident("inc-1", at)

	assert.Equal(t, "inc-1", inc.ID)
	assert.Equal(t, "2025-11-24T13:15:12", inc.Timestamp)
	assert.Equal(t, models.StatusReported, inc.Status)
	assert.Equal(t, models.ReportTypeCitizen, inc.ReportType)
}

func TestEditionDraft_Validation(t *testing.T) {
	v := NewValidator()
	locs := newLocations(t)

	tests := []struct {
		name  string
		draft EditionDraft
		want  []string
	}{
		{
			name:  "valid",
			draft: EditionDraft{Date: "2025-11-24", State: "Telangana", District: "Warangal", EditionName: "Warangal Times"},
			want:  []string{},
		},
		{
			name:  "empty",
			draft: EditionDraft{},
			want:  []string{"date", "state", "district", "edition_name"},
		},
		{
			name:  "bad date",
			draft: EditionDraft{Date: "24/11/2025", State: "Telangana", District: "Warangal", EditionName: "X"},
			want:  []string{"date"},
		},
		{
			name:  "blank name",
			draft: EditionDraft{Date: "2025-11-24", State: "Telangana", District: "Hyderabad", EditionName: "   "},
			want:  []string{"edition_name"},
		},
		{
			name:  "negative pages",
			draft: EditionDraft{Date: "2025-11-24", State: "Telangana", District: "Warangal", EditionName: "X", PageCount: -1},
			want:  []string{"page_count"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Edition(tt.draft, locs)
			assert.ElementsMatch(t, tt.want, fields(res))
		})
	}
}

func TestEditionDraft_Build(t *testing.T) {
	d := EditionDraft{Date: "2025-11-24", State: "Telangana", District: "Hyderabad", EditionName: "  Hyderabad  Night Edition "}

	e := d.Edition("ep-42")

	assert.Equal(t, "Hyderabad  Night Edition", e.EditionName)
	assert.Equal(t, "/dummy/hyderabad-night-edition.pdf", e.DocumentURL)
	assert.Equal(t, "/dummy/thumb-ep-42.jpg", e.ThumbnailURL)
	assert.Equal(t, DefaultPageCount, e.PageCount)

	d.PageCount = 20
	assert.Equal(t, 20, d.Edition("ep-43").PageCount)
}

func TestValidationError(t *testing.T) {
	res := NewValidator().Incident(IncidentDraft{Title: "x"}, nil)
	var err error = &ValidationError{Result: res}

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "state")
	assert.NotContains(t, err.Error(), "title")
}
