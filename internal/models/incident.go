package models

import (
	"time"
)

// TimestampLayout - формат временной метки инцидента (ISO 8601 без зоны)
const TimestampLayout = "2006-01-02T15:04:05"

type Category string

const (
	CategoryAccident Category = "Accident"
	CategoryCrime    Category = "Crime"
	CategoryPolitics Category = "Politics"
	CategoryWeather  Category = "Weather"
	CategoryOther    Category = "Other"
)

// Categories возвращает все категории в порядке отображения
func Categories() []Category {
	return []Category{CategoryAccident, CategoryCrime, CategoryPolitics, CategoryWeather, CategoryOther}
}

type Status string

const (
	StatusReported    Status = "Reported"
	StatusUnderReview Status = "Under Review"
	StatusResolved    Status = "Resolved"
)

type ReportType string

const (
	ReportTypeOfficial ReportType = "Official"
	ReportTypeCitizen  ReportType = "Citizen"
)

type Incident struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	State       string     `json:"state" yaml:"state"`
	District    string     `json:"district" yaml:"district"`
	Category    Category   `json:"category" yaml:"category"`
	Timestamp   string     `json:"timestamp" yaml:"timestamp"`
	Description string     `json:"description" yaml:"description"`
	Status      Status     `json:"status" yaml:"status"`
	ReportType  ReportType `json:"report_type" yaml:"report_type"`
}

// Date возвращает календарную часть временной метки (YYYY-MM-DD)
func (i Incident) Date() string {
	if len(i.Timestamp) < len(DateLayout) {
		return i.Timestamp
	}
	return i.Timestamp[:len(DateLayout)]
}

// Time разбирает временную метку. Метки с зоной (RFC 3339) тоже принимаются.
func (i Incident) Time() (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, i.Timestamp); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, i.Timestamp)
}
