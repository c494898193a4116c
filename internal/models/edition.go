package models

// DateLayout - формат даты выпуска
const DateLayout = "2006-01-02"

// Region - штат со списком округов
type Region struct {
	Name      string   `json:"name" yaml:"name"`
	Districts []string `json:"districts" yaml:"districts"`
}

// Edition - один выпуск электронной газеты
type Edition struct {
	ID           string `json:"id" yaml:"id"`
	Date         string `json:"date" yaml:"date"`
	State        string `json:"state" yaml:"state"`
	District     string `json:"district" yaml:"district"`
	EditionName  string `json:"edition_name" yaml:"edition_name"`
	DocumentURL  string `json:"document_url" yaml:"document_url"`
	ThumbnailURL string `json:"thumbnail_url" yaml:"thumbnail_url"`
	PageCount    int    `json:"page_count" yaml:"page_count"`
}
