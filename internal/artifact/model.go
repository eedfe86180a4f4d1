package artifact

import "time"

const (
	KindPodcast = "podcast"
	KindReport  = "report"
)

// Artifact records one generated file served under /static.
type Artifact struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind        string    `gorm:"size:20;not null;index" json:"kind"`
	Query       string    `gorm:"column:query_text;type:text;not null" json:"query"`
	Model       string    `gorm:"size:100" json:"model"`
	Path        string    `gorm:"size:512;not null" json:"path"`
	URL         string    `gorm:"size:512;not null" json:"url"`
	Format      string    `gorm:"size:10" json:"format"`
	SourceCount int       `json:"source_count"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

type ListFilter struct {
	Kind     string `form:"kind"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (Artifact) TableName() string {
	return "artifacts"
}
