package artifact

import (
	"context"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ArtifactService struct {
	DB *gorm.DB
}

func (as *ArtifactService) Record(ctx context.Context, a Artifact) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return as.DB.WithContext(ctx).Create(&a).Error
}

// List returns one page of artifacts, newest first, with the total row count
// and page count for the filter.
func (as *ArtifactService) List(ctx context.Context, f ListFilter) ([]Artifact, int64, int, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 100 {
		f.PageSize = 20
	}

	base := as.DB.WithContext(ctx).Model(&Artifact{})
	if kind := strings.TrimSpace(f.Kind); kind != "" {
		base = base.Where("kind = ?", kind)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		base = base.Where("query_text LIKE ?", "%"+s+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(f.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	rows := []Artifact{}
	if err := base.
		Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, 0, err
	}

	return rows, total, totalPages, nil
}
