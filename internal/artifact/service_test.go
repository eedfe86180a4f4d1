package artifact

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ledger.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	if err := db.AutoMigrate(&Artifact{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seed(t *testing.T, svc *ArtifactService, n int, kind string) {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range n {
		err := svc.Record(context.Background(), Artifact{
			Kind:      kind,
			Query:     fmt.Sprintf("%s query %d", kind, i),
			Path:      fmt.Sprintf("static/%s_%d", kind, i),
			URL:       fmt.Sprintf("/static/%s_%d", kind, i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}
}

func TestArtifactService_Record_SetsCreatedAt(t *testing.T) {
	svc := &ArtifactService{DB: newTestDB(t)}

	if err := svc.Record(context.Background(), Artifact{Kind: KindReport, Query: "q", Path: "p", URL: "u"}); err != nil {
		t.Fatalf("record: %v", err)
	}

	rows, total, _, err := svc.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || rows[0].CreatedAt.IsZero() {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestArtifactService_List_FiltersByKindNewestFirst(t *testing.T) {
	svc := &ArtifactService{DB: newTestDB(t)}
	seed(t, svc, 3, KindPodcast)
	seed(t, svc, 2, KindReport)

	rows, total, pages, err := svc.List(context.Background(), ListFilter{Kind: KindPodcast})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || pages != 1 || len(rows) != 3 {
		t.Fatalf("total=%d pages=%d rows=%d", total, pages, len(rows))
	}
	if rows[0].Query != "podcast query 2" {
		t.Fatalf("expected newest first, got %q", rows[0].Query)
	}
}

func TestArtifactService_List_Paging(t *testing.T) {
	svc := &ArtifactService{DB: newTestDB(t)}
	seed(t, svc, 5, KindReport)

	rows, total, pages, err := svc.List(context.Background(), ListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 || pages != 3 {
		t.Fatalf("total=%d pages=%d", total, pages)
	}
	if len(rows) != 2 || rows[0].Query != "report query 2" {
		t.Fatalf("unexpected page: %+v", rows)
	}
}

func TestArtifactService_List_Search(t *testing.T) {
	svc := &ArtifactService{DB: newTestDB(t)}
	seed(t, svc, 12, KindReport)

	rows, total, _, err := svc.List(context.Background(), ListFilter{Search: "query 1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// "query 1", "query 10", "query 11"
	if total != 3 || len(rows) != 3 {
		t.Fatalf("total=%d rows=%d", total, len(rows))
	}
}

func TestArtifactService_List_EmptyIsOnePage(t *testing.T) {
	svc := &ArtifactService{DB: newTestDB(t)}

	rows, total, pages, err := svc.List(context.Background(), ListFilter{PageSize: 500})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 0 || pages != 1 || rows == nil || len(rows) != 0 {
		t.Fatalf("rows=%v total=%d pages=%d", rows, total, pages)
	}
}
