package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/wordlens/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "wordlens.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestDraftRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	st.now = func() time.Time { return fixed }

	draft, err := st.LoadDraft(ctx)
	if err != nil {
		t.Fatalf("load empty draft: %v", err)
	}
	if draft.Text != "" || !draft.UpdatedAt.IsZero() {
		t.Fatalf("expected empty draft, got %+v", draft)
	}

	if err := st.SaveDraft(ctx, "first"); err != nil {
		t.Fatalf("save draft: %v", err)
	}
	if err := st.SaveDraft(ctx, "second\n\nparagraph"); err != nil {
		t.Fatalf("overwrite draft: %v", err)
	}
	draft, err = st.LoadDraft(ctx)
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	if draft.Text != "second\n\nparagraph" {
		t.Fatalf("unexpected draft text %q", draft.Text)
	}
	if !draft.UpdatedAt.Equal(fixed) {
		t.Fatalf("unexpected updated_at %v", draft.UpdatedAt)
	}

	if err := st.ClearDraft(ctx); err != nil {
		t.Fatalf("clear draft: %v", err)
	}
	draft, err = st.LoadDraft(ctx)
	if err != nil {
		t.Fatalf("load cleared draft: %v", err)
	}
	if draft.Text != "" {
		t.Fatalf("expected cleared draft, got %q", draft.Text)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	theme, err := st.Theme(ctx, model.ThemeDark)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != model.ThemeDark {
		t.Fatalf("expected fallback dark, got %q", theme)
	}
	if err := st.SetTheme(ctx, model.ThemeLight); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	theme, err = st.Theme(ctx, model.ThemeDark)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != model.ThemeLight {
		t.Fatalf("expected light, got %q", theme)
	}
	if err := st.SetTheme(ctx, model.Theme("neon")); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	theme, err = st.Theme(ctx, model.ThemeDark)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != model.ThemeDark {
		t.Fatalf("expected fallback for unknown theme, got %q", theme)
	}
}

func TestSnapshots(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []int64
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		st.now = func() time.Time { return at }
		res := model.AnalysisResult{WordCount: 10 * (i + 1), CharCount: 50, SentenceCount: 2, ReadabilityScore: 70 + i}
		id, err := st.SaveDraftWithSnapshot(ctx, "text", res)
		if err != nil {
			t.Fatalf("save snapshot: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListSnapshots(ctx, 0)
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(all))
	}
	if all[0].ID != ids[0] || all[2].ID != ids[2] {
		t.Fatalf("expected oldest first, got %+v", all)
	}
	if all[1].WordCount != 20 || all[1].ReadabilityScore != 71 {
		t.Fatalf("unexpected snapshot %+v", all[1])
	}
	if !all[2].SavedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("unexpected saved_at %v", all[2].SavedAt)
	}

	last, err := st.ListSnapshots(ctx, 2)
	if err != nil {
		t.Fatalf("list last snapshots: %v", err)
	}
	if len(last) != 2 || last[0].ID != ids[1] || last[1].ID != ids[2] {
		t.Fatalf("unexpected last snapshots %+v", last)
	}

	draft, err := st.LoadDraft(ctx)
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	if draft.Text != "text" {
		t.Fatalf("expected draft saved with snapshot, got %q", draft.Text)
	}
}

func TestListSnapshotsOrdersSubSecondSaves(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	var ids []int64
	for i, nanos := range []int{100_000_000, 120_000_000} {
		at := time.Date(2026, 1, 2, 3, 4, 5, nanos, time.UTC)
		st.now = func() time.Time { return at }
		id, err := st.SaveDraftWithSnapshot(ctx, "text", model.AnalysisResult{WordCount: i + 1})
		if err != nil {
			t.Fatalf("save snapshot: %v", err)
		}
		ids = append(ids, id)
	}

	last, err := st.ListSnapshots(ctx, 1)
	if err != nil {
		t.Fatalf("list last snapshot: %v", err)
	}
	if len(last) != 1 || last[0].ID != ids[1] || last[0].WordCount != 2 {
		t.Fatalf("expected newest snapshot, got %+v", last)
	}

	all, err := st.ListSnapshots(ctx, 0)
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(all) != 2 || all[0].ID != ids[0] || all[1].ID != ids[1] {
		t.Fatalf("expected oldest first, got %+v", all)
	}
}
