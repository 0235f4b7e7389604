package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/wordlens/internal/model"
	"github.com/verte-zerg/wordlens/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Snapshots []model.Snapshot
	Window    int
}

// BuildReport loads snapshots for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	snapshots, err := st.ListSnapshots(ctx, cfg.Last)
	if err != nil {
		return Report{}, err
	}
	window := cfg.Window
	if window <= 0 || window > len(snapshots) {
		window = len(snapshots)
	}
	return Report{Snapshots: snapshots, Window: window}, nil
}

// Render prints the summary, trends, and snapshot table.
func (r Report) Render(w io.Writer) error {
	if err := RenderSummary(w, r.Snapshots); err != nil {
		return err
	}
	if err := RenderTrends(w, r.Snapshots, r.Window); err != nil {
		return err
	}
	return RenderSnapshotTable(w, r.Snapshots)
}
