package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/viant/occupancy-knn/knn"
	"github.com/viant/occupancy-knn/store"
)

// Sweep identifies a K sweep: which dataset served as the reference set and
// which was classified.
type Sweep struct {
	Reference  string
	Evaluation string
	Results    []knn.Result
}

// Title describes the sweep, e.g. "training error (train vs train)".
func (s Sweep) Title() string {
	kind := "testing error"
	if s.Reference == s.Evaluation {
		kind = "training error"
	}
	return fmt.Sprintf("%s (%s vs %s)", kind, s.Evaluation, s.Reference)
}

// Reporter receives the outputs of a run.
type Reporter interface {
	Sweep(ctx context.Context, sweep Sweep) error
	Correlations(ctx context.Context, dataset string, c Correlations) error
	Confusion(ctx context.Context, title string, m knn.Confusion) error
}

// Text writes aligned tables.
type Text struct {
	w io.Writer
}

// NewText returns a Reporter printing to w.
func NewText(w io.Writer) *Text { return &Text{w: w} }

func (t *Text) Sweep(_ context.Context, sweep Sweep) error {
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\n", sweep.Title())
	fmt.Fprintln(tw, "K\terror\t")
	for _, r := range sweep.Results {
		fmt.Fprintf(tw, "%d\t%.4f\t\n", r.K, r.Error)
	}
	if best, ok := knn.BestK(sweep.Results); ok {
		fmt.Fprintf(tw, "best K=%d\t%.4f\t\n", best.K, best.Error)
	}
	return tw.Flush()
}

func (t *Text) Correlations(_ context.Context, dataset string, c Correlations) error {
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "pearson correlation with occupancy (%s)\n", dataset)
	for _, fc := range c.Label {
		fmt.Fprintf(tw, "%s\t%s\n", fc.Feature, formatR(fc.R))
	}
	if len(c.Pairs) > 0 {
		fmt.Fprintln(tw, "feature pairs")
		for _, pc := range c.Pairs {
			fmt.Fprintf(tw, "%s / %s\t%s\n", pc.A, pc.B, formatR(pc.R))
		}
	}
	return tw.Flush()
}

func (t *Text) Confusion(_ context.Context, title string, m knn.Confusion) error {
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", title)
	fmt.Fprintln(tw, "\tpredicted occupied\tpredicted unoccupied")
	fmt.Fprintf(tw, "occupied\t%d\t%d\n", m.TP, m.FN)
	fmt.Fprintf(tw, "unoccupied\t%d\t%d\n", m.FP, m.TN)
	fmt.Fprintf(tw, "accuracy %s  precision %s  recall %s\n", formatR(m.Accuracy()), formatR(m.Precision()), formatR(m.Recall()))
	return tw.Flush()
}

func formatR(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v)
}

// Store persists sweeps; correlations and confusion matrices are ignored.
type Store struct {
	store *store.Store
	// RunIDs collects the IDs of saved sweeps, in order.
	RunIDs []string
}

// NewStore returns a Reporter saving sweeps into s.
func NewStore(s *store.Store) *Store { return &Store{store: s} }

func (s *Store) Sweep(ctx context.Context, sweep Sweep) error {
	id, err := s.store.SaveSweep(ctx, sweep.Reference, sweep.Evaluation, sweep.Results)
	if err != nil {
		return err
	}
	s.RunIDs = append(s.RunIDs, id)
	return nil
}

func (s *Store) Correlations(context.Context, string, Correlations) error { return nil }

func (s *Store) Confusion(context.Context, string, knn.Confusion) error { return nil }

// Multi fans out to several reporters, stopping at the first error.
type Multi []Reporter

func (m Multi) Sweep(ctx context.Context, sweep Sweep) error {
	for _, r := range m {
		if err := r.Sweep(ctx, sweep); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Correlations(ctx context.Context, dataset string, c Correlations) error {
	for _, r := range m {
		if err := r.Correlations(ctx, dataset, c); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Confusion(ctx context.Context, title string, c knn.Confusion) error {
	for _, r := range m {
		if err := r.Confusion(ctx, title, c); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Reporter = (*Text)(nil)
	_ Reporter = (*Store)(nil)
	_ Reporter = Multi(nil)
)
