// Package dashboard computes the read-only analytics snapshot served by the
// dashboard endpoint.
//
// The snapshot runs several independent queries without a transaction, so
// under concurrent writes the individual figures may be mutually inconsistent.
// That is accepted: the dashboard is a point-in-time approximation, not a
// ledger.
package dashboard

import (
	"time"

	"gorm.io/gorm"

	"github.com/openshelf/librarian/internal/entities"
)

// TrendWeeks is the number of Monday-aligned weekly buckets in the loan trend.
const TrendWeeks = 6

// TopGenresLimit caps the genre ranking.
const TopGenresLimit = 6

// Counts holds the headline figures.
type Counts struct {
	TotalBooks      int64 `json:"total_books"`
	AvailableCopies int64 `json:"available_copies"`
	BooksOnLoan     int64 `json:"books_on_loan"`
	ReservedCopies  int64 `json:"reserved_copies"`
	ActiveMembers   int64 `json:"active_members"`
}

// Series pairs chart labels with their counts, index-aligned.
type Series struct {
	Labels []string `json:"labels"`
	Counts []int64  `json:"counts"`
}

// Snapshot is the full dashboard payload.
type Snapshot struct {
	Counts             Counts           `json:"counts"`
	StatusDistribution map[string]int64 `json:"status_distribution"`
	LoansTrend         Series           `json:"loans_trend"`
	TopGenres          Series           `json:"top_genres"`
}

// Repository computes dashboard snapshots.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new dashboard repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Snapshot computes the dashboard as of the current date.
func (r *Repository) Snapshot() (*Snapshot, error) {
	return r.SnapshotAt(time.Now())
}

// SnapshotAt computes the dashboard as of the given moment. The trend window
// ends with the Monday-aligned week containing asOf.
func (r *Repository) SnapshotAt(asOf time.Time) (*Snapshot, error) {
	snapshot := &Snapshot{}

	if err := r.db.Model(&entities.Book{}).Count(&snapshot.Counts.TotalBooks).Error; err != nil {
		return nil, err
	}
	if err := r.countCopies(entities.CopyStatusAvailable, &snapshot.Counts.AvailableCopies); err != nil {
		return nil, err
	}
	if err := r.countCopies(entities.CopyStatusOnLoan, &snapshot.Counts.BooksOnLoan); err != nil {
		return nil, err
	}
	if err := r.countCopies(entities.CopyStatusReserved, &snapshot.Counts.ReservedCopies); err != nil {
		return nil, err
	}
	// Counts every member: no recency filter is applied.
	if err := r.db.Model(&entities.Member{}).Count(&snapshot.Counts.ActiveMembers).Error; err != nil {
		return nil, err
	}

	statusDistribution, err := r.statusDistribution()
	if err != nil {
		return nil, err
	}
	snapshot.StatusDistribution = statusDistribution

	loansTrend, err := r.loansTrend(asOf)
	if err != nil {
		return nil, err
	}
	snapshot.LoansTrend = loansTrend

	topGenres, err := r.topGenres()
	if err != nil {
		return nil, err
	}
	snapshot.TopGenres = topGenres

	return snapshot, nil
}

func (r *Repository) countCopies(status entities.CopyStatus, out *int64) error {
	return r.db.Model(&entities.Copy{}).Where("status = ?", status).Count(out).Error
}

// statusDistribution covers every distinct status present in the copies
// table, not just the three well-known ones.
func (r *Repository) statusDistribution() (map[string]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := r.db.Model(&entities.Copy{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int64, len(rows))
	for _, row := range rows {
		distribution[row.Status] = row.Cnt
	}
	return distribution, nil
}

// loansTrend buckets loan issue dates into the TrendWeeks most recent
// Monday-aligned weeks, ending with the week containing asOf. A loan issued
// exactly on a bucket's start date belongs to that bucket; loans issued
// before the earliest start are excluded entirely.
func (r *Repository) loansTrend(asOf time.Time) (Series, error) {
	today := entities.DateOf(asOf)

	// time.Weekday counts Sunday as 0; shift so Monday is offset 0.
	offset := (int(today.Weekday()) + 6) % 7
	currentMonday := today.AddDays(-offset)

	starts := make([]entities.Date, TrendWeeks)
	labels := make([]string, TrendWeeks)
	for i := 0; i < TrendWeeks; i++ {
		starts[i] = currentMonday.AddDays(-7 * (TrendWeeks - 1 - i))
		labels[i] = starts[i].String()
	}

	var issueDates []entities.Date
	err := r.db.Model(&entities.Loan{}).
		Where("issue_date >= ?", starts[0]).
		Pluck("issue_date", &issueDates).Error
	if err != nil {
		return Series{}, err
	}

	counts := make([]int64, TrendWeeks)
	for _, issued := range issueDates {
		if issued.IsZero() {
			continue
		}
		bucket := int(issued.Sub(starts[0].Time).Hours()) / (24 * 7)
		if bucket >= 0 && bucket < TrendWeeks {
			counts[bucket]++
		}
	}

	return Series{Labels: labels, Counts: counts}, nil
}

// topGenres ranks genres by book count, descending. NULL and empty genres
// collapse into "Unknown". Ties keep the store's natural group order, which
// on SQLite is stable first-seen order for equal counts.
func (r *Repository) topGenres() (Series, error) {
	var rows []struct {
		Genre string
		Cnt   int64
	}
	err := r.db.Model(&entities.Book{}).
		Select("COALESCE(NULLIF(genre, ''), 'Unknown') AS genre, COUNT(*) AS cnt").
		Group("COALESCE(NULLIF(genre, ''), 'Unknown')").
		Order("cnt DESC").
		Limit(TopGenresLimit).
		Scan(&rows).Error
	if err != nil {
		return Series{}, err
	}

	series := Series{
		Labels: make([]string, 0, len(rows)),
		Counts: make([]int64, 0, len(rows)),
	}
	for _, row := range rows {
		series.Labels = append(series.Labels, row.Genre)
		series.Counts = append(series.Counts, row.Cnt)
	}
	return series, nil
}
