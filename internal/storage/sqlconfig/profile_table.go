package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-coach/internal/storage/profile"
)

const profilesTable = "profiles"

// The table holds at most one row, keyed by this id.
const profileID = 1

var _ profile.IProfileTable = (*ProfileTable)(nil)

type profileRow struct {
	Income             decimal.Decimal `db:"income"`
	AgeBand            string          `db:"age_band"`
	Occupation         string          `db:"occupation"`
	SavingsTarget      decimal.Decimal `db:"savings_target"`
	PriorityCategories pq.StringArray  `db:"priority_categories"`
	CutCostCategories  pq.StringArray  `db:"cut_cost_categories"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// ProfileTable provides access to the profiles table.
type ProfileTable struct {
	exec bob.Executor
}

func NewProfileTable(exec bob.Executor) *ProfileTable {
	return &ProfileTable{exec: exec}
}

func (t *ProfileTable) Get(ctx context.Context) (*profile.Profile, error) {
	q := psql.Select(
		sm.Columns("income", "age_band", "occupation", "savings_target",
			"priority_categories", "cut_cost_categories", "created_at", "updated_at"),
		sm.From(profilesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(profileID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[profileRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile.Profile{
		Income:             row.Income,
		AgeBand:            row.AgeBand,
		Occupation:         row.Occupation,
		SavingsTarget:      row.SavingsTarget,
		PriorityCategories: row.PriorityCategories,
		CutCostCategories:  row.CutCostCategories,
		CreatedAt:          row.CreatedAt.UTC(),
		UpdatedAt:          row.UpdatedAt.UTC(),
	}, nil
}

// Put replaces the stored row. Run it inside a transaction.
func (t *ProfileTable) Put(ctx context.Context, p *profile.Profile) error {
	del := psql.Delete(dm.From(profilesTable), dm.Where(psql.Quote("id").EQ(psql.Arg(profileID))))
	if _, err := bob.Exec(ctx, t.exec, del); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	ins := psql.Insert(
		im.Into(profilesTable, "id", "income", "age_band", "occupation", "savings_target",
			"priority_categories", "cut_cost_categories", "created_at", "updated_at"),
		im.Values(psql.Arg(
			profileID, p.Income, p.AgeBand, p.Occupation, p.SavingsTarget,
			pq.StringArray(p.PriorityCategories), pq.StringArray(p.CutCostCategories),
			p.CreatedAt, p.UpdatedAt,
		)),
	)
	if _, err := bob.Exec(ctx, t.exec, ins); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}
