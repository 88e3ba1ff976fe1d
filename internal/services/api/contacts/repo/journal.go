package repo

import (
	"context"
	"fmt"
	"time"

	"addressbook/internal/platform/store"

	"github.com/google/uuid"
)

// EventsTable is the ClickHouse table committed writes are journaled to
const EventsTable = "contact_events"

const ddlEvents = `CREATE TABLE IF NOT EXISTS ` + EventsTable + ` (
	event_id   UUID,
	op         LowCardinality(String),
	contact_id Int64,
	affected   Int64,
	at         DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (contact_id, at)`

const sqlHistory = `SELECT event_id, op, contact_id, affected, at FROM ` + EventsTable + `
WHERE contact_id = ? ORDER BY at DESC LIMIT ?`

// Event is one committed write
type Event struct {
	ID        uuid.UUID `json:"event_id"`
	Op        string    `json:"op"`
	ContactID int       `json:"contact_id"`
	Affected  int       `json:"affected"`
	At        time.Time `json:"at"`
}

// Journal records committed writes and reads them back per contact
type Journal interface {
	// Ensure creates the backing table when missing
	Ensure(ctx context.Context) error
	Record(ctx context.Context, op string, contactID, affected int) error
	History(ctx context.Context, contactID, limit int) ([]Event, error)
}

// NewJournal returns a ClickHouse journal, or a no-op one when ch is nil
func NewJournal(ch store.Clickhouse) Journal {
	if ch == nil {
		return nopJournal{}
	}
	return &chJournal{ch: ch, now: time.Now, newID: uuid.New}
}

type chJournal struct {
	ch    store.Clickhouse
	now   func() time.Time
	newID func() uuid.UUID
}

func (j *chJournal) Ensure(ctx context.Context) error {
	return j.ch.Exec(ctx, ddlEvents)
}

func (j *chJournal) Record(ctx context.Context, op string, contactID, affected int) error {
	row := []any{j.newID(), op, int64(contactID), int64(affected), j.now().UTC()}
	if err := j.ch.Insert(ctx, EventsTable, [][]any{row}); err != nil {
		return fmt.Errorf("journal %s: %w", op, err)
	}
	return nil
}

func (j *chJournal) History(ctx context.Context, contactID, limit int) ([]Event, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := j.ch.Query(ctx, sqlHistory, int64(contactID), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var (
			e             Event
			cid, affected int64
		)
		if err := rows.Scan(&e.ID, &e.Op, &cid, &affected, &e.At); err != nil {
			return nil, err
		}
		e.ContactID, e.Affected = int(cid), int(affected)
		out = append(out, e)
	}
	return out, rows.Err()
}

// nopJournal is used when ClickHouse is disabled
type nopJournal struct{}

func (nopJournal) Ensure(context.Context) error { return nil }

func (nopJournal) Record(context.Context, string, int, int) error { return nil }

func (nopJournal) History(context.Context, int, int) ([]Event, error) {
	return []Event{}, nil
}
