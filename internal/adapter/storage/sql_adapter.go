package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

//go:embed schema/*.sql
var schemas embed.FS

// SQLAdapter implements port.DatabaseRepository over MySQL or SQLite. Queries
// stick to the SQL both understand; only the schema differs.
type SQLAdapter struct {
	db     *sql.DB
	schema string
	now    func() time.Time
}

func NewMySQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db, schema: "schema/mysql.sql", now: utcNow}
}

func NewSQLiteAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db, schema: "schema/sqlite.sql", now: utcNow}
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Migrate creates missing tables and indexes.
func (m *SQLAdapter) Migrate(ctx context.Context) error {
	raw, err := schemas.ReadFile(m.schema)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	for _, stmt := range strings.Split(string(raw), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

const componentColumns = `
	b.id, b.barcode, COALESCE(b.name, ''), COALESCE(b.beschreibung, ''),
	COALESCE(b.project, ''), COALESCE(b.responsible_engineer, ''), COALESCE(b.standard, ''),
	COALESCE(b.menge, 1), COALESCE(b.status, ''), b.schrank_id, COALESCE(s.name, ''),
	b.created_at, b.updated_at`

const componentFrom = `
	FROM bauteile b
	LEFT JOIN schraenke s ON b.schrank_id = s.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComponent(row rowScanner) (domain.Component, error) {
	var (
		c         domain.Component
		cabinetID sql.NullInt64
		status    string
	)
	err := row.Scan(&c.ID, &c.Barcode, &c.Name, &c.Description,
		&c.Project, &c.ResponsibleEngineer, &c.Standard,
		&c.Quantity, &status, &cabinetID, &c.CabinetName,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	c.Status = domain.ComponentStatus(status)
	if cabinetID.Valid {
		id := cabinetID.Int64
		c.CabinetID = &id
	}
	return c, nil
}

func (m *SQLAdapter) queryComponents(ctx context.Context, query string, args ...any) ([]domain.Component, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query components: %w", err)
	}
	defer rows.Close()

	var out []domain.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (m *SQLAdapter) GetComponent(ctx context.Context, barcode string) (*domain.Component, error) {
	c, err := scanComponent(m.db.QueryRowContext(ctx,
		`SELECT `+componentColumns+componentFrom+` WHERE b.barcode = ?`, barcode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query component: %w", err)
	}
	return &c, nil
}

func (m *SQLAdapter) ListComponents(ctx context.Context) ([]domain.Component, error) {
	return m.queryComponents(ctx,
		`SELECT `+componentColumns+componentFrom+` ORDER BY b.name, b.barcode`)
}

func (m *SQLAdapter) SearchComponents(ctx context.Context, term string, limit int) ([]domain.Component, error) {
	like := "%" + term + "%"
	return m.queryComponents(ctx, `
		SELECT `+componentColumns+componentFrom+`
		WHERE b.barcode LIKE ?
		   OR b.name LIKE ?
		   OR b.beschreibung LIKE ?
		   OR b.project LIKE ?
		   OR b.responsible_engineer LIKE ?
		   OR b.standard LIKE ?
		ORDER BY
			CASE
				WHEN b.barcode LIKE ? THEN 1
				WHEN b.name LIKE ? THEN 2
				ELSE 3
			END,
			b.name, b.barcode
		LIMIT ?`,
		like, like, like, like, like, like, like, like, limit)
}

func (m *SQLAdapter) CreateComponent(ctx context.Context, c domain.Component) (int64, error) {
	now := m.now()
	result, err := m.db.ExecContext(ctx, `
		INSERT INTO bauteile (barcode, name, beschreibung, project, responsible_engineer,
			standard, schrank_id, menge, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Barcode, c.Name, c.Description, c.Project, c.ResponsibleEngineer,
		c.Standard, nullableID(c.CabinetID), c.Quantity, string(c.Status), now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert component: %w", err)
	}
	return result.LastInsertId()
}

func (m *SQLAdapter) UpdateComponent(ctx context.Context, c domain.Component) (bool, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE bauteile
		SET name = ?, beschreibung = ?, project = ?, responsible_engineer = ?,
			standard = ?, menge = ?, updated_at = ?
		WHERE barcode = ?`,
		c.Name, c.Description, c.Project, c.ResponsibleEngineer,
		c.Standard, c.Quantity, m.now(), c.Barcode,
	)
	if err != nil {
		return false, fmt.Errorf("update component: %w", err)
	}
	return affected(result)
}

func (m *SQLAdapter) DeleteComponent(ctx context.Context, barcode string) (bool, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM activity_records WHERE bauteil_barcode = ?`, barcode); err != nil {
		return false, fmt.Errorf("delete activities: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM bauteile WHERE barcode = ?`, barcode)
	if err != nil {
		return false, fmt.Errorf("delete component: %w", err)
	}
	ok, err := affected(result)
	if err != nil || !ok {
		return false, err
	}
	return true, tx.Commit()
}

func (m *SQLAdapter) SetComponentCabinet(ctx context.Context, barcode string, cabinetID *int64) error {
	status := domain.ComponentStatusUnstored
	if cabinetID != nil {
		status = domain.ComponentStatusStored
	}
	_, err := m.db.ExecContext(ctx, `
		UPDATE bauteile SET schrank_id = ?, status = ?, updated_at = ? WHERE barcode = ?`,
		nullableID(cabinetID), string(status), m.now(), barcode,
	)
	if err != nil {
		return fmt.Errorf("update component cabinet: %w", err)
	}
	return nil
}

func (m *SQLAdapter) GetCabinet(ctx context.Context, id int64) (*domain.Cabinet, error) {
	var c domain.Cabinet
	err := m.db.QueryRowContext(ctx, `
		SELECT s.id, s.name, COALESCE(s.standort, ''), COALESCE(s.beschreibung, ''),
			s.created_at, s.updated_at,
			(SELECT COUNT(*) FROM bauteile b WHERE b.schrank_id = s.id)
		FROM schraenke s WHERE s.id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Location, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.ComponentCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query cabinet: %w", err)
	}
	return &c, nil
}

func (m *SQLAdapter) ListCabinets(ctx context.Context) ([]domain.Cabinet, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT s.id, s.name, COALESCE(s.standort, ''), COALESCE(s.beschreibung, ''),
			s.created_at, s.updated_at, COUNT(b.id)
		FROM schraenke s
		LEFT JOIN bauteile b ON b.schrank_id = s.id
		GROUP BY s.id, s.name, s.standort, s.beschreibung, s.created_at, s.updated_at
		ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("query cabinets: %w", err)
	}
	defer rows.Close()

	var out []domain.Cabinet
	for rows.Next() {
		var c domain.Cabinet
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Description,
			&c.CreatedAt, &c.UpdatedAt, &c.ComponentCount); err != nil {
			return nil, fmt.Errorf("scan cabinet: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (m *SQLAdapter) CreateCabinet(ctx context.Context, c domain.Cabinet) (int64, error) {
	now := m.now()
	result, err := m.db.ExecContext(ctx, `
		INSERT INTO schraenke (name, standort, beschreibung, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.Location, c.Description, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert cabinet: %w", err)
	}
	return result.LastInsertId()
}

func (m *SQLAdapter) UpdateCabinet(ctx context.Context, c domain.Cabinet) (bool, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE schraenke SET name = ?, standort = ?, beschreibung = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Location, c.Description, m.now(), c.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update cabinet: %w", err)
	}
	return affected(result)
}

func (m *SQLAdapter) DeleteCabinet(ctx context.Context, id int64) (bool, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		UPDATE bauteile SET schrank_id = NULL, status = ?, updated_at = ? WHERE schrank_id = ?`,
		string(domain.ComponentStatusUnstored), m.now(), id,
	); err != nil {
		return false, fmt.Errorf("unassign components: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM schraenke WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete cabinet: %w", err)
	}
	ok, err := affected(result)
	if err != nil || !ok {
		return false, err
	}
	return true, tx.Commit()
}

func (m *SQLAdapter) CabinetContents(ctx context.Context, id int64) ([]domain.Component, error) {
	return m.queryComponents(ctx,
		`SELECT `+componentColumns+componentFrom+` WHERE b.schrank_id = ? ORDER BY b.name, b.barcode`, id)
}

func (m *SQLAdapter) Statistics(ctx context.Context) (*domain.Statistics, error) {
	var st domain.Statistics

	err := m.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM schraenke),
			(SELECT COUNT(*) FROM bauteile),
			(SELECT COUNT(*) FROM bauteile WHERE schrank_id IS NOT NULL),
			(SELECT COUNT(*) FROM schraenke s
				WHERE NOT EXISTS (SELECT 1 FROM bauteile b WHERE b.schrank_id = s.id))`,
	).Scan(&st.TotalCabinets, &st.TotalComponents, &st.StoredComponents, &st.EmptyCabinets)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	st.UnstoredComponents = st.TotalComponents - st.StoredComponents

	rows, err := m.db.QueryContext(ctx, `
		SELECT project, COUNT(*) AS cnt
		FROM bauteile
		WHERE project IS NOT NULL AND project <> ''
		GROUP BY project
		ORDER BY cnt DESC, project
		LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	if st.TopProjects, err = readProjectCounts(rows); err != nil {
		return nil, err
	}

	rows, err = m.db.QueryContext(ctx, `
		SELECT s.name, COUNT(b.id) AS cnt
		FROM schraenke s
		LEFT JOIN bauteile b ON s.id = b.schrank_id
		GROUP BY s.id, s.name
		ORDER BY cnt DESC, s.name`)
	if err != nil {
		return nil, fmt.Errorf("query utilization: %w", err)
	}
	if st.CabinetUtilization, err = readUtilization(rows); err != nil {
		return nil, err
	}
	return &st, nil
}

// resultRows is the part of *sql.Rows the statistics readers use.
type resultRows interface {
	rowScanner
	Next() bool
	Err() error
	Close() error
}

func readProjectCounts(rows resultRows) ([]domain.ProjectCount, error) {
	defer rows.Close()

	var out []domain.ProjectCount
	for rows.Next() {
		var p domain.ProjectCount
		if err := rows.Scan(&p.Project, &p.Count); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

func readUtilization(rows resultRows) ([]domain.CabinetUtilization, error) {
	defer rows.Close()

	var out []domain.CabinetUtilization
	for rows.Next() {
		var u domain.CabinetUtilization
		if err := rows.Scan(&u.Name, &u.ComponentCount); err != nil {
			return nil, fmt.Errorf("scan utilization: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate utilization: %w", err)
	}
	return out, nil
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func affected(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
