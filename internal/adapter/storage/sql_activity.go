package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rl1809/weaselparts/internal/core/domain"
)

const activityColumns = `
	id, bauteil_barcode, COALESCE(entry_made_by, ''), COALESCE(organisation, ''),
	COALESCE(location, ''), COALESCE(further_operators, ''),
	COALESCE(activity_assy, 0), COALESCE(activity_disassy, 0), COALESCE(activity_test, 0),
	COALESCE(activity_shpf, 0), COALESCE(activity_insp, 0), COALESCE(activity_cln, 0),
	COALESCE(activity_smpl, 0), COALESCE(activity_cal, 0), COALESCE(activity_hndl, 0),
	COALESCE(activity_stor, 0), COALESCE(activity_de_stor, 0),
	COALESCE(procedure_number, ''), date, start_time, end_time,
	humidity_start, humidity_end, temperature_start, temperature_end,
	COALESCE(remarks, ''), COALESCE(activity_description, ''), COALESCE(reports, ''),
	created_at, updated_at`

func scanActivity(row rowScanner) (domain.ActivityRecord, error) {
	var (
		a         domain.ActivityRecord
		date      sql.NullTime
		startTime sql.NullString
		endTime   sql.NullString
	)
	f := &a.Activities
	err := row.Scan(&a.ID, &a.Barcode, &a.EntryMadeBy, &a.Organisation,
		&a.Location, &a.FurtherOperators,
		&f.Assy, &f.Disassy, &f.Test, &f.Shpf, &f.Insp, &f.Cln, &f.Smpl, &f.Cal, &f.Hndl,
		&f.Stor, &f.DeStor,
		&a.ProcedureNumber, &date, &startTime, &endTime,
		&a.HumidityStart, &a.HumidityEnd, &a.TemperatureStart, &a.TemperatureEnd,
		&a.Remarks, &a.ActivityDescription, &a.Reports,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return a, err
	}
	if date.Valid {
		a.Date = date.Time.Format("2006-01-02")
	}
	a.StartTime = startTime.String
	a.EndTime = endTime.String
	return a, nil
}

func (m *SQLAdapter) ListActivities(ctx context.Context, barcode string) ([]domain.ActivityRecord, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT `+activityColumns+`
		FROM activity_records
		WHERE bauteil_barcode = ?
		ORDER BY date DESC, created_at DESC, id DESC`, barcode)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var out []domain.ActivityRecord
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (m *SQLAdapter) CreateActivity(ctx context.Context, a domain.ActivityRecord) (int64, error) {
	now := m.now()
	f := a.Activities
	result, err := m.db.ExecContext(ctx, `
		INSERT INTO activity_records (
			bauteil_barcode, entry_made_by, organisation, location, further_operators,
			activity_assy, activity_disassy, activity_test, activity_shpf, activity_insp,
			activity_cln, activity_smpl, activity_cal, activity_hndl, activity_stor, activity_de_stor,
			procedure_number, date, start_time, end_time,
			humidity_start, humidity_end, temperature_start, temperature_end,
			remarks, activity_description, reports, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Barcode, a.EntryMadeBy, a.Organisation, a.Location, a.FurtherOperators,
		f.Assy, f.Disassy, f.Test, f.Shpf, f.Insp,
		f.Cln, f.Smpl, f.Cal, f.Hndl, f.Stor, f.DeStor,
		a.ProcedureNumber, nullableString(a.Date), nullableString(a.StartTime), nullableString(a.EndTime),
		a.HumidityStart, a.HumidityEnd, a.TemperatureStart, a.TemperatureEnd,
		a.Remarks, a.ActivityDescription, a.Reports, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	return result.LastInsertId()
}

func (m *SQLAdapter) UpdateActivity(ctx context.Context, a domain.ActivityRecord) (bool, error) {
	f := a.Activities
	result, err := m.db.ExecContext(ctx, `
		UPDATE activity_records SET
			entry_made_by = ?, organisation = ?, location = ?, further_operators = ?,
			activity_assy = ?, activity_disassy = ?, activity_test = ?, activity_shpf = ?,
			activity_insp = ?, activity_cln = ?, activity_smpl = ?, activity_cal = ?,
			activity_hndl = ?, activity_stor = ?, activity_de_stor = ?,
			procedure_number = ?, date = ?, start_time = ?, end_time = ?,
			humidity_start = ?, humidity_end = ?, temperature_start = ?, temperature_end = ?,
			remarks = ?, activity_description = ?, reports = ?, updated_at = ?
		WHERE id = ?`,
		a.EntryMadeBy, a.Organisation, a.Location, a.FurtherOperators,
		f.Assy, f.Disassy, f.Test, f.Shpf,
		f.Insp, f.Cln, f.Smpl, f.Cal,
		f.Hndl, f.Stor, f.DeStor,
		a.ProcedureNumber, nullableString(a.Date), nullableString(a.StartTime), nullableString(a.EndTime),
		a.HumidityStart, a.HumidityEnd, a.TemperatureStart, a.TemperatureEnd,
		a.Remarks, a.ActivityDescription, a.Reports, m.now(), a.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update activity: %w", err)
	}
	return affected(result)
}

func (m *SQLAdapter) DeleteActivity(ctx context.Context, id int64) (bool, error) {
	result, err := m.db.ExecContext(ctx, `DELETE FROM activity_records WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete activity: %w", err)
	}
	return affected(result)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
