package picoplaca

import (
	"github.com/OpenTransitTools/picoyplaca/foundation/database"
	"github.com/jmoiron/sqlx"
)

// VerdictSchema creates the table verdicts are recorded in
const VerdictSchema = "create table if not exists verdict ( " +
	"id bigserial primary key, " +
	"plate text not null, " +
	"travel_date text not null, " +
	"travel_time text not null, " +
	"weekday text not null, " +
	"permitted boolean not null, " +
	"reason text not null, " +
	"holiday_name text not null default '', " +
	"evaluated_at timestamp with time zone not null)"

// CreateVerdictSchema creates the verdict table if it's missing
func CreateVerdictSchema(db *sqlx.DB) error {
	return database.Migrate(db, VerdictSchema)
}

// RecordVerdict inserts verdict into the database
func RecordVerdict(db *sqlx.DB, verdict *Verdict) error {
	statementString := "insert into verdict ( " +
		"plate, " +
		"travel_date, " +
		"travel_time, " +
		"weekday, " +
		"permitted, " +
		"reason, " +
		"holiday_name, " +
		"evaluated_at) " +
		"values (" +
		":plate, " +
		":travel_date, " +
		":travel_time, " +
		":weekday, " +
		":permitted, " +
		":reason, " +
		":holiday_name, " +
		":evaluated_at)"
	statementString = db.Rebind(statementString)
	_, err := db.NamedExec(statementString, verdict)
	return err
}

// GetVerdictsForPlate retrieves up to limit verdicts recorded for plate, newest first
func GetVerdictsForPlate(db *sqlx.DB, plate string, limit int) ([]*Verdict, error) {
	statementString := "select * from verdict " +
		"where plate = :plate " +
		"order by evaluated_at desc, id desc " +
		"limit :limit"
	rows, err := database.PrepareNamedQueryRowsFromMap(statementString, db, map[string]interface{}{
		"plate": plate,
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()
	verdicts := make([]*Verdict, 0)
	for rows.Next() {
		verdict := Verdict{}
		err = rows.StructScan(&verdict)
		if err != nil {
			return nil, err
		}
		verdicts = append(verdicts, &verdict)
	}
	return verdicts, rows.Err()
}
