package ratings

import (
	"database/sql"

	_ "github.com/lib/pq"
)

const defaultPGQuery = `select
	to_char(rated_on, 'YYYY-MM-DD'), title_type
	from ratings
	order by rated_on
	;
`

// LoadPostgres loads ratings rows from a media tracker database instead
// of a CSV export. Rows are filtered and normalized with the same rules
// as the CSV loader. An empty query uses the default ratings table.
func LoadPostgres(dsn, query string) ([]Record, error) {
	if query == "" {
		query = defaultPGQuery
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rawDate, rawType string
		if err := rows.Scan(&rawDate, &rawType); err != nil {
			return nil, err
		}
		rec, ok := makeRecord(rawDate, rawType)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
