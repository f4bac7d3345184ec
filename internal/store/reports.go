package store

import (
	"time"

	"github.com/blackwell-systems/chatlens/internal/analyzer"
)

// AppendReport inserts one analysis report. Reports accumulate; a second run
// on the same conversation appends a new row rather than replacing the old
// one.
func (db *DB) AppendReport(rep analyzer.Report) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO reports
		(conversation_id, created_at, clarity_score, relevance_score, accuracy_score,
		 completeness_score, sentiment, empathy_score, response_time_avg, resolution,
		 escalation_need, fallback_frequency, fallback_rate, overall_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ConversationID, rep.CreatedAt.UTC().Format(time.RFC3339),
		rep.Clarity, rep.Relevance, rep.Accuracy, rep.Completeness,
		rep.Sentiment, rep.Empathy, rep.ResponseTimeAvg, rep.Resolution,
		rep.EscalationNeed, rep.FallbackFrequency, rep.FallbackRate, rep.Overall,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListReports returns reports newest first, optionally filtered to one
// conversation. limit <= 0 means no limit.
func (db *DB) ListReports(conversationID string, limit int) ([]analyzer.Report, error) {
	query := `SELECT conversation_id, created_at, clarity_score, relevance_score,
		accuracy_score, completeness_score, sentiment, empathy_score,
		response_time_avg, resolution, escalation_need, fallback_frequency,
		fallback_rate, overall_score FROM reports`
	var args []any

	if conversationID != "" {
		query += " WHERE conversation_id = ?"
		args = append(args, conversationID)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []analyzer.Report
	for rows.Next() {
		var r analyzer.Report
		var createdAt string
		if err := rows.Scan(
			&r.ConversationID, &createdAt, &r.Clarity, &r.Relevance,
			&r.Accuracy, &r.Completeness, &r.Sentiment, &r.Empathy,
			&r.ResponseTimeAvg, &r.Resolution, &r.EscalationNeed,
			&r.FallbackFrequency, &r.FallbackRate, &r.Overall,
		); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestReport returns the most recent report for a conversation, or nil.
func (db *DB) LatestReport(conversationID string) (*analyzer.Report, error) {
	reports, err := db.ListReports(conversationID, 1)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[0], nil
}

// CountReports returns the total number of stored reports.
func (db *DB) CountReports() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM reports").Scan(&n)
	return n, err
}
