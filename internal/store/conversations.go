package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/chatlens/internal/conversation"
)

// ConversationSummary is a list-view row: conversation metadata without the
// message bodies.
type ConversationSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Analyzed     bool      `json:"analyzed"`
	MessageCount int       `json:"message_count"`
}

// SaveConversation inserts a conversation and its messages in one
// transaction. Messages are immutable once ingested; there is no update
// path.
func (db *DB) SaveConversation(conv conversation.Conversation) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO conversations (id, title, created_at, analyzed) VALUES (?, ?, ?, false)",
		conv.ID, conv.Title, conv.CreatedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("inserting conversation: %w", err)
	}

	for i, m := range conv.Messages {
		ts := ""
		if !m.Timestamp.IsZero() {
			ts = m.Timestamp.UTC().Format(time.RFC3339)
		}
		if _, err := tx.Exec(
			"INSERT INTO messages (conversation_id, seq, sender, text, timestamp) VALUES (?, ?, ?, ?, ?)",
			conv.ID, i, string(m.Sender), m.Text, ts,
		); err != nil {
			return fmt.Errorf("inserting message %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetConversation loads a conversation with its messages in original order.
// Returns nil if the id is unknown.
func (db *DB) GetConversation(id string) (*conversation.Conversation, error) {
	row := db.conn.QueryRow("SELECT id, title, created_at FROM conversations WHERE id = ?", id)

	var conv conversation.Conversation
	var createdAt string
	if err := row.Scan(&conv.ID, &conv.Title, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	conv.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	rows, err := db.conn.Query(
		"SELECT sender, text, timestamp FROM messages WHERE conversation_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var sender, text, ts string
		if err := rows.Scan(&sender, &text, &ts); err != nil {
			return nil, err
		}
		m := conversation.Message{Sender: conversation.Sender(sender), Text: text}
		if ts != "" {
			m.Timestamp, _ = time.Parse(time.RFC3339, ts)
		}
		conv.Messages = append(conv.Messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &conv, nil
}

// ListConversations returns summaries of all conversations, newest first.
func (db *DB) ListConversations() ([]ConversationSummary, error) {
	rows, err := db.conn.Query(`
		SELECT c.id, c.title, c.created_at, c.analyzed, COUNT(m.id)
		FROM conversations c
		LEFT JOIN messages m ON m.conversation_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []ConversationSummary
	for rows.Next() {
		var s ConversationSummary
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Title, &createdAt, &s.Analyzed, &s.MessageCount); err != nil {
			return nil, err
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListUnanalyzed returns the ids of conversations with no completed
// analysis, oldest first.
func (db *DB) ListUnanalyzed() ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT id FROM conversations WHERE analyzed = false ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListConversationIDs returns all conversation ids, oldest first.
func (db *DB) ListConversationIDs() ([]string, error) {
	rows, err := db.conn.Query("SELECT id FROM conversations ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MarkAnalyzed flags a conversation as having at least one report.
func (db *DB) MarkAnalyzed(id string) error {
	_, err := db.conn.Exec("UPDATE conversations SET analyzed = true WHERE id = ?", id)
	return err
}
