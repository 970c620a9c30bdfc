package server

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"livechat/internal/chat"
)

// Store persists conversations in a local sqlite database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id         TEXT PRIMARY KEY,
	client_id  TEXT NOT NULL,
	sender_id  TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_client ON messages(client_id, created_at);
`

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Serialized access; the handler may be hit concurrently.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores one message and returns it with the server-assigned
// creation time.
func (s *Store) Append(ctx context.Context, clientID, senderID, body string) (chat.Message, error) {
	msg := chat.Message{
		SenderID:  senderID,
		ClientID:  clientID,
		Message:   body,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, client_id, sender_id, body, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), msg.ClientID, msg.SenderID, msg.Message, msg.CreatedAt.UnixNano(),
	)
	return msg, err
}

// List returns the conversation for clientID in creation order.
func (s *Store) List(ctx context.Context, clientID string) ([]chat.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sender_id, client_id, body, created_at FROM messages WHERE client_id = ? ORDER BY created_at, rowid`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []chat.Message{}
	for rows.Next() {
		var m chat.Message
		var createdAt int64
		if err := rows.Scan(&m.SenderID, &m.ClientID, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = time.Unix(0, createdAt).UTC()
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Clients returns the id of every client with at least one message,
// newest conversation first. Used by the operator listing.
func (s *Store) Clients(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT client_id FROM messages GROUP BY client_id ORDER BY MAX(created_at) DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		clients = append(clients, id)
	}
	return clients, rows.Err()
}
