// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Miky-dev/GestIA/internal/types"
)

var conversationColumns = []string{
	"id", "company_id", "customer_id", "assignee_id", "channel", "status",
	"last_message_at", "created_at",
}

var messageColumns = []string{
	"id", "company_id", "conversation_id", "customer_id", "direction",
	"content", "status", "created_at",
}

// latest message of each conversation, used as the inbox preview
const lastMessageJoin = `LATERAL (
	SELECT m.id, m.direction, m.content, m.status, m.created_at
	FROM messages m
	WHERE m.conversation_id = cv.id AND m.company_id = cv.company_id
	ORDER BY m.created_at DESC, m.id DESC
	LIMIT 1
) lm ON true`

func scanConversation(row rowScanner) (*types.Conversation, error) {
	var c types.Conversation
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.CustomerID, &c.AssigneeID, &c.Channel, &c.Status,
		&c.LastMessageAt, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanMessage(row rowScanner) (*types.Message, error) {
	var m types.Message
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.ConversationID, &m.CustomerID, &m.Direction,
		&m.Content, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) selectConversations(ctx context.Context) sq.SelectBuilder {
	cols := append(prefixed("cv", conversationColumns),
		"c.id", "c.first_name", "c.last_name", "c.phone_e164",
		"lm.id", "lm.direction", "lm.content", "lm.status", "lm.created_at",
	)

	return s.db.Statement(ctx).
		Select(cols...).
		From("conversations cv").
		Join("customers c ON c.id = cv.customer_id AND c.company_id = cv.company_id").
		LeftJoin(lastMessageJoin)
}

func scanConversationRow(row rowScanner) (*types.Conversation, error) {
	var (
		cv types.Conversation
		c  types.CustomerRef

		msgID, direction, content, status *string
		msgAt                             *time.Time
	)
	err := row.Scan(
		&cv.ID, &cv.CompanyID, &cv.CustomerID, &cv.AssigneeID, &cv.Channel, &cv.Status,
		&cv.LastMessageAt, &cv.CreatedAt,
		&c.ID, &c.FirstName, &c.LastName, &c.PhoneE164,
		&msgID, &direction, &content, &status, &msgAt,
	)
	if err != nil {
		return nil, err
	}

	cv.Customer = &c
	if msgID != nil {
		cv.LastMessage = &types.Message{
			ID:             *msgID,
			CompanyID:      cv.CompanyID,
			ConversationID: cv.ID,
			CustomerID:     cv.CustomerID,
			Direction:      types.MessageDirection(*direction),
			Content:        *content,
			Status:         *status,
			CreatedAt:      *msgAt,
		}
	}

	return &cv, nil
}

// ListConversations returns the tenant inbox, most recent activity first.
func (s *Storage) ListConversations(ctx context.Context, tenantID string) ([]*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListConversations")
	defer span.End()

	rows, err := s.selectConversations(ctx).
		Where(sq.Eq{"cv.company_id": tenantID}).
		OrderBy("cv.last_message_at DESC", "cv.id").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list conversations")
	}
	defer rows.Close()

	conversations := make([]*types.Conversation, 0)
	for rows.Next() {
		c, err := scanConversationRow(rows)
		if err != nil {
			return nil, translate(err, "scan conversation")
		}
		conversations = append(conversations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err, "iterate conversations")
	}

	return conversations, nil
}

func (s *Storage) CountConversations(ctx context.Context, tenantID string, status types.ConversationStatus) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountConversations")
	defer span.End()

	return s.count(ctx,
		s.db.Statement(ctx).
			Select("count(*)").
			From("conversations").
			Where(sq.Eq{"company_id": tenantID, "status": string(status)}),
		"count conversations",
	)
}

func (s *Storage) GetConversation(ctx context.Context, tenantID, id string) (*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetConversation")
	defer span.End()

	c, err := scanConversationRow(
		s.selectConversations(ctx).
			Where(sq.Eq{"cv.id": id, "cv.company_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get conversation")
	}

	return c, nil
}

func (s *Storage) CreateConversation(ctx context.Context, tenantID string, c *types.Conversation) (*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateConversation")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanConversation(
		s.db.Statement(ctx).
			Insert("conversations").
			Columns("id", "company_id", "customer_id", "assignee_id", "channel", "status").
			Values(id, tenantID, c.CustomerID, c.AssigneeID, string(c.Channel), string(c.Status)).
			Suffix("RETURNING " + columnList(conversationColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert conversation")
	}

	return created, nil
}

func (s *Storage) UpdateConversationActivity(ctx context.Context, tenantID, id string, at time.Time, status types.ConversationStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateConversationActivity")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("conversations").
		Set("last_message_at", at).
		Set("status", string(status)).
		Where(sq.Eq{"id": id, "company_id": tenantID}).
		ExecContext(ctx)

	return affected(res, err, "update conversation activity")
}

// AssignConversation sets or clears the assignee. The composite foreign key
// on (assignee_id, company_id) rejects principals of other tenants.
func (s *Storage) AssignConversation(ctx context.Context, tenantID, id string, assigneeID *string) (*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AssignConversation")
	defer span.End()

	c, err := scanConversation(
		s.db.Statement(ctx).
			Update("conversations").
			Set("assignee_id", assigneeID).
			Where(sq.Eq{"id": id, "company_id": tenantID}).
			Suffix("RETURNING " + columnList(conversationColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "assign conversation")
	}

	return c, nil
}

func (s *Storage) SetConversationStatus(ctx context.Context, tenantID, id string, status types.ConversationStatus) (*types.Conversation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetConversationStatus")
	defer span.End()

	c, err := scanConversation(
		s.db.Statement(ctx).
			Update("conversations").
			Set("status", string(status)).
			Where(sq.Eq{"id": id, "company_id": tenantID}).
			Suffix("RETURNING " + columnList(conversationColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "set conversation status")
	}

	return c, nil
}

func (s *Storage) ListMessages(ctx context.Context, tenantID, conversationID string) ([]*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMessages")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID, "company_id": tenantID}).
		OrderBy("created_at ASC", "id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list messages")
	}
	defer rows.Close()

	messages := make([]*types.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, translate(err, "scan message")
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err, "iterate messages")
	}

	return messages, nil
}

// CreateMessage inserts into the conversation identified by m.ConversationID,
// copying tenant and customer from the conversation row itself. A conversation
// of another tenant selects nothing and yields ErrNotFound.
func (s *Storage) CreateMessage(ctx context.Context, tenantID string, m *types.Message) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMessage")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	source := sq.Select().
		Column("?::uuid", id).
		Columns("company_id", "id", "customer_id").
		Column("?", string(m.Direction)).
		Column("?", m.Content).
		Column("?", m.Status).
		From("conversations").
		Where(sq.Eq{"id": m.ConversationID, "company_id": tenantID})

	created, err := scanMessage(
		s.db.Statement(ctx).
			Insert("messages").
			Columns("id", "company_id", "conversation_id", "customer_id", "direction", "content", "status").
			Select(source).
			Suffix("RETURNING " + columnList(messageColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert message")
	}

	return created, nil
}
